package pack

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/municipress/flipbook/internal/domain"
)

// S3API is the subset of the S3 client the packager needs. Tests swap in
// a fake.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Packager uploads the bundle under a key prefix, one object per file,
// publicly readable. Any upload failure aborts the whole operation;
// objects already written are not cleaned up, but the caller must treat
// the failure as "nothing durably produced".
type S3Packager struct {
	client S3API
	bucket string
	prefix string
	base   string
}

// S3Options configure an S3 packager.
type S3Options struct {
	Bucket string
	Region string
	// Prefix is the per-conversion key prefix, e.g. "account/title-1699999999".
	Prefix string
	// BaseURL overrides the default public URL root, for CDNs or
	// S3-compatible endpoints. Without it the standard
	// https://{bucket}.s3.{region}.amazonaws.com form is used.
	BaseURL string
}

// NewS3Packager creates a packager using the default AWS credential chain.
func NewS3Packager(ctx context.Context, opts S3Options) (*S3Packager, error) {
	if opts.Bucket == "" {
		return nil, domain.ConfigError("S3 bucket not configured", nil)
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(opts.Region))
	if err != nil {
		return nil, domain.ConfigError("failed to load AWS configuration", err)
	}

	return NewS3PackagerWithClient(s3.NewFromConfig(cfg), opts), nil
}

// NewS3PackagerWithClient creates a packager around an existing client.
func NewS3PackagerWithClient(client S3API, opts S3Options) *S3Packager {
	base := opts.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", opts.Bucket, opts.Region)
	}
	base = strings.TrimSuffix(base, "/")

	return &S3Packager{
		client: client,
		bucket: opts.Bucket,
		prefix: strings.Trim(opts.Prefix, "/"),
		base:   base,
	}
}

// Pack uploads every bundle file and returns the public URL map.
func (p *S3Packager) Pack(ctx context.Context, res *domain.ConversionResult) (*Manifest, error) {
	entries := bundleEntries(res)

	for _, e := range entries {
		if err := p.upload(ctx, e); err != nil {
			return nil, domain.PackagingError("failed to upload "+e.path, err)
		}
	}

	m := &Manifest{
		Location: p.url(""),
		IndexURL: p.url(IndexPath),
		CSSURL:   p.url(CSSPath),
		JSURL:    p.url(JSPath),
		Files:    len(entries),
	}
	for _, pg := range res.Pages {
		m.PageURLs = append(m.PageURLs, p.url(PagePath(pg.Ordinal)))
		m.ThumbURLs = append(m.ThumbURLs, p.url(ThumbPath(pg.Ordinal)))
	}
	return m, nil
}

func (p *S3Packager) upload(ctx context.Context, e entry) error {
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(p.key(e.path)),
		Body:        bytes.NewReader(e.data),
		ContentType: aws.String(e.contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	return err
}

func (p *S3Packager) key(path string) string {
	if p.prefix == "" {
		return path
	}
	return p.prefix + "/" + path
}

func (p *S3Packager) url(path string) string {
	if path == "" {
		if p.prefix == "" {
			return p.base
		}
		return p.base + "/" + p.prefix
	}
	return p.base + "/" + p.key(path)
}
