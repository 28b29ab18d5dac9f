package pack

import (
	"archive/zip"
	"bytes"
	"context"

	"github.com/municipress/flipbook/internal/domain"
)

// ZipPackager buffers the complete bundle as a DEFLATE-compressed ZIP
// archive in memory. No streaming; the archive is returned whole.
type ZipPackager struct{}

// NewZipPackager creates an in-memory ZIP packager.
func NewZipPackager() *ZipPackager {
	return &ZipPackager{}
}

// Pack writes the bundle into a ZIP archive and returns it in the
// manifest's Archive field.
func (p *ZipPackager) Pack(ctx context.Context, res *domain.ConversionResult) (*Manifest, error) {
	entries := bundleEntries(res)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, e := range entries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		w, err := zw.Create(e.path)
		if err != nil {
			return nil, domain.PackagingError("failed to add "+e.path+" to archive", err)
		}
		if _, err := w.Write(e.data); err != nil {
			return nil, domain.PackagingError("failed to write "+e.path+" to archive", err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, domain.PackagingError("failed to finalize archive", err)
	}

	return &Manifest{
		IndexURL: IndexPath,
		CSSURL:   CSSPath,
		JSURL:    JSPath,
		Archive:  buf.Bytes(),
		Files:    len(entries),
	}, nil
}

// Slug lowercases a title and collapses everything outside [a-z0-9]
// into single dashes, e.g. "Zpravodaj 3/2025" becomes "zpravodaj-3-2025".
func Slug(title string) string {
	safe := make([]rune, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			safe = append(safe, r)
		case r >= 'A' && r <= 'Z':
			safe = append(safe, r+('a'-'A'))
		case r == ' ', r == '/', r == '\\', r == '-', r == '_':
			if len(safe) > 0 && safe[len(safe)-1] != '-' {
				safe = append(safe, '-')
			}
		}
	}
	for len(safe) > 0 && safe[len(safe)-1] == '-' {
		safe = safe[:len(safe)-1]
	}
	if len(safe) == 0 {
		safe = []rune("flipbook")
	}
	return string(safe)
}

// ArchiveFilename derives the download filename for a title, e.g.
// "Zpravodaj 3/2025" becomes "zpravodaj-3-2025-flipbook.zip".
func ArchiveFilename(title string) string {
	return Slug(title) + "-flipbook.zip"
}
