// Package raster renders PDF pages to JPEG page images and thumbnails
// using go-fitz (MuPDF).
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"context"

	"github.com/gen2brain/go-fitz"

	"github.com/municipress/flipbook/internal/domain"
)

// Options control rendering resolution and encoding quality.
type Options struct {
	DPI          float64
	Quality      int
	ThumbQuality int
	ThumbMaxW    int
	ThumbMaxH    int
}

// DefaultOptions returns the production rendering settings: 150 DPI pages
// at JPEG quality 85, thumbnails bounded to 200x300 at quality 75.
func DefaultOptions() Options {
	return Options{
		DPI:          150,
		Quality:      85,
		ThumbQuality: 75,
		ThumbMaxW:    200,
		ThumbMaxH:    300,
	}
}

// Rasterizer implements PDF to image conversion using go-fitz.
type Rasterizer struct {
	opts Options
}

// NewRasterizer creates a rasterizer with the given options. Zero-valued
// fields fall back to the defaults.
func NewRasterizer(opts Options) (*Rasterizer, error) {
	def := DefaultOptions()
	if opts.DPI == 0 {
		opts.DPI = def.DPI
	}
	if opts.Quality == 0 {
		opts.Quality = def.Quality
	}
	if opts.ThumbQuality == 0 {
		opts.ThumbQuality = def.ThumbQuality
	}
	if opts.ThumbMaxW == 0 {
		opts.ThumbMaxW = def.ThumbMaxW
	}
	if opts.ThumbMaxH == 0 {
		opts.ThumbMaxH = def.ThumbMaxH
	}

	if err := validateQuality(opts.Quality); err != nil {
		return nil, err
	}
	if err := validateQuality(opts.ThumbQuality); err != nil {
		return nil, err
	}

	return &Rasterizer{opts: opts}, nil
}

// Rasterize renders every page of the PDF to a full-size JPEG and a
// thumbnail. The document is opened from memory and released before
// returning, on every exit path. Page ordinals are dense 1..N in the
// PDF's internal page order.
func (r *Rasterizer) Rasterize(ctx context.Context, pdf []byte) ([]domain.PageImage, error) {
	if len(pdf) == 0 {
		return nil, domain.InputError("PDF payload is empty", nil)
	}

	doc, err := fitz.NewFromMemory(pdf)
	if err != nil {
		return nil, domain.DecodeError("failed to open PDF", err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	pages := make([]domain.PageImage, 0, pageCount)

	for pageNum := 0; pageNum < pageCount; pageNum++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		img, err := doc.ImageDPI(pageNum, r.opts.DPI)
		if err != nil {
			return nil, domain.DecodeError(fmt.Sprintf("failed to render page %d", pageNum+1), err)
		}

		full, err := encodeJPEG(img, r.opts.Quality)
		if err != nil {
			return nil, domain.DecodeError(fmt.Sprintf("failed to encode page %d", pageNum+1), err)
		}

		thumbImg := Thumbnail(img, r.opts.ThumbMaxW, r.opts.ThumbMaxH)
		thumb, err := encodeJPEG(thumbImg, r.opts.ThumbQuality)
		if err != nil {
			return nil, domain.DecodeError(fmt.Sprintf("failed to encode thumbnail %d", pageNum+1), err)
		}

		bounds := img.Bounds()
		pages = append(pages, domain.PageImage{
			Ordinal: pageNum + 1,
			Full:    full,
			Thumb:   thumb,
			Width:   bounds.Dx(),
			Height:  bounds.Dy(),
		})
	}

	return pages, nil
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func validateQuality(quality int) error {
	if quality < 1 || quality > 100 {
		return domain.ConfigError(fmt.Sprintf("quality must be between 1 and 100, got %d", quality), nil)
	}
	return nil
}
