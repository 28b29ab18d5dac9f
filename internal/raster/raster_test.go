package raster

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/municipress/flipbook/internal/domain"
)

func TestThumbnailFitsBoundingBox(t *testing.T) {
	// A4 at 150 DPI, portrait.
	src := image.NewRGBA(image.Rect(0, 0, 1240, 1754))

	thumb := Thumbnail(src, 200, 300)
	b := thumb.Bounds()

	assert.LessOrEqual(t, b.Dx(), 200)
	assert.LessOrEqual(t, b.Dy(), 300)

	// Aspect ratio preserved within rounding.
	srcRatio := float64(1240) / float64(1754)
	dstRatio := float64(b.Dx()) / float64(b.Dy())
	assert.InDelta(t, srcRatio, dstRatio, 0.02)
}

func TestThumbnailLandscape(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1754, 1240))

	thumb := Thumbnail(src, 200, 300)
	b := thumb.Bounds()

	assert.Equal(t, 200, b.Dx(), "width is the binding constraint")
	assert.LessOrEqual(t, b.Dy(), 300)
}

func TestThumbnailNeverUpscales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 120, 90))

	thumb := Thumbnail(src, 200, 300)

	assert.Equal(t, src.Bounds(), thumb.Bounds())
	// Small images pass through without a copy.
	assert.Same(t, image.Image(src), thumb)
}

func TestThumbnailExtremeAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10000, 2))

	thumb := Thumbnail(src, 200, 300)
	b := thumb.Bounds()

	assert.Equal(t, 200, b.Dx())
	assert.GreaterOrEqual(t, b.Dy(), 1, "degenerate heights clamp to 1px")
}

func TestNewRasterizerDefaults(t *testing.T) {
	r, err := NewRasterizer(Options{})
	require.NoError(t, err)

	assert.Equal(t, DefaultOptions(), r.opts)
}

func TestNewRasterizerRejectsBadQuality(t *testing.T) {
	_, err := NewRasterizer(Options{Quality: 150})
	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeConfig, domain.TypeOf(err))

	_, err = NewRasterizer(Options{ThumbQuality: -5})
	require.Error(t, err)
}

func TestRasterizeEmptyInput(t *testing.T) {
	r, err := NewRasterizer(Options{})
	require.NoError(t, err)

	_, err = r.Rasterize(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeInput, domain.TypeOf(err))
}

func TestRasterizeGarbageInput(t *testing.T) {
	r, err := NewRasterizer(Options{})
	require.NoError(t, err)

	_, err = r.Rasterize(context.Background(), []byte("definitely not a pdf"))
	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeDecode, domain.TypeOf(err))
}
