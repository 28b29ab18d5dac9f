// Package flipbook is the public entry point for embedding the PDF to
// flipbook converter in other programs.
package flipbook

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/municipress/flipbook/internal/assets"
	"github.com/municipress/flipbook/internal/config"
	"github.com/municipress/flipbook/internal/convert"
	"github.com/municipress/flipbook/internal/domain"
	"github.com/municipress/flipbook/internal/observability"
	"github.com/municipress/flipbook/internal/ocr"
	"github.com/municipress/flipbook/internal/pack"
	"github.com/municipress/flipbook/internal/raster"
)

// Re-export the result types callers work with.
type (
	ConversionRequest = domain.ConversionRequest
	ConversionResult  = domain.ConversionResult
	PageImage         = domain.PageImage
	PageText          = domain.PageText
	Manifest          = pack.Manifest
)

// Client is the main entry point for the flipbook converter library.
type Client struct {
	service *convert.Service
	cfg     *config.Config
	logger  *observability.Logger
}

// NewClient creates a client with configuration from the environment and
// an optional YAML config file path (empty string for defaults).
func NewClient(configPath string) (*Client, error) {
	// Ignore error if .env doesn't exist
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return NewClientWithConfig(cfg)
}

// NewClientWithConfig creates a client from an explicit configuration.
func NewClientWithConfig(cfg *config.Config) (*Client, error) {
	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: cfg.Observability.ServiceName,
	})

	rasterizer, err := raster.NewRasterizer(raster.Options{
		DPI:          cfg.Raster.DPI,
		Quality:      cfg.Raster.Quality,
		ThumbQuality: cfg.Raster.ThumbQuality,
		ThumbMaxW:    cfg.Raster.ThumbMaxW,
		ThumbMaxH:    cfg.Raster.ThumbMaxH,
	})
	if err != nil {
		return nil, err
	}

	extractor := ocr.NewExtractor(ocr.NewTesseractEngine(cfg.OCR.Binary), logger, cfg.OCR.MaxWidth)
	assembler := assets.NewAssembler(assets.Features{
		Search:         cfg.Viewer.Search,
		ZoomPanel:      cfg.Viewer.ZoomPanel,
		SidebarMenu:    cfg.Viewer.SidebarMenu,
		DownloadButton: cfg.Viewer.DownloadButton,
		AISummaryStub:  cfg.Viewer.AISummaryStub,
	})

	service := convert.NewService(rasterizer, extractor, assembler, ocr.SearchData, logger)

	return &Client{service: service, cfg: cfg, logger: logger}, nil
}

// Convert runs the full pipeline and returns the in-memory result.
func (c *Client) Convert(ctx context.Context, req ConversionRequest) (*ConversionResult, error) {
	return c.service.Convert(ctx, req)
}

// ConvertToZip converts and packages the bundle as an in-memory ZIP
// archive in one call.
func (c *Client) ConvertToZip(ctx context.Context, req ConversionRequest) ([]byte, *ConversionResult, error) {
	res, err := c.service.Convert(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	manifest, err := pack.NewZipPackager().Pack(ctx, res)
	if err != nil {
		return nil, nil, err
	}
	return manifest.Archive, res, nil
}

// ConvertToDir converts and writes the bundle under outputDir.
func (c *Client) ConvertToDir(ctx context.Context, req ConversionRequest, outputDir string) (*Manifest, *ConversionResult, error) {
	res, err := c.service.Convert(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	manifest, err := pack.NewDirPackager(outputDir).Pack(ctx, res)
	if err != nil {
		return nil, nil, err
	}
	return manifest, res, nil
}

// Config exposes the effective configuration.
func (c *Client) Config() *config.Config {
	return c.cfg
}

// Logger exposes the client's logger for front doors that want to share it.
func (c *Client) Logger() *observability.Logger {
	return c.logger
}
