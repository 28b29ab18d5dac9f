// Package convert wires the pipeline stages together: rasterize, extract
// text, assemble viewer documents. Every front door funnels into this one
// routine; packaging happens afterwards and is the caller's concern.
package convert

import (
	"context"
	"time"

	"github.com/municipress/flipbook/internal/domain"
	"github.com/municipress/flipbook/internal/observability"
)

// SearchEncoder renders a text mapping as the search_data.json payload.
type SearchEncoder func(domain.TextMap) ([]byte, error)

// Service orchestrates one PDF conversion.
type Service struct {
	rasterizer domain.Rasterizer
	extractor  domain.TextExtractor
	assembler  domain.Assembler
	encode     SearchEncoder
	logger     *observability.Logger
}

// NewService creates a conversion service. extractor may be nil when OCR
// is not built in; a request asking for it then degrades to no search data.
func NewService(rasterizer domain.Rasterizer, extractor domain.TextExtractor, assembler domain.Assembler, encode SearchEncoder, logger *observability.Logger) *Service {
	if logger == nil {
		logger = observability.Nop()
	}
	return &Service{
		rasterizer: rasterizer,
		extractor:  extractor,
		assembler:  assembler,
		encode:     encode,
		logger:     logger.WithOperation("convert"),
	}
}

// Convert runs the pipeline start to finish on the calling goroutine.
// The stages are strictly linear; any stage error other than per-page
// OCR failure aborts the whole run.
func (s *Service) Convert(ctx context.Context, req domain.ConversionRequest) (*domain.ConversionResult, error) {
	if len(req.PDF) == 0 {
		return nil, domain.InputError("PDF payload is required", nil)
	}

	start := time.Now()

	pages, err := s.rasterizer.Rasterize(ctx, req.PDF)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("title", req.Title).
		Int("pages", len(pages)).
		Msg("rasterized PDF")

	var (
		texts      domain.TextMap
		searchJSON []byte
	)
	if req.OCR && s.extractor != nil {
		texts = s.extractor.ExtractText(ctx, pages, req.OCRLanguage)
		searchJSON, err = s.encode(texts)
		if err != nil {
			return nil, domain.ExtractionError("failed to encode search data", err)
		}
	}

	html, css, js, err := s.assembler.Assemble(len(pages), req.Title, searchJSON)
	if err != nil {
		return nil, err
	}

	res := &domain.ConversionResult{
		Title:      req.Title,
		Pages:      pages,
		Texts:      texts,
		HTML:       html,
		CSS:        css,
		JS:         js,
		SearchData: searchJSON,
		PageCount:  len(pages),
	}
	if req.IncludePDF {
		res.PDF = req.PDF
	}

	s.logger.Info().
		Str("title", req.Title).
		Int("pages", res.PageCount).
		Bool("search", res.HasSearch()).
		Dur("elapsed", time.Since(start)).
		Msg("conversion complete")

	return res, nil
}
