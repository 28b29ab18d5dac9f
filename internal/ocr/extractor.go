package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	_ "image/jpeg" // pages are JPEG encoded
	"image/png"

	"github.com/municipress/flipbook/internal/domain"
	"github.com/municipress/flipbook/internal/observability"
	"github.com/municipress/flipbook/internal/raster"
)

// DefaultLanguage is the Tesseract language model used when the caller
// gives no hint.
const DefaultLanguage = "ces"

// DefaultMaxWidth bounds the recognition input. Full-size pages are
// downsampled to this width before OCR to keep processing cost sane;
// accuracy above 2000px is flat for 150 DPI scans.
const DefaultMaxWidth = 2000

// Extractor runs the optional text extraction stage over rendered pages.
//
// Extraction is the one stage that degrades instead of failing: a page
// whose recognition errors keeps its map entry with empty text, and the
// batch continues. OCR quality is inherently unreliable and must never
// sink a whole conversion.
type Extractor struct {
	engine   Engine
	logger   *observability.Logger
	maxWidth int
}

// NewExtractor creates an extractor around an OCR engine.
func NewExtractor(engine Engine, logger *observability.Logger, maxWidth int) *Extractor {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	if logger == nil {
		logger = observability.Nop()
	}
	return &Extractor{engine: engine, logger: logger, maxWidth: maxWidth}
}

// ExtractText recognizes text on every full-size page image. The result
// has exactly one entry per input page keyed by stringified ordinal, even
// when individual pages fail. A missing engine degrades every page to
// empty text.
func (e *Extractor) ExtractText(ctx context.Context, pages []domain.PageImage, language string) domain.TextMap {
	if language == "" {
		language = DefaultLanguage
	}

	texts := make(domain.TextMap, len(pages))

	if !e.engine.Available() {
		e.logger.Warn().Msg("OCR engine unavailable, search text will be empty")
		for _, p := range pages {
			texts[domain.Key(p.Ordinal)] = domain.PageText{}
		}
		return texts
	}

	for _, p := range pages {
		text, err := e.extractPage(ctx, p, language)
		if err != nil {
			e.logger.Warn().Int("page", p.Ordinal).Err(err).Msg("OCR failed, page degrades to empty text")
			texts[domain.Key(p.Ordinal)] = domain.PageText{Err: err}
			continue
		}
		texts[domain.Key(p.Ordinal)] = domain.PageText{Text: text}
	}

	return texts
}

func (e *Extractor) extractPage(ctx context.Context, page domain.PageImage, language string) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(page.Full))
	if err != nil {
		return "", domain.ExtractionError("failed to decode page image", err)
	}

	if img.Bounds().Dx() > e.maxWidth {
		// Bounding height is irrelevant here, only width matters for cost.
		img = raster.Thumbnail(img, e.maxWidth, 1<<20)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", domain.ExtractionError("failed to encode recognition input", err)
	}

	text, err := e.engine.Recognize(ctx, buf.Bytes(), language)
	if err != nil {
		return "", domain.ExtractionError("recognition failed", err)
	}
	return text, nil
}

// SearchData renders the canonical search payload for a text mapping:
// {"pages":{"1":"...","2":"..."}}. Failed pages appear as empty strings.
func SearchData(texts domain.TextMap) ([]byte, error) {
	pages := make(map[string]string, len(texts))
	for k, v := range texts {
		pages[k] = v.Text
	}
	return json.MarshalIndent(map[string]map[string]string{"pages": pages}, "", "  ")
}
