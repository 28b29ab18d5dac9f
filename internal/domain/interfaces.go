package domain

import "context"

// Rasterizer defines the interface for rendering PDF pages to images.
type Rasterizer interface {
	// Rasterize turns an in-memory PDF into a slice of page images.
	Rasterize(ctx context.Context, pdf []byte) ([]PageImage, error)
}

// TextExtractor defines the interface for the optional OCR stage.
type TextExtractor interface {
	// ExtractText recognizes text on every full-size page image. The
	// returned map has exactly one entry per input page; a page whose
	// recognition failed keeps its entry with empty text.
	ExtractText(ctx context.Context, pages []PageImage, language string) TextMap
}

// Assembler defines the interface for generating the static viewer documents.
type Assembler interface {
	// Assemble produces the HTML, CSS and JS documents for a flipbook of
	// pageCount pages. searchJSON may be nil when no search data exists.
	Assemble(pageCount int, title string, searchJSON []byte) (html, css, js string, err error)
}
