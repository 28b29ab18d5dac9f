package domain

import "strconv"

// ConversionRequest is the immutable input to one pipeline run.
type ConversionRequest struct {
	PDF     []byte
	Title   string
	Account string

	// OCR controls the optional text extraction stage.
	OCR         bool
	OCRLanguage string

	// IncludePDF asks the packager to place the source PDF into the
	// bundle so the viewer's download button has something to serve.
	IncludePDF bool
}

// PageImage is one rendered page. Ordinals are 1-based and dense,
// matching the source PDF's physical page order.
type PageImage struct {
	Ordinal int
	Full    []byte // JPEG, quality 85
	Thumb   []byte // JPEG, quality 75, bounded to 200x300
	Width   int
	Height  int
}

// PageText is the per-page extraction result. A failed recognition keeps
// its entry with empty text so the mapping stays dense; the error is
// carried alongside instead of aborting the batch.
type PageText struct {
	Text string
	Err  error
}

// TextMap maps stringified ordinals ("1".."N") to extraction results.
// String keys match the search_data.json wire format directly.
type TextMap map[string]PageText

// Key returns the TextMap key for a page ordinal.
func Key(ordinal int) string {
	return strconv.Itoa(ordinal)
}

// ConversionResult is the full pipeline output handed to a packager.
type ConversionResult struct {
	Title      string
	Pages      []PageImage
	Texts      TextMap // nil when extraction was disabled
	HTML       string
	CSS        string
	JS         string
	SearchData []byte // JSON {"pages":{...}}, nil when extraction was disabled
	PageCount  int

	// PDF is the original document passthrough, nil unless requested.
	PDF     []byte
	PDFName string
}

// HasSearch reports whether the result carries a search payload.
func (r *ConversionResult) HasSearch() bool {
	return len(r.SearchData) > 0
}
