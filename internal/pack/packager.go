// Package pack materializes a conversion result into a destination:
// a local directory tree, an in-memory ZIP archive, or an S3 prefix.
package pack

import (
	"context"
	"fmt"

	"github.com/municipress/flipbook/internal/assets"
	"github.com/municipress/flipbook/internal/domain"
)

// Bundle layout, identical across destinations.
const (
	IndexPath      = "index.html"
	CSSPath        = "css/style.css"
	JSPath         = "js/flipbook.js"
	SearchDataPath = "search_data.json"
	pagePathFmt    = "files/pages/%d.jpg"
	thumbPathFmt   = "files/thumb/%d.jpg"
)

// PagePath returns the bundle path for a full-size page image.
func PagePath(ordinal int) string {
	return fmt.Sprintf(pagePathFmt, ordinal)
}

// ThumbPath returns the bundle path for a thumbnail image.
func ThumbPath(ordinal int) string {
	return fmt.Sprintf(thumbPathFmt, ordinal)
}

// Manifest describes what a packager produced.
type Manifest struct {
	// Location is destination specific: the output directory for dir
	// packaging, the base URL for S3, empty for in-memory ZIP.
	Location string

	IndexURL  string
	CSSURL    string
	JSURL     string
	PageURLs  []string
	ThumbURLs []string

	// Archive holds the complete ZIP bytes, ZIP packaging only.
	Archive []byte

	Files int
}

// Packager writes a complete conversion result to one destination.
// Any write failure aborts the whole operation; a partially written
// destination is never reported as success.
type Packager interface {
	Pack(ctx context.Context, res *domain.ConversionResult) (*Manifest, error)
}

// entry is one file of the bundle.
type entry struct {
	path        string
	data        []byte
	contentType string
}

// bundleEntries flattens a conversion result into the bundle layout, in a
// stable order: viewer documents, page images, thumbnails, search data,
// PDF passthrough.
func bundleEntries(res *domain.ConversionResult) []entry {
	entries := make([]entry, 0, 2*len(res.Pages)+5)

	entries = append(entries,
		entry{IndexPath, []byte(res.HTML), "text/html"},
		entry{CSSPath, []byte(res.CSS), "text/css"},
		entry{JSPath, []byte(res.JS), "application/javascript"},
	)

	for _, p := range res.Pages {
		entries = append(entries, entry{PagePath(p.Ordinal), p.Full, "image/jpeg"})
	}
	for _, p := range res.Pages {
		entries = append(entries, entry{ThumbPath(p.Ordinal), p.Thumb, "image/jpeg"})
	}

	if res.HasSearch() {
		entries = append(entries, entry{SearchDataPath, res.SearchData, "application/json"})
	}

	if len(res.PDF) > 0 {
		entries = append(entries, entry{assets.BundledPDFName, res.PDF, "application/pdf"})
	}

	return entries
}
