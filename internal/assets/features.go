// Package assets generates the static HTML/CSS/JS viewer documents for a
// flipbook bundle. Generation is pure string construction: no filesystem,
// no network, byte-for-byte deterministic for identical inputs.
package assets

// Features selects which viewer capabilities the generated documents
// carry. One parameterized template per document type replaces the
// historical copy-pasted variants.
type Features struct {
	Search         bool
	ZoomPanel      bool
	SidebarMenu    bool
	DownloadButton bool
	AISummaryStub  bool
}

// DefaultFeatures returns the canonical viewer feature set: double-page
// flip with zoom panel and client-side search, no sidebar or AI summary.
func DefaultFeatures() Features {
	return Features{
		Search:         true,
		ZoomPanel:      true,
		SidebarMenu:    false,
		DownloadButton: true,
		AISummaryStub:  false,
	}
}

// viewerVersion is embedded in the generated HTML as a cache-busting
// marker. Bump when the template output changes shape.
const viewerVersion = "4.0"

// BundledPDFName is where the packager places the original PDF when
// passthrough is requested, and where the download button points.
const BundledPDFName = "files/document.pdf"
