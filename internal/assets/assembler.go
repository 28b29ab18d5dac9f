package assets

import (
	"fmt"
	"html"
	"strings"
	"text/template"
)

// Assembler renders the viewer documents for a flipbook.
type Assembler struct {
	features Features
}

// NewAssembler creates an assembler with the given feature set.
func NewAssembler(features Features) *Assembler {
	return &Assembler{features: features}
}

// docData is the single template input for all three documents.
type docData struct {
	Title      string
	PageCount  int
	Ordinals   []int
	SearchJSON string
	HasSearch  bool
	Version    string
	PDFName    string
	F          Features
}

var (
	htmlTmpl = template.Must(template.New("index.html").Parse(htmlTemplate))
	cssTmpl  = template.Must(template.New("style.css").Parse(cssTemplate))
	jsTmpl   = template.Must(template.New("flipbook.js").Parse(jsTemplate))
)

// Assemble produces the HTML, CSS and JS documents for a flipbook of
// pageCount pages. searchJSON, when non-nil, is embedded verbatim into
// the HTML so search works offline with no server round-trip. The output
// is a pure function of the inputs.
func (a *Assembler) Assemble(pageCount int, title string, searchJSON []byte) (string, string, string, error) {
	if pageCount < 0 {
		return "", "", "", fmt.Errorf("page count cannot be negative: %d", pageCount)
	}

	ordinals := make([]int, pageCount)
	for i := range ordinals {
		ordinals[i] = i + 1
	}

	data := docData{
		Title:      html.EscapeString(title),
		PageCount:  pageCount,
		Ordinals:   ordinals,
		SearchJSON: string(searchJSON),
		HasSearch:  a.features.Search && len(searchJSON) > 0,
		Version:    viewerVersion,
		PDFName:    BundledPDFName,
		F:          a.features,
	}

	htmlDoc, err := render(htmlTmpl, data)
	if err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	cssDoc, err := render(cssTmpl, data)
	if err != nil {
		return "", "", "", fmt.Errorf("render css: %w", err)
	}
	jsDoc, err := render(jsTmpl, data)
	if err != nil {
		return "", "", "", fmt.Errorf("render js: %w", err)
	}

	return htmlDoc, cssDoc, jsDoc, nil
}

func render(t *template.Template, data docData) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
