package assets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleDeterministic(t *testing.T) {
	a := NewAssembler(DefaultFeatures())
	search := []byte(`{"pages":{"1":"obsah strany"}}`)

	html1, css1, js1, err := a.Assemble(3, "Zpravodaj 3/2025", search)
	require.NoError(t, err)
	html2, css2, js2, err := a.Assemble(3, "Zpravodaj 3/2025", search)
	require.NoError(t, err)

	assert.Equal(t, html1, html2, "HTML must be byte-identical across runs")
	assert.Equal(t, css1, css2, "CSS must be byte-identical across runs")
	assert.Equal(t, js1, js2, "JS must be byte-identical across runs")
}

func TestAssembleReferencesEveryPage(t *testing.T) {
	a := NewAssembler(DefaultFeatures())

	html, _, _, err := a.Assemble(5, "Test", nil)
	require.NoError(t, err)

	for _, ref := range []string{
		"files/pages/1.jpg",
		"files/pages/3.jpg",
		"files/pages/5.jpg",
		"files/thumb/1.jpg",
		"files/thumb/5.jpg",
	} {
		assert.Contains(t, html, ref)
	}
	assert.NotContains(t, html, "files/pages/6.jpg")
	assert.Contains(t, html, "const totalPages = 5;")
}

func TestAssembleZeroPages(t *testing.T) {
	a := NewAssembler(DefaultFeatures())

	html, css, js, err := a.Assemble(0, "Empty", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, html)
	assert.NotEmpty(t, css)
	assert.NotEmpty(t, js)
	assert.Contains(t, html, "const totalPages = 0;")
	assert.NotContains(t, html, "files/pages/")
}

func TestAssembleNegativePageCount(t *testing.T) {
	a := NewAssembler(DefaultFeatures())

	_, _, _, err := a.Assemble(-1, "Bad", nil)
	assert.Error(t, err)
}

func TestAssembleTitleEscaped(t *testing.T) {
	a := NewAssembler(DefaultFeatures())

	html, _, _, err := a.Assemble(1, `<script>alert("x")</script>`, nil)
	require.NoError(t, err)

	assert.NotContains(t, html, `<script>alert`)
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestAssembleSearchEmbedding(t *testing.T) {
	a := NewAssembler(DefaultFeatures())
	search := []byte(`{"pages":{"1":"kocka","2":""}}`)

	html, _, _, err := a.Assemble(2, "Test", search)
	require.NoError(t, err)
	assert.Contains(t, html, `const searchData = {"pages":{"1":"kocka","2":""}};`)

	// Without search data no searchData constant is emitted.
	html, _, _, err = a.Assemble(2, "Test", nil)
	require.NoError(t, err)
	assert.NotContains(t, html, "const searchData")
}

func TestAssembleFeatureGating(t *testing.T) {
	all := Features{Search: true, ZoomPanel: true, SidebarMenu: true, DownloadButton: true, AISummaryStub: true}
	none := Features{}
	search := []byte(`{"pages":{"1":"text"}}`)

	htmlAll, cssAll, jsAll, err := NewAssembler(all).Assemble(2, "Test", search)
	require.NoError(t, err)
	htmlNone, cssNone, jsNone, err := NewAssembler(none).Assemble(2, "Test", search)
	require.NoError(t, err)

	assert.Contains(t, htmlAll, "zoom-in-btn")
	assert.NotContains(t, htmlNone, "zoom-in-btn")

	assert.Contains(t, htmlAll, "search-overlay")
	assert.NotContains(t, htmlNone, "search-overlay")

	assert.Contains(t, htmlAll, BundledPDFName)
	assert.NotContains(t, htmlNone, BundledPDFName)

	assert.Contains(t, htmlAll, "ai-summary")
	assert.NotContains(t, htmlNone, "ai-summary")

	assert.Greater(t, len(cssAll), len(cssNone))
	assert.Greater(t, len(jsAll), len(jsNone))
}

func TestAssembleViewerScript(t *testing.T) {
	a := NewAssembler(DefaultFeatures())

	_, _, js, err := a.Assemble(3, "Test", nil)
	require.NoError(t, err)

	assert.Contains(t, js, "flipbook.turn(")
	assert.Contains(t, js, "var viewer")
	assert.Contains(t, js, "function goToPage")
}

func TestAssembleSearchDisabledByFeature(t *testing.T) {
	a := NewAssembler(Features{Search: false})
	search := []byte(`{"pages":{"1":"text"}}`)

	html, _, _, err := a.Assemble(1, "Test", search)
	require.NoError(t, err)
	assert.NotContains(t, html, "const searchData")
}

func TestTemplatesContainNoStrayActions(t *testing.T) {
	a := NewAssembler(DefaultFeatures())

	html, css, js, err := a.Assemble(2, "Test", []byte(`{"pages":{}}`))
	require.NoError(t, err)

	for name, doc := range map[string]string{"html": html, "css": css, "js": js} {
		assert.False(t, strings.Contains(doc, "{{"), "%s output leaks template syntax", name)
		assert.False(t, strings.Contains(doc, "<no value>"), "%s output has unresolved field", name)
	}
}
