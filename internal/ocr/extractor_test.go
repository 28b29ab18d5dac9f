package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/municipress/flipbook/internal/domain"
)

// fakeEngine recognizes canned text per language and fails on demand.
type fakeEngine struct {
	available bool
	text      string
	failPages map[int]bool
	calls     int
	languages []string
}

func (f *fakeEngine) Recognize(ctx context.Context, png []byte, language string) (string, error) {
	f.calls++
	f.languages = append(f.languages, language)
	if f.failPages[f.calls] {
		return "", errors.New("recognition blew up")
	}
	return f.text, nil
}

func (f *fakeEngine) Available() bool { return f.available }

func testPages(t *testing.T, n int) []domain.PageImage {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 24, 32))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	pages := make([]domain.PageImage, n)
	for i := range pages {
		pages[i] = domain.PageImage{Ordinal: i + 1, Full: buf.Bytes(), Width: 24, Height: 32}
	}
	return pages
}

func TestExtractTextAllPages(t *testing.T) {
	engine := &fakeEngine{available: true, text: "obecni zpravodaj"}
	ex := NewExtractor(engine, nil, 0)

	texts := ex.ExtractText(context.Background(), testPages(t, 3), "ces")

	require.Len(t, texts, 3)
	for _, key := range []string{"1", "2", "3"} {
		assert.Equal(t, "obecni zpravodaj", texts[key].Text)
		assert.NoError(t, texts[key].Err)
	}
	assert.Equal(t, 3, engine.calls)
}

func TestExtractTextPageFailureIsolated(t *testing.T) {
	engine := &fakeEngine{
		available: true,
		text:      "text",
		failPages: map[int]bool{3: true},
	}
	ex := NewExtractor(engine, nil, 0)

	texts := ex.ExtractText(context.Background(), testPages(t, 5), "ces")

	require.Len(t, texts, 5, "every page keeps its entry")
	assert.Equal(t, "text", texts["1"].Text)
	assert.Equal(t, "text", texts["2"].Text)
	assert.Empty(t, texts["3"].Text, "failed page degrades to empty text")
	assert.Error(t, texts["3"].Err)
	assert.Equal(t, "text", texts["4"].Text)
	assert.Equal(t, "text", texts["5"].Text)
}

func TestExtractTextDefaultLanguage(t *testing.T) {
	engine := &fakeEngine{available: true, text: "x"}
	ex := NewExtractor(engine, nil, 0)

	ex.ExtractText(context.Background(), testPages(t, 1), "")
	require.Len(t, engine.languages, 1)
	assert.Equal(t, DefaultLanguage, engine.languages[0])

	ex.ExtractText(context.Background(), testPages(t, 1), "deu")
	assert.Equal(t, "deu", engine.languages[1])
}

func TestExtractTextEngineUnavailable(t *testing.T) {
	engine := &fakeEngine{available: false, text: "never seen"}
	ex := NewExtractor(engine, nil, 0)

	texts := ex.ExtractText(context.Background(), testPages(t, 4), "ces")

	require.Len(t, texts, 4)
	for _, v := range texts {
		assert.Empty(t, v.Text)
		assert.NoError(t, v.Err)
	}
	assert.Zero(t, engine.calls, "unavailable engine must not be invoked")
}

func TestExtractTextUndecodablePage(t *testing.T) {
	engine := &fakeEngine{available: true, text: "x"}
	ex := NewExtractor(engine, nil, 0)

	pages := []domain.PageImage{{Ordinal: 1, Full: []byte("not a jpeg")}}
	texts := ex.ExtractText(context.Background(), pages, "ces")

	require.Len(t, texts, 1)
	assert.Error(t, texts["1"].Err)
	assert.Equal(t, domain.ErrorTypeExtraction, domain.TypeOf(texts["1"].Err))
}

func TestTesseractEngineUnavailable(t *testing.T) {
	orig := lookPath
	lookPath = func(file string) (string, error) { return "", errors.New("not found") }
	defer func() { lookPath = orig }()

	engine := NewTesseractEngine("")
	assert.False(t, engine.Available())
}

func TestSearchDataShape(t *testing.T) {
	texts := domain.TextMap{
		"1": {Text: "první strana"},
		"2": {Err: errors.New("ocr failed")},
		"3": {Text: "třetí strana"},
	}

	data, err := SearchData(texts)
	require.NoError(t, err)

	var decoded struct {
		Pages map[string]string `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Len(t, decoded.Pages, 3)
	assert.Equal(t, "první strana", decoded.Pages["1"])
	assert.Equal(t, "", decoded.Pages["2"], "failed page serializes as empty string")
	assert.Equal(t, "třetí strana", decoded.Pages["3"])
}

func TestSearchDataSafeForInlineScript(t *testing.T) {
	texts := domain.TextMap{"1": {Text: `konec </script><script>alert(1)</script>`}}

	data, err := SearchData(texts)
	require.NoError(t, err)

	// The payload lands verbatim inside a <script> element; the default
	// JSON encoder escapes angle brackets so a recognized "</script>"
	// cannot terminate it.
	assert.NotContains(t, string(data), "</script>")
	assert.Contains(t, string(data), `</script>`)

	var decoded struct {
		Pages map[string]string `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, `konec </script><script>alert(1)</script>`, decoded.Pages["1"])
}

func TestSearchDataDeterministic(t *testing.T) {
	texts := domain.TextMap{"2": {Text: "b"}, "1": {Text: "a"}, "10": {Text: "c"}}

	first, err := SearchData(texts)
	require.NoError(t, err)
	second, err := SearchData(texts)
	require.NoError(t, err)

	assert.Equal(t, first, second, "encoding must not depend on map iteration order")
}
