package pandoc_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-slidemacro/pkg/pandoc"
)

const deckJSON = `{
  "pandoc-api-version": [1, 23, 1],
  "meta": {
    "lang": {"t": "MetaInlines", "c": [{"t": "Str", "c": "fi"}]}
  },
  "blocks": [
    {"t": "Header", "c": [1, ["intro", ["title"], []], [{"t": "Str", "c": "Intro"}]]},
    {"t": "Para", "c": [{"t": "Str", "c": "text"}]},
    {"t": "HorizontalRule"},
    {"t": "Header", "c": [1, ["me", ["author"], [["data-background-image", "custom.png"]]], [{"t": "Strong", "c": [{"t": "Str", "c": "Me"}]}, {"t": "Str", "c": "!"}]]},
    {"t": "Header", "c": [2, ["sub", ["section"], []], [{"t": "Str", "c": "Sub"}]]},
    {"t": "Div", "c": [["", ["section"], []], [
      {"t": "Header", "c": [1, ["part", [], []], [{"t": "Str", "c": "Part"}]]},
      {"t": "Para", "c": [{"t": "Str", "c": "body"}]}
    ]]}
  ]
}`

func decode(t *testing.T) *pandoc.Document {
	t.Helper()
	doc, err := pandoc.Decode(strings.NewReader(deckJSON))
	require.NoError(t, err)
	return doc
}

func header(t *testing.T, el pandoc.Element) pandoc.Header {
	t.Helper()
	h, err := pandoc.DecodeHeader(el)
	require.NoError(t, err)
	return h
}

func TestBackgroundImage(t *testing.T) {
	doc := decode(t)
	require.NoError(t, pandoc.BackgroundImage{}.Apply(doc, "revealjs"))

	bg, ok := doc.Meta.Text("title_bg")
	require.True(t, ok)
	assert.Equal(t, "theme/img/title-fi.png", bg)

	require.Len(t, doc.Blocks, 7)

	title := header(t, doc.Blocks[0])
	v, _ := title.Attr.Value(pandoc.AttrBackgroundImage)
	assert.Equal(t, "theme/img/title-fi.png", v)

	author := header(t, doc.Blocks[3])
	v, _ = author.Attr.Value(pandoc.AttrBackgroundImage)
	assert.Equal(t, "custom.png", v, "existing background must be kept")
	assert.Len(t, author.Attr.KeyValues, 1)

	sub := header(t, doc.Blocks[4])
	_, has := sub.Attr.Value(pandoc.AttrBackgroundImage)
	assert.False(t, has, "only level-1 headers are slides")

	part := header(t, doc.Blocks[5])
	assert.True(t, part.Attr.HasClass("section"))
	v, _ = part.Attr.Value(pandoc.AttrBackgroundImage)
	assert.Equal(t, "theme/img/section.png", v)
	assert.Equal(t, "Para", doc.Blocks[6].T, "div content follows the unwrapped header")
}

func TestBackgroundImageDivKeepsHeaderBackground(t *testing.T) {
	doc, err := pandoc.Decode(strings.NewReader(`{
  "pandoc-api-version": [1, 23, 1],
  "meta": {},
  "blocks": [
    {"t": "Div", "c": [["", ["author"], []], [
      {"t": "Header", "c": [1, ["me", [], [["data-background-image", "mine.png"]]], [{"t": "Str", "c": "Me"}]]}
    ]]}
  ]
}`))
	require.NoError(t, err)
	require.NoError(t, pandoc.BackgroundImage{}.Apply(doc, "revealjs"))
	require.Len(t, doc.Blocks, 1)

	h := header(t, doc.Blocks[0])
	assert.Empty(t, h.Attr.Classes)
	assert.Equal(t, [][2]string{{"data-background-image", "mine.png"}}, h.Attr.KeyValues)
}

func TestBackgroundImageRespectsMeta(t *testing.T) {
	doc := decode(t)
	doc.Meta["themepath"] = pandoc.MetaString("/themes/csc")
	doc.Meta["title_bg"] = pandoc.MetaString("keep.png")

	require.NoError(t, pandoc.BackgroundImage{}.Apply(doc, "html"))

	bg, _ := doc.Meta.Text("title_bg")
	assert.Equal(t, "keep.png", bg)
	v, _ := header(t, doc.Blocks[0]).Attr.Value(pandoc.AttrBackgroundImage)
	assert.Equal(t, "/themes/csc/img/title-fi.png", v)
}

func TestContainSlide(t *testing.T) {
	doc := decode(t)
	require.NoError(t, pandoc.ContainSlide{}.Apply(doc, "revealjs"))

	v, ok := header(t, doc.Blocks[0]).Attr.Value(pandoc.AttrBackgroundSize)
	require.True(t, ok)
	assert.Equal(t, "contain", v)

	empty := header(t, doc.Blocks[2])
	assert.Equal(t, 1, empty.Level)
	assert.Equal(t, "section", empty.Attr.ID)
	assert.Equal(t, [][2]string{{"data-background", "empty-slide"}, {"data-background-size", "contain"}}, empty.Attr.KeyValues)

	div, err := pandoc.DecodeDiv(doc.Blocks[5])
	require.NoError(t, err)
	nested := header(t, div.Blocks[0])
	v, _ = nested.Attr.Value(pandoc.AttrBackgroundSize)
	assert.Equal(t, "contain", v, "headers inside divs are visited")
}

func TestFixHeader(t *testing.T) {
	doc := decode(t)
	require.NoError(t, pandoc.FixHeader{}.Apply(doc, "revealjs"))

	author := header(t, doc.Blocks[3])
	require.Len(t, author.Inlines, 2)
	assert.Equal(t, "Str", author.Inlines[0].T)
	assert.JSONEq(t, `"Me"`, string(author.Inlines[0].C))
}

func TestURLEncode(t *testing.T) {
	images := fstest.MapFS{
		"custom.png": {Data: []byte("png")},
		"bg.svg":     {Data: []byte("<svg/>")},
	}

	doc := decode(t)
	doc.Meta["title_bg"] = pandoc.MetaString("./bg.svg")

	f := pandoc.URLEncode{Images: images}
	require.NoError(t, f.Apply(doc, "revealjs"))

	bg, _ := doc.Meta.Text("title_bg")
	assert.Equal(t, "data:image/svg+xml;base64,PHN2Zy8+", bg)

	v, _ := header(t, doc.Blocks[3]).Attr.Value(pandoc.AttrBackgroundImage)
	assert.Equal(t, "data:image/png;base64,cG5n", v)

	require.NoError(t, f.Apply(doc, "revealjs"), "second pass must be a no-op")
	bg, _ = doc.Meta.Text("title_bg")
	assert.Equal(t, "data:image/svg+xml;base64,PHN2Zy8+", bg)
}

func TestURLEncodeMissingFile(t *testing.T) {
	doc := decode(t)
	err := pandoc.URLEncode{Images: fstest.MapFS{}}.Apply(doc, "revealjs")
	assert.Error(t, err)
}

func TestURLEncodeRejectsEscapingPaths(t *testing.T) {
	doc := decode(t)
	doc.Meta["title_bg"] = pandoc.MetaString("../secret.png")
	err := pandoc.URLEncode{Images: fstest.MapFS{"secret.png": {Data: []byte("x")}}}.Apply(doc, "revealjs")
	assert.Error(t, err)
}

func TestLookupURLEncodeReadsBaseDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.png"), []byte("png"), 0o644))

	f, err := pandoc.Lookup("url-encode", pandoc.Options{BaseDir: dir})
	require.NoError(t, err)

	doc := decode(t)
	require.NoError(t, f.Apply(doc, "revealjs"))
	v, _ := header(t, doc.Blocks[3]).Attr.Value(pandoc.AttrBackgroundImage)
	assert.Equal(t, "data:image/png;base64,cG5n", v)
}

func TestRunFiltersRoundTrip(t *testing.T) {
	filters := make([]pandoc.Filter, 0, 2)
	for _, name := range []string{"contain-slide", "fix-header"} {
		f, err := pandoc.Lookup(name, pandoc.Options{})
		require.NoError(t, err)
		filters = append(filters, f)
	}

	var out bytes.Buffer
	require.NoError(t, pandoc.RunFilters(context.Background(), strings.NewReader(deckJSON), &out, "revealjs", filters...))

	var generic map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &generic))
	assert.Contains(t, generic, "pandoc-api-version")
	assert.Contains(t, out.String(), `{"t":"Para","c":[{"t":"Str","c":"text"}]}`)
	assert.NotContains(t, out.String(), "HorizontalRule")
}

func TestLookupUnknown(t *testing.T) {
	_, err := pandoc.Lookup("nope", pandoc.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "background-image")
	assert.Equal(t, []string{"background-image", "contain-slide", "fix-header", "special-slides", "url-encode"}, pandoc.Names())
}

func TestRunFiltersCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := pandoc.RunFilters(ctx, strings.NewReader(deckJSON), &bytes.Buffer{}, "html", pandoc.ContainSlide{})
	assert.ErrorIs(t, err, context.Canceled)
}

const specialJSON = `{
  "pandoc-api-version": [1, 23, 1],
  "meta": {},
  "blocks": [
    {"t": "Header", "c": [1, ["t", ["title-fi", "wide"], []], [{"t": "Str", "c": "Otsikko"}]]},
    {"t": "Header", "c": [1, ["a", ["author"], [["data-background", "mine.png"]]], [{"t": "Str", "c": "Me"}]]},
    {"t": "Div", "c": [["", ["author"], []], [
      {"t": "Header", "c": [1, ["who", [], []], [{"t": "Str", "c": "Who"}]]}
    ]]}
  ]
}`

func TestSpecialSlides(t *testing.T) {
	doc, err := pandoc.Decode(strings.NewReader(specialJSON))
	require.NoError(t, err)
	require.NoError(t, pandoc.SpecialSlides{}.Apply(doc, "revealjs"))
	require.Len(t, doc.Blocks, 3)

	title := header(t, doc.Blocks[0])
	assert.Equal(t, []string{"wide", "title-slide"}, title.Attr.Classes)
	bg, ok := title.Attr.Value(pandoc.AttrBackground)
	require.True(t, ok)
	assert.Equal(t, "img/title-fi.png", bg)

	kept := header(t, doc.Blocks[1])
	assert.Equal(t, []string{"author"}, kept.Attr.Classes)
	assert.Len(t, kept.Attr.KeyValues, 1)

	unwrapped := header(t, doc.Blocks[2])
	assert.Equal(t, "who", unwrapped.Attr.ID)
	assert.Equal(t, []string{"author-slide"}, unwrapped.Attr.Classes)
	bg, _ = unwrapped.Attr.Value(pandoc.AttrBackground)
	assert.Equal(t, "img/author.png", bg)
}
