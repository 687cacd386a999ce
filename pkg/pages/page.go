package pages

import (
	"embed"
	"fmt"
	"html"
	"io"
	"io/fs"
	"regexp"

	"github.com/goliatone/go-slidemacro/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

var markdownLink = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)

// DefaultInfo is shown in the About section when no text is given.
const DefaultInfo = "This page is generated with slidemacro."

// TemplatesFS exposes the built-in page templates.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// PageOptions controls the rendered index page.
type PageOptions struct {
	// Info is the About text. Markdown links become anchors.
	Info string
	// StyleSheet is linked from the page head when set.
	StyleSheet string
	// WithPDF lists PDF links next to the HTML ones.
	WithPDF bool
	// Archive is an optional download link for all PDFs.
	Archive string
	Lang    string
}

// Render writes the index page of idx to w.
func Render(w io.Writer, idx Index, opts PageOptions) error {
	engine, err := gotemplate.New(gotemplate.WithFS(TemplatesFS()))
	if err != nil {
		return fmt.Errorf("pages: template engine: %w", err)
	}

	info := opts.Info
	if info == "" {
		info = DefaultInfo
	}
	lang := opts.Lang
	if lang == "" {
		lang = "en"
	}

	data := map[string]any{
		"title":      idx.Title,
		"lang":       lang,
		"info":       infoHTML(info),
		"stylesheet": opts.StyleSheet,
		"with_pdf":   opts.WithPDF,
		"archive":    opts.Archive,
		"sections":   sectionData(idx.Sections()),
	}
	if _, err := engine.RenderTemplate("index.html", data, w); err != nil {
		return fmt.Errorf("pages: render index: %w", err)
	}
	return nil
}

// infoHTML escapes text and turns [label](href) into anchors.
func infoHTML(text string) string {
	return markdownLink.ReplaceAllString(html.EscapeString(text), `<a href="$2">$1</a>`)
}

// sectionData keeps numeric fields as ints; the engine would otherwise round
// trip structs through JSON and render depths as floats.
func sectionData(sections []Section) []any {
	out := make([]any, 0, len(sections))
	for _, section := range sections {
		decks := make([]any, 0, len(section.Decks))
		for _, link := range section.Decks {
			decks = append(decks, map[string]any{
				"label": link.Label,
				"html":  link.HTML,
				"pdf":   link.PDF,
			})
		}
		out = append(out, map[string]any{
			"title": section.Title,
			"name":  section.Name,
			"depth": section.Depth,
			"decks": decks,
		})
	}
	return out
}
