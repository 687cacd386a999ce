package deck

import "strings"

var postscriptEscaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

// PDFMark builds the ghostscript DOCINFO pdfmark for a deck.
func PDFMark(meta Metadata, creator string) string {
	var sb strings.Builder
	sb.WriteString("[ ")
	fields := []struct{ key, value string }{
		{"Title", meta.PlainTitle()},
		{"Author", meta.Author.String()},
		{"Subject", meta.Subject},
	}
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		sb.WriteString("/" + field.key + " (" + postscriptEscaper.Replace(field.value) + ") ")
	}
	sb.WriteString("/Creator (" + postscriptEscaper.Replace(creator) + ") /DOCINFO pdfmark")
	return sb.String()
}
