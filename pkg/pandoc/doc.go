// Package pandoc implements pandoc JSON filters that prepare slide decks for
// reveal.js output. A filter reads the pandoc AST from stdin and writes the
// modified AST to stdout; see RunFilters.
package pandoc
