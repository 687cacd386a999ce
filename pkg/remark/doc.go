// Package remark expands remark slide macros embedded in markdown.
//
// A macro token has the form
//
//	![:NAME ARG1, ARG2](SRC)
//
// NAME selects a macro from a macro.Registry, the comma separated arguments
// are trimmed and empty entries dropped, and SRC becomes the image source.
// Omitting "(SRC)" passes macro.Undefined as the source. Tokens inside fenced
// code blocks and inline code spans are left untouched; the rest of the
// markdown is copied verbatim.
package remark
