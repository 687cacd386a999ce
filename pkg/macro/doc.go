// Package macro implements the slide image macros (scale, size, author) and
// the registry hosts use to dispatch them by name.
//
// Every macro receives the image source as an explicit first argument followed
// by positional parameters. Parameters are interpolated verbatim using their
// textual form; missing or nil parameters render as Undefined. Built-in macros
// never fail and keep no state, so they are safe to call from any goroutine.
package macro
