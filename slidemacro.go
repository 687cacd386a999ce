// Package slidemacro expands image macros in remark slide decks.
//
// The three built-in macros turn an image source into an <img> tag:
//
//	![:scale 50%](pic.png)    <img src="pic.png" style="width: 50%" />
//	![:size 100, 200](pic.png) <img src="pic.png" style="width: 100px; height: 200px" />
//	![:author](me.png)        <img src="me.png" class=author-pic />
//
// Lower level pieces live under pkg/: macro (registry and builtins), remark
// (markdown expansion), render/template (pongo2 host), pandoc (JSON AST
// filters) and deck (front matter).
package slidemacro

import (
	"context"

	"github.com/goliatone/go-slidemacro/pkg/macro"
	"github.com/goliatone/go-slidemacro/pkg/remark"
)

// Scale renders an image scaled to percentage of the slide width.
func Scale(src string, percentage any) string {
	return macro.Scale(src, percentage)
}

// Size renders an image with pixel dimensions.
func Size(src string, width, height any) string {
	return macro.Size(src, width, height)
}

// Author renders an author portrait.
func Author(src string) string {
	return macro.Author(src)
}

// DefaultRegistry returns a registry holding the built-in macros.
func DefaultRegistry() *macro.Registry {
	return macro.NewDefaultRegistry()
}

// Expand replaces every macro token in markdown.
func Expand(ctx context.Context, markdown string, opts ...remark.Option) (string, error) {
	return remark.New(opts...).Expand(ctx, markdown)
}
