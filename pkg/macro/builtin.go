package macro

// Built-in macro names.
const (
	NameScale  = "scale"
	NameSize   = "size"
	NameAuthor = "author"
)

// AuthorPicClass is the CSS class attached by the author macro.
const AuthorPicClass = "author-pic"

// Scale renders an image whose width is the given percentage, e.g. "50%".
func Scale(src string, percentage any) string {
	return `<img src="` + src + `" style="width: ` + Text(percentage) + `" />`
}

// Size renders an image with explicit pixel dimensions.
func Size(src string, width, height any) string {
	return `<img src="` + src + `" style="width: ` + Text(width) + `px; height: ` + Text(height) + `px" />`
}

// Author renders an author picture.
func Author(src string) string {
	return `<img src="` + src + `" class=` + AuthorPicClass + ` />`
}

// Builtins returns the built-in macros in registration order.
func Builtins() []Macro {
	return []Macro{
		New(NameScale, func(src string, args ...any) string {
			return Scale(src, argAt(args, 0))
		}),
		New(NameSize, func(src string, args ...any) string {
			return Size(src, argAt(args, 0), argAt(args, 1))
		}),
		New(NameAuthor, func(src string, _ ...any) string {
			return Author(src)
		}),
	}
}
