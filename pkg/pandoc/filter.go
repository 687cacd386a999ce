package pandoc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// Attribute keys written by the filters.
const (
	AttrBackground      = "data-background"
	AttrBackgroundImage = "data-background-image"
	AttrBackgroundSize  = "data-background-size"
)

// Filter rewrites a document in place. format is the pandoc output format.
type Filter interface {
	Name() string
	Apply(doc *Document, format string) error
}

// Options carries the settings filters may need.
type Options struct {
	// Images resolves image paths for url-encode. When nil, paths resolve
	// against BaseDir on disk.
	Images  fs.FS
	BaseDir string
}

func (o Options) images() fs.FS {
	if o.Images != nil {
		return o.Images
	}
	dir := o.BaseDir
	if dir == "" {
		dir = "."
	}
	return os.DirFS(dir)
}

type factory func(Options) Filter

var builtin = map[string]factory{
	"background-image": func(Options) Filter { return BackgroundImage{} },
	"contain-slide":    func(Options) Filter { return ContainSlide{} },
	"fix-header":       func(Options) Filter { return FixHeader{} },
	"special-slides":   func(Options) Filter { return SpecialSlides{} },
	"url-encode":       func(o Options) Filter { return URLEncode{Images: o.images()} },
}

// Names lists the built-in filter names.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the built-in filter called name.
func Lookup(name string, opts Options) (Filter, error) {
	f, ok := builtin[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("pandoc: unknown filter %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return f(opts), nil
}

// Decode reads a JSON AST.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("pandoc: decode document: %w", err)
	}
	if doc.Meta == nil {
		doc.Meta = Meta{}
	}
	return &doc, nil
}

// Encode writes doc as a JSON AST.
func Encode(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("pandoc: encode document: %w", err)
	}
	return nil
}

// RunFilters applies filters in order to the AST read from r and writes the
// result to w.
func RunFilters(ctx context.Context, r io.Reader, w io.Writer, format string, filters ...Filter) error {
	doc, err := Decode(r)
	if err != nil {
		return err
	}
	for _, f := range filters {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := f.Apply(doc, format); err != nil {
			return fmt.Errorf("pandoc: filter %s: %w", f.Name(), err)
		}
	}
	return Encode(w, doc)
}
