// Package pages builds the index page of a course: a set of slide decks,
// optionally grouped into modules, described by a small YAML file.
package pages

import (
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-slidemacro/pkg/deck"
)

var leadingDigits = regexp.MustCompile(`^\d+`)

// Course is the YAML description of a course or one of its modules. A course
// lists either modules (sub-directories holding a file of the same name) or
// a slides directory.
type Course struct {
	Title     string   `yaml:"title"`
	Modules   []string `yaml:"modules"`
	SlidesDir string   `yaml:"slidesdir"`
}

// Index is a resolved course.
type Index struct {
	Title   string
	Name    string
	Decks   []Deck
	Modules []Index
}

// Deck is one slide deck of the index.
type Deck struct {
	Title  string
	Prefix string
	Source string
	HTML   string
	PDF    string
}

// Label is the link text: the numeric file prefix followed by the title.
func (d Deck) Label() string {
	return strings.TrimSpace(d.Prefix + " " + d.Title)
}

// Section is a flattened index node used for rendering.
type Section struct {
	Title string
	Name  string
	Depth int
	Decks []Link
}

// Link is a rendered deck entry.
type Link struct {
	Label string
	HTML  string
	PDF   string
}

// Sections flattens the index depth first. The top level is omitted when it
// only groups modules.
func (idx Index) Sections() []Section {
	var out []Section
	idx.flatten(0, &out)
	return out
}

func (idx Index) flatten(depth int, out *[]Section) {
	if len(idx.Decks) > 0 || depth > 0 {
		section := Section{Title: idx.Title, Name: idx.Name, Depth: depth}
		for _, d := range idx.Decks {
			section.Decks = append(section.Decks, Link{Label: d.Label(), HTML: d.HTML, PDF: d.PDF})
		}
		*out = append(*out, section)
	}
	for _, module := range idx.Modules {
		module.flatten(depth+1, out)
	}
}

// Build reads the course file at name in fsys. Deck links are relative to
// the directory holding that file.
func Build(fsys fs.FS, name string) (Index, error) {
	return build(fsys, path.Clean(name), "")
}

func build(fsys fs.FS, name, module string) (Index, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Index{}, fmt.Errorf("pages: read %s: %w", name, err)
	}
	var course Course
	if err := yaml.Unmarshal(raw, &course); err != nil {
		return Index{}, fmt.Errorf("pages: parse %s: %w", name, err)
	}

	idx := Index{Title: course.Title, Name: module}
	dir := path.Dir(name)

	if len(course.Modules) > 0 {
		for _, mod := range course.Modules {
			child, err := build(fsys, path.Join(dir, mod, path.Base(name)), mod)
			if err != nil {
				return Index{}, err
			}
			idx.Modules = append(idx.Modules, child)
		}
		return idx, nil
	}

	if course.SlidesDir == "" {
		return Index{}, fmt.Errorf("pages: %s lists neither modules nor slidesdir", name)
	}
	matches, err := fs.Glob(fsys, path.Join(dir, course.SlidesDir, "*.md"))
	if err != nil {
		return Index{}, fmt.Errorf("pages: list slides: %w", err)
	}
	for _, src := range matches {
		d, err := readDeck(fsys, src, dir)
		if err != nil {
			return Index{}, err
		}
		idx.Decks = append(idx.Decks, d)
	}
	return idx, nil
}

func readDeck(fsys fs.FS, src, dir string) (Deck, error) {
	f, err := fsys.Open(src)
	if err != nil {
		return Deck{}, fmt.Errorf("pages: open %s: %w", src, err)
	}
	defer f.Close()

	meta, err := deck.ReadMetadata(f)
	if err != nil {
		return Deck{}, fmt.Errorf("pages: %s: %w", src, err)
	}

	base := strings.TrimSuffix(path.Base(src), path.Ext(src))
	d := Deck{
		Title:  meta.PlainTitle(),
		Source: src,
		HTML:   path.Join("html", dir, base+".html"),
		PDF:    path.Join("pdf", dir, base+".pdf"),
	}
	if digits := leadingDigits.FindString(base); digits != "" {
		n, err := strconv.Atoi(digits)
		if err == nil {
			d.Prefix = strconv.Itoa(n) + "."
		}
	}
	return d, nil
}
