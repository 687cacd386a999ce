// Package deck reads slide deck front matter.
package deck

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingMetadata is returned when a deck has no front matter block.
var ErrMissingMetadata = errors.New("deck: missing metadata")

var tagPattern = regexp.MustCompile(`<.*?>`)

// Metadata is the YAML block between the first two "---" lines of a deck.
type Metadata struct {
	Title   string         `yaml:"title"`
	Author  Authors        `yaml:"author"`
	Event   string         `yaml:"event"`
	Subject string         `yaml:"subject"`
	Date    string         `yaml:"date"`
	Lang    string         `yaml:"lang"`
	Extra   map[string]any `yaml:",inline"`
}

// Authors accepts either a single author or a list.
type Authors []string

func (a *Authors) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		if s = strings.TrimSpace(s); s != "" {
			*a = Authors{s}
		}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*a = Authors(list)
		return nil
	default:
		return fmt.Errorf("deck: author must be a string or a list (line %d)", node.Line)
	}
}

// String joins the authors with ", ".
func (a Authors) String() string {
	return strings.Join(a, ", ")
}

// PlainTitle returns the title with inline HTML tags removed.
func (m Metadata) PlainTitle() string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(m.Title, ""))
}

// ReadMetadata parses the front matter of a deck. Subject falls back to
// Event when unset.
func ReadMetadata(r io.Reader) (Metadata, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "---" {
			break
		}
	}

	var block strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			break
		}
		block.WriteString(line)
		block.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return Metadata{}, fmt.Errorf("deck: read metadata: %w", err)
	}
	if strings.TrimSpace(block.String()) == "" {
		return Metadata{}, ErrMissingMetadata
	}

	var meta Metadata
	if err := yaml.Unmarshal([]byte(block.String()), &meta); err != nil {
		return Metadata{}, fmt.Errorf("deck: parse metadata: %w", err)
	}
	if meta.Subject == "" {
		meta.Subject = meta.Event
	}
	return meta, nil
}

// ReadMetadataFile opens path and parses its front matter.
func ReadMetadataFile(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("deck: open %s: %w", path, err)
	}
	defer f.Close()

	meta, err := ReadMetadata(f)
	if err != nil {
		return Metadata{}, fmt.Errorf("%s: %w", path, err)
	}
	return meta, nil
}
