package pandoc

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Element type tags used by the filters.
const (
	TypeHeader         = "Header"
	TypeDiv            = "Div"
	TypeHorizontalRule = "HorizontalRule"
	TypeStrong         = "Strong"
	TypeStr            = "Str"
	TypeMetaString     = "MetaString"
	TypeMetaInlines    = "MetaInlines"
)

// Element is a tagged AST node. Content is kept raw so nodes the filters do
// not touch round-trip unchanged.
type Element struct {
	T string          `json:"t"`
	C json.RawMessage `json:"c,omitempty"`
}

// Meta holds document metadata values.
type Meta map[string]Element

// Document is the top-level pandoc JSON AST.
type Document struct {
	APIVersion []int     `json:"pandoc-api-version"`
	Meta       Meta      `json:"meta"`
	Blocks     []Element `json:"blocks"`
}

// MetaString builds a MetaString value.
func MetaString(s string) Element {
	raw, _ := json.Marshal(s)
	return Element{T: TypeMetaString, C: raw}
}

// Text returns the textual value of a MetaString or MetaInlines entry.
func (m Meta) Text(key string) (string, bool) {
	el, ok := m[key]
	if !ok {
		return "", false
	}
	switch el.T {
	case TypeMetaString:
		var s string
		if err := json.Unmarshal(el.C, &s); err != nil {
			return "", false
		}
		return s, true
	case TypeMetaInlines:
		var inlines []Element
		if err := json.Unmarshal(el.C, &inlines); err != nil {
			return "", false
		}
		words := make([]string, 0, len(inlines))
		for _, inline := range inlines {
			if inline.T != TypeStr {
				continue
			}
			var word string
			if err := json.Unmarshal(inline.C, &word); err == nil {
				words = append(words, word)
			}
		}
		return strings.Join(words, " "), true
	default:
		return "", false
	}
}

// Attr is the pandoc (identifier, classes, key-value pairs) triple.
type Attr struct {
	ID        string
	Classes   []string
	KeyValues [][2]string
}

func (a Attr) MarshalJSON() ([]byte, error) {
	classes := a.Classes
	if classes == nil {
		classes = []string{}
	}
	kv := a.KeyValues
	if kv == nil {
		kv = [][2]string{}
	}
	return json.Marshal([]any{a.ID, classes, kv})
}

func (a *Attr) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("pandoc: attr: %w", err)
	}
	if len(raw) != 3 {
		return fmt.Errorf("pandoc: attr: expected 3 elements, got %d", len(raw))
	}
	var out Attr
	if err := json.Unmarshal(raw[0], &out.ID); err != nil {
		return fmt.Errorf("pandoc: attr id: %w", err)
	}
	if err := json.Unmarshal(raw[1], &out.Classes); err != nil {
		return fmt.Errorf("pandoc: attr classes: %w", err)
	}
	if err := json.Unmarshal(raw[2], &out.KeyValues); err != nil {
		return fmt.Errorf("pandoc: attr attributes: %w", err)
	}
	*a = out
	return nil
}

// Value returns the attribute value stored under key.
func (a Attr) Value(key string) (string, bool) {
	for _, kv := range a.KeyValues {
		if kv[0] == key {
			return kv[1], true
		}
	}
	return "", false
}

// SetDefault adds key=value unless key is already present.
func (a *Attr) SetDefault(key, value string) {
	if _, ok := a.Value(key); ok {
		return
	}
	a.KeyValues = append(a.KeyValues, [2]string{key, value})
}

// HasClass reports whether name is among the classes.
func (a Attr) HasClass(name string) bool {
	for _, class := range a.Classes {
		if class == name {
			return true
		}
	}
	return false
}

// AddClass appends name unless present.
func (a *Attr) AddClass(name string) {
	if !a.HasClass(name) {
		a.Classes = append(a.Classes, name)
	}
}

// RemoveClass drops every occurrence of name.
func (a *Attr) RemoveClass(name string) {
	kept := a.Classes[:0]
	for _, class := range a.Classes {
		if class != name {
			kept = append(kept, class)
		}
	}
	a.Classes = kept
}

// Header is a decoded Header block.
type Header struct {
	Level   int
	Attr    Attr
	Inlines []Element
}

// DecodeHeader decodes a Header element.
func DecodeHeader(el Element) (Header, error) {
	if el.T != TypeHeader {
		return Header{}, fmt.Errorf("pandoc: expected %s, got %s", TypeHeader, el.T)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(el.C, &raw); err != nil {
		return Header{}, fmt.Errorf("pandoc: header: %w", err)
	}
	if len(raw) != 3 {
		return Header{}, fmt.Errorf("pandoc: header: expected 3 elements, got %d", len(raw))
	}
	var h Header
	if err := json.Unmarshal(raw[0], &h.Level); err != nil {
		return Header{}, fmt.Errorf("pandoc: header level: %w", err)
	}
	if err := json.Unmarshal(raw[1], &h.Attr); err != nil {
		return Header{}, err
	}
	if err := json.Unmarshal(raw[2], &h.Inlines); err != nil {
		return Header{}, fmt.Errorf("pandoc: header inlines: %w", err)
	}
	return h, nil
}

// Element encodes the header back into an AST node.
func (h Header) Element() (Element, error) {
	inlines := h.Inlines
	if inlines == nil {
		inlines = []Element{}
	}
	raw, err := json.Marshal([]any{h.Level, h.Attr, inlines})
	if err != nil {
		return Element{}, fmt.Errorf("pandoc: encode header: %w", err)
	}
	return Element{T: TypeHeader, C: raw}, nil
}

// Div is a decoded Div block.
type Div struct {
	Attr   Attr
	Blocks []Element
}

// DecodeDiv decodes a Div element.
func DecodeDiv(el Element) (Div, error) {
	if el.T != TypeDiv {
		return Div{}, fmt.Errorf("pandoc: expected %s, got %s", TypeDiv, el.T)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(el.C, &raw); err != nil {
		return Div{}, fmt.Errorf("pandoc: div: %w", err)
	}
	if len(raw) != 2 {
		return Div{}, fmt.Errorf("pandoc: div: expected 2 elements, got %d", len(raw))
	}
	var d Div
	if err := json.Unmarshal(raw[0], &d.Attr); err != nil {
		return Div{}, err
	}
	if err := json.Unmarshal(raw[1], &d.Blocks); err != nil {
		return Div{}, fmt.Errorf("pandoc: div blocks: %w", err)
	}
	return d, nil
}

// Element encodes the div back into an AST node.
func (d Div) Element() (Element, error) {
	blocks := d.Blocks
	if blocks == nil {
		blocks = []Element{}
	}
	raw, err := json.Marshal([]any{d.Attr, blocks})
	if err != nil {
		return Element{}, fmt.Errorf("pandoc: encode div: %w", err)
	}
	return Element{T: TypeDiv, C: raw}, nil
}
