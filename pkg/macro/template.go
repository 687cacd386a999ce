package macro

import (
	"errors"
	"fmt"
	"strings"

	rendertemplate "github.com/goliatone/go-slidemacro/pkg/render/template"
)

// TemplateMacro expands a template body. The body sees "src", "args" (the
// textual parameters) and one variable per declared parameter name, bound
// positionally.
type TemplateMacro struct {
	name     string
	body     string
	params   []string
	renderer rendertemplate.TemplateRenderer
}

var _ Macro = (*TemplateMacro)(nil)

// NewTemplate builds a macro rendered through renderer.
func NewTemplate(name, body string, params []string, renderer rendertemplate.TemplateRenderer) (*TemplateMacro, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("macro: template macro name is required")
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("macro: template macro %q has an empty body", name)
	}
	if renderer == nil {
		return nil, fmt.Errorf("macro: template macro %q needs a renderer", name)
	}

	seen := make(map[string]struct{}, len(params))
	cleaned := make([]string, 0, len(params))
	for _, param := range params {
		param = strings.TrimSpace(param)
		switch param {
		case "":
			return nil, fmt.Errorf("macro: template macro %q declares an empty parameter", name)
		case "src", "args":
			return nil, fmt.Errorf("macro: template macro %q: parameter %q is reserved", name, param)
		}
		if _, dup := seen[param]; dup {
			return nil, fmt.Errorf("macro: template macro %q declares %q twice", name, param)
		}
		seen[param] = struct{}{}
		cleaned = append(cleaned, param)
	}

	return &TemplateMacro{
		name:     name,
		body:     body,
		params:   cleaned,
		renderer: renderer,
	}, nil
}

func (m *TemplateMacro) Name() string {
	return m.name
}

// Params returns the declared parameter names.
func (m *TemplateMacro) Params() []string {
	return append([]string(nil), m.params...)
}

func (m *TemplateMacro) Expand(src string, args ...any) (string, error) {
	texts := Texts(args)
	data := map[string]any{
		"src":  src,
		"args": texts,
	}
	for idx, param := range m.params {
		if idx < len(texts) {
			data[param] = texts[idx]
			continue
		}
		data[param] = Undefined
	}

	out, err := m.renderer.RenderString(m.body, data)
	if err != nil {
		return "", fmt.Errorf("macro: expand %q: %w", m.name, err)
	}
	return out, nil
}
