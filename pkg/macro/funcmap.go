package macro

import "html/template"

// FuncMap exposes every macro in reg to html/template. Results are typed as
// template.HTML so the generated tags are not escaped.
func FuncMap(reg *Registry) template.FuncMap {
	funcs := template.FuncMap{}
	if reg == nil {
		return funcs
	}
	for _, name := range reg.List() {
		m := reg.MustGet(name)
		funcs[name] = func(src string, args ...any) (template.HTML, error) {
			out, err := m.Expand(src, args...)
			if err != nil {
				return "", err
			}
			return template.HTML(out), nil
		}
	}
	return funcs
}
