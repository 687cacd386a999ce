package macro

// Macro expands a named macro invocation into markup.
type Macro interface {
	Name() string
	Expand(src string, args ...any) (string, error)
}

// Func is the shape of a macro that cannot fail.
type Func func(src string, args ...any) string

type funcMacro struct {
	name string
	fn   Func
}

// New adapts fn into a Macro registered under name.
func New(name string, fn Func) Macro {
	return funcMacro{name: name, fn: fn}
}

func (m funcMacro) Name() string {
	return m.name
}

func (m funcMacro) Expand(src string, args ...any) (string, error) {
	if m.fn == nil {
		return "", nil
	}
	return m.fn(src, args...), nil
}
