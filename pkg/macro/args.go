package macro

import (
	"fmt"

	"github.com/spf13/cast"
)

// Undefined is interpolated in place of missing or nil parameters.
const Undefined = "undefined"

// Text returns the textual form of a macro parameter.
func Text(value any) string {
	switch v := value.(type) {
	case nil:
		return Undefined
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	if s, err := cast.ToStringE(value); err == nil {
		return s
	}
	return fmt.Sprint(value)
}

// Texts maps Text over args.
func Texts(args []any) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = Text(arg)
	}
	return out
}

// Args converts string parameters into the variadic form accepted by Expand.
func Args(values ...string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func argAt(args []any, idx int) any {
	if idx < 0 || idx >= len(args) {
		return nil
	}
	return args[idx]
}
