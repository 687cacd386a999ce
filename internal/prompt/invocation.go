package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-slidemacro/pkg/macro"
)

// Invocation is a macro call collected from the user.
type Invocation struct {
	Name string
	Src  string
	Args []string
}

// Expand runs the invocation against reg.
func (inv Invocation) Expand(reg *macro.Registry) (string, error) {
	return reg.Expand(inv.Name, inv.Src, macro.Args(inv.Args...)...)
}

type paramLister interface {
	Params() []string
}

var builtinParams = map[string][]string{
	macro.NameScale:  {"percentage"},
	macro.NameSize:   {"width", "height"},
	macro.NameAuthor: nil,
}

// Params returns the named parameters of m, or false when m does not
// declare them.
func Params(m macro.Macro) ([]string, bool) {
	if lister, ok := m.(paramLister); ok {
		return lister.Params(), true
	}
	params, ok := builtinParams[m.Name()]
	return params, ok
}

// Ask walks the user through choosing a macro, its source and arguments.
// For macros without declared parameters the user adds arguments one at a
// time until they decline another.
func Ask(ctx context.Context, driver Driver, reg *macro.Registry) (Invocation, error) {
	names := reg.List()
	if len(names) == 0 {
		return Invocation{}, errors.New("prompt: no macros registered")
	}

	idx, err := driver.Select(ctx, SelectConfig{
		Message: "Macro",
		Options: names,
	})
	if err != nil {
		return Invocation{}, err
	}
	if idx < 0 || idx >= len(names) {
		return Invocation{}, fmt.Errorf("prompt: invalid selection %d", idx)
	}

	inv := Invocation{Name: names[idx]}
	m, err := reg.Get(inv.Name)
	if err != nil {
		return Invocation{}, err
	}

	inv.Src, err = driver.Input(ctx, InputConfig{
		Message:   "Image source",
		Help:      "Path or URL of the image",
		Validator: required,
	})
	if err != nil {
		return Invocation{}, err
	}

	params, declared := Params(m)
	if !declared {
		inv.Args, err = askArgs(ctx, driver)
		if err != nil {
			return Invocation{}, err
		}
		return inv, nil
	}

	for _, param := range params {
		value, err := driver.Input(ctx, InputConfig{Message: param})
		if err != nil {
			return Invocation{}, err
		}
		inv.Args = append(inv.Args, strings.TrimSpace(value))
	}
	return inv, nil
}

func askArgs(ctx context.Context, driver Driver) ([]string, error) {
	var args []string
	for {
		more, err := driver.Confirm(ctx, ConfirmConfig{
			Message: "Add another argument?",
			Default: len(args) == 0,
		})
		if err != nil {
			return nil, err
		}
		if !more {
			return args, nil
		}
		value, err := driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("Argument %d", len(args)+1),
		})
		if err != nil {
			return nil, err
		}
		args = append(args, strings.TrimSpace(value))
	}
}

func required(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("a value is required")
	}
	return nil
}

