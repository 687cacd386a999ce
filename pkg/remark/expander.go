package remark

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-slidemacro/pkg/macro"
)

// Expander replaces macro tokens with the markup their macros produce.
type Expander struct {
	cfg config
}

// New constructs an Expander backed by the built-in macros unless
// WithRegistry is supplied.
func New(options ...Option) *Expander {
	cfg := config{
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = macro.NewDefaultRegistry()
	}
	return &Expander{cfg: cfg}
}

// Registry returns the registry macros are resolved against.
func (e *Expander) Registry() *macro.Registry {
	return e.cfg.registry
}

// Expand returns markdown with every macro token expanded.
func (e *Expander) Expand(ctx context.Context, markdown string) (string, error) {
	var (
		sb      strings.Builder
		scanErr error
	)
	sb.Grow(len(markdown))

	forEachLine(markdown, func(line string, lineNo, offset int, code bool) bool {
		if err := ctx.Err(); err != nil {
			scanErr = err
			return false
		}
		if code {
			sb.WriteString(line)
			return true
		}
		expanded, err := e.expandLine(line, lineNo, offset)
		if err != nil {
			scanErr = err
			return false
		}
		sb.WriteString(expanded)
		return true
	})
	if scanErr != nil {
		return "", scanErr
	}
	return sb.String(), nil
}

// ExpandReader reads a document from r and writes the expansion to w.
func (e *Expander) ExpandReader(ctx context.Context, r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("remark: read input: %w", err)
	}
	out, err := e.Expand(ctx, string(data))
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("remark: write output: %w", err)
	}
	return nil
}

// Invoke expands a single invocation.
func (e *Expander) Invoke(inv Invocation) (string, error) {
	m, err := e.cfg.registry.Get(inv.Name)
	if err != nil {
		return "", err
	}
	out, err := m.Expand(inv.Src, macro.Args(inv.Args...)...)
	if err != nil {
		return "", err
	}
	if e.cfg.sanitizer != nil {
		out = e.cfg.sanitizer.Sanitize(out)
	}
	return out, nil
}

func (e *Expander) expandLine(line string, lineNo, offset int) (string, error) {
	invocations := scanLine(line, lineNo, offset)
	if len(invocations) == 0 {
		return line, nil
	}

	var sb strings.Builder
	last := 0
	for _, inv := range invocations {
		start, end := inv.Start-offset, inv.End-offset
		sb.WriteString(line[last:start])
		last = end

		out, err := e.Invoke(inv)
		if err != nil {
			if errors.Is(err, macro.ErrMacroNotFound) && e.cfg.passthrough {
				e.cfg.logger.Debug().Str("macro", inv.Name).Int("line", lineNo).Msg("leaving unknown macro untouched")
				sb.WriteString(inv.Raw)
				continue
			}
			return "", fmt.Errorf("remark: line %d: %w", lineNo, err)
		}
		e.cfg.logger.Debug().
			Str("macro", inv.Name).
			Strs("args", inv.Args).
			Str("src", inv.Src).
			Int("line", lineNo).
			Msg("expanded macro")
		sb.WriteString(out)
	}
	sb.WriteString(line[last:])
	return sb.String(), nil
}
