package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-slidemacro/pkg/remark"
	"github.com/goliatone/go-slidemacro/pkg/sanitize"
)

type expandOptions struct {
	output      string
	passthrough bool
	watch       bool
}

func newExpandCommand(a *app) *cobra.Command {
	var opts expandOptions
	cmd := &cobra.Command{
		Use:   "expand [files...]",
		Short: "Expand slide macros in remark markdown",
		Long: `Replaces ![:name args](src) tokens with the markup produced by the named macro.
Reads stdin when no files are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExpand(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "output file, or directory when expanding several files")
	flags.Bool("strict", true, "fail on unknown macros")
	flags.BoolVar(&opts.passthrough, "passthrough", false, "leave unknown macros untouched")
	flags.Bool("sanitize", false, "sanitize macro output")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "expand again whenever an input file changes")
	_ = a.v.BindPFlag("expand.strict", flags.Lookup("strict"))
	_ = a.v.BindPFlag("expand.sanitize", flags.Lookup("sanitize"))
	return cmd
}

func (a *app) runExpand(cmd *cobra.Command, opts expandOptions, files []string) error {
	expander, err := a.expander(opts)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if len(files) == 0 {
		if opts.watch {
			return fmt.Errorf("--watch needs at least one input file")
		}
		return a.expandStream(ctx, expander, cmd.InOrStdin(), cmd.OutOrStdout(), opts.output)
	}

	for _, file := range files {
		if err := a.expandFile(ctx, expander, file, cmd.OutOrStdout(), opts.output, len(files) > 1); err != nil {
			return err
		}
	}
	if !opts.watch {
		return nil
	}
	return watchFiles(ctx, a.logger, files, func(file string) error {
		return a.expandFile(ctx, expander, file, cmd.OutOrStdout(), opts.output, len(files) > 1)
	})
}

func (a *app) expander(opts expandOptions) (*remark.Expander, error) {
	reg, err := a.registry()
	if err != nil {
		return nil, err
	}
	options := []remark.Option{
		remark.WithRegistry(reg),
		remark.WithLogger(a.logger),
	}
	if opts.passthrough || !a.cfg.Expand.Strict {
		options = append(options, remark.WithPassthroughUnknown())
	}
	if a.cfg.Expand.Sanitize {
		options = append(options, remark.WithSanitizer(sanitize.Default()))
	}
	return remark.New(options...), nil
}

func (a *app) expandStream(ctx context.Context, expander *remark.Expander, r io.Reader, stdout io.Writer, output string) error {
	if output == "" {
		return expander.ExpandReader(ctx, r, stdout)
	}
	var buf bytes.Buffer
	if err := expander.ExpandReader(ctx, r, &buf); err != nil {
		return err
	}
	return os.WriteFile(output, buf.Bytes(), 0o644)
}

func (a *app) expandFile(ctx context.Context, expander *remark.Expander, file string, stdout io.Writer, output string, many bool) error {
	raw, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	out, err := expander.Expand(ctx, string(raw))
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	target, err := outputPath(file, output, many)
	if err != nil {
		return err
	}
	if target == "" {
		_, err = io.WriteString(stdout, out)
		return err
	}
	if err := os.WriteFile(target, []byte(out), 0o644); err != nil {
		return err
	}
	a.logger.Info().Str("input", file).Str("output", target).Msg("expanded")
	return nil
}

// outputPath resolves where the expansion of file goes. An empty result
// means stdout.
func outputPath(file, output string, many bool) (string, error) {
	if output == "" {
		return "", nil
	}
	info, err := os.Stat(output)
	isDir := err == nil && info.IsDir()
	if many && !isDir {
		if err := os.MkdirAll(output, 0o755); err != nil {
			return "", err
		}
		isDir = true
	}
	if isDir {
		return filepath.Join(output, filepath.Base(file)), nil
	}
	return output, nil
}
