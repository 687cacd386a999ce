package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-slidemacro/pkg/pandoc"
)

func newFilterCommand(a *app) *cobra.Command {
	var baseDir string
	cmd := &cobra.Command{
		Use:   "filter NAMES... [FORMAT]",
		Short: "Run pandoc JSON filters on stdin",
		Long: fmt.Sprintf(`Reads a pandoc JSON AST from stdin, applies the named filters in order and
writes the result to stdout. pandoc passes the output format as the last
argument; it is accepted there when it is not a filter name.

Filters: %s`, strings.Join(pandoc.Names(), ", ")),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("base-dir") {
				baseDir = a.cfg.Filters.BaseDir
			}
			opts := pandoc.Options{BaseDir: baseDir}

			filters, format, err := parseFilterArgs(args, opts)
			if err != nil {
				return err
			}
			if format == "" {
				format = os.Getenv("PANDOC_WRITER_FORMAT")
			}

			a.logger.Debug().Strs("filters", args).Str("format", format).Msg("running filters")
			return pandoc.RunFilters(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), format, filters...)
		},
	}
	cmd.Flags().StringVar(&baseDir, "base-dir", ".", "directory relative image paths resolve against")
	return cmd
}

// parseFilterArgs resolves filter names in order. Only the last argument may
// be the output format, and format names never contain a dash.
func parseFilterArgs(args []string, opts pandoc.Options) ([]pandoc.Filter, string, error) {
	var (
		filters []pandoc.Filter
		format  string
	)
	for i, arg := range args {
		f, err := pandoc.Lookup(arg, opts)
		if err != nil {
			if i == len(args)-1 && i > 0 && !strings.Contains(arg, "-") {
				format = arg
				continue
			}
			return nil, "", err
		}
		filters = append(filters, f)
	}
	return filters, format, nil
}
