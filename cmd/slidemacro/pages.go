package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-slidemacro/pkg/pages"
	"github.com/goliatone/go-slidemacro/pkg/theme"
)

type pagesOptions struct {
	info    string
	withPDF bool
	archive string
}

func newPagesCommand(a *app) *cobra.Command {
	var opts pagesOptions
	cmd := &cobra.Command{
		Use:   "pages ABOUT.yml DIR",
		Short: "Build the index page of a course",
		Long: `Reads a course file (title plus modules or slidesdir), collects the title of
every deck from its front matter and writes DIR/index.html. When a theme is
configured it is copied to DIR/html/theme/NAME and linked from the page.
DIR must not exist.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPages(cmd, opts, args[0], args[1])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.info, "info", pages.DefaultInfo, "about text; [label](href) becomes a link")
	flags.BoolVar(&opts.withPDF, "with-pdf", false, "list PDF links")
	flags.StringVar(&opts.archive, "archive", "", "link to an archive of all PDFs")
	flags.String("theme", "", "theme name or directory")
	flags.String("theme-root", "theme", "directory holding named themes")
	_ = a.v.BindPFlag("theme.name", flags.Lookup("theme"))
	return cmd
}

func (a *app) runPages(cmd *cobra.Command, opts pagesOptions, about, outDir string) error {
	if _, err := os.Stat(outDir); err == nil {
		return fmt.Errorf("output path %s exists", outDir)
	}

	idx, err := pages.Build(os.DirFS(filepath.Dir(about)), filepath.Base(about))
	if err != nil {
		return err
	}

	page := pages.PageOptions{
		Info:    opts.info,
		WithPDF: opts.withPDF,
		Archive: opts.archive,
	}
	if name := a.cfg.Theme.Name; name != "" {
		th, err := theme.Find(a.themeRoot(cmd), name)
		if err != nil {
			return err
		}
		dst := filepath.Join(outDir, "html", "theme", th.Name)
		if err := th.CopyTo(dst); err != nil {
			return err
		}
		a.logger.Info().Str("theme", th.Name).Str("dir", dst).Msg("copied theme")
		page.StyleSheet = path.Join("html", "theme", th.Name, theme.StyleSheet)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	target := filepath.Join(outDir, "index.html")
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	if err := pages.Render(f, idx, page); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	a.logger.Info().Str("output", target).Int("sections", len(idx.Sections())).Msg("wrote index")
	_, err = fmt.Fprintln(cmd.OutOrStdout(), target)
	return err
}

func newThemesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := a.themeRoot(cmd)
			names, err := theme.Available(root)
			if err != nil {
				return err
			}
			for _, name := range names {
				if _, err := theme.Find(root, name); err != nil {
					a.logger.Warn().Err(err).Str("theme", name).Msg("incomplete theme")
					continue
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().String("theme-root", "theme", "directory holding named themes")
	return cmd
}

// themeRoot prefers an explicit --theme-root over the configured root.
func (a *app) themeRoot(cmd *cobra.Command) string {
	if flag := cmd.Flags().Lookup("theme-root"); flag != nil && flag.Changed {
		return flag.Value.String()
	}
	return a.cfg.Theme.Root
}
