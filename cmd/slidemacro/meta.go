package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-slidemacro/pkg/deck"
)

func newMetaCommand(a *app) *cobra.Command {
	var pdfmark bool
	cmd := &cobra.Command{
		Use:   "meta FILE",
		Short: "Print deck front matter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := deck.ReadMetadataFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if pdfmark {
				_, err = fmt.Fprintln(out, deck.PDFMark(meta, "slidemacro "+version))
				return err
			}
			return printMetadata(out, meta)
		},
	}
	cmd.Flags().BoolVar(&pdfmark, "pdfmark", false, "print the ghostscript DOCINFO pdfmark instead")
	return cmd
}

func printMetadata(w io.Writer, meta deck.Metadata) error {
	rows := []struct{ key, value string }{
		{"title", meta.PlainTitle()},
		{"author", meta.Author.String()},
		{"event", meta.Event},
		{"subject", meta.Subject},
		{"date", meta.Date},
		{"lang", meta.Lang},
	}
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", row.key, row.value); err != nil {
			return err
		}
	}
	return nil
}
