package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-slidemacro/internal/prompt"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered macros",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			for _, name := range reg.List() {
				params, _ := prompt.Params(reg.MustGet(name))
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), usage(name, params)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func usage(name string, params []string) string {
	if len(params) == 0 {
		return "![:" + name + "](src)"
	}
	return "![:" + name + " " + strings.Join(params, ", ") + "](src)"
}
