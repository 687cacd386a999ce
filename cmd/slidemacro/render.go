package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-slidemacro/internal/prompt"
)

func newRenderCommand(a *app) *cobra.Command {
	var interactive bool
	cmd := &cobra.Command{
		Use:   "render NAME SRC [ARGS...]",
		Short: "Expand a single macro",
		Example: `  slidemacro render scale pic.png 50%
  slidemacro render size pic.png 100 200
  slidemacro render -i`,
		Args: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}

			var inv prompt.Invocation
			if interactive {
				inv, err = prompt.Ask(cmd.Context(), a.driver, reg)
				if err != nil {
					return err
				}
			} else {
				inv = prompt.Invocation{Name: args[0], Src: args[1], Args: args[2:]}
			}

			out, err := inv.Expand(reg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for the macro, source and arguments")
	return cmd
}
