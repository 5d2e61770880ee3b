package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marshallmcdonnell/advent-of-code-2019/internal/usecase"
)

func validateCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <input>",
		Short: "Check every instruction line of an input (no intersection search)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}

			inputPath, err := resolveInputPath(ws, args[0])
			if err != nil {
				return err
			}

			uc := usecase.NewValidateWires(ws.source)
			checks, err := uc.Execute(cmd.Context(), inputPath)

			out := cmd.OutOrStdout()
			for _, chk := range checks {
				if chk.Err != nil {
					fmt.Fprintf(out, "line %d: FAIL %v\n", chk.Line, chk.Err)
					continue
				}
				fmt.Fprintf(out, "line %d: OK (%d steps)\n", chk.Line, chk.Steps)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "OK")
			return nil
		},
	}
}
