package cli

import (
	"github.com/spf13/cobra"

	"github.com/marshallmcdonnell/advent-of-code-2019/internal/infra/logger"
	"github.com/marshallmcdonnell/advent-of-code-2019/internal/usecase"
)

func intersectionsCmd(g *globals) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "intersections <input>",
		Short: "List every crossing with its distance and combined steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = ws.cfg.Defaults.Format
			}

			inputPath, err := resolveInputPath(ws, args[0])
			if err != nil {
				return err
			}

			uc := usecase.NewAnalyzeWires(ws.source, nil,
				usecase.WithLogger(logger.For("intersections")),
				usecase.WithExpectedPaths(ws.cfg.ExpectedPaths),
			)
			set, err := uc.Build(cmd.Context(), inputPath)
			if err != nil {
				return err
			}

			return printCrossings(cmd.OutOrStdout(), set.Crossings(), format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
