package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marshallmcdonnell/advent-of-code-2019/internal/domain"
	"github.com/marshallmcdonnell/advent-of-code-2019/internal/infra/logger"
	"github.com/marshallmcdonnell/advent-of-code-2019/internal/usecase"
)

func solveCmd(g *globals) *cobra.Command {
	var part int
	var format string
	var save bool

	c := &cobra.Command{
		Use:   "solve <input>",
		Short: "Find the crossing closest to the origin (part 1) or with the fewest combined steps (part 2)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}

			p := ws.cfg.Defaults.Part
			if cmd.Flags().Changed("part") {
				if p, err = domain.ParsePart(part); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("format") {
				format = ws.cfg.Defaults.Format
			}

			inputPath, err := resolveInputPath(ws, args[0])
			if err != nil {
				return err
			}

			store := ws.store
			if !save {
				store = nil
			}

			uc := usecase.NewAnalyzeWires(ws.source, store,
				usecase.WithLogger(logger.For("solve")),
				usecase.WithExpectedPaths(ws.cfg.ExpectedPaths),
			)

			report, reportID, err := uc.Execute(cmd.Context(), inputPath)
			if err != nil {
				if seg, ok := domain.OffendingInput(err); ok {
					return fmt.Errorf("malformed instruction %q: %w", seg, err)
				}
				return err
			}

			return printReport(cmd.OutOrStdout(), report, reportID, p, format)
		},
	}

	c.Flags().IntVarP(&part, "part", "p", int(domain.PartDistance), "Puzzle part: 1 (Manhattan distance) or 2 (combined steps)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&save, "save", false, "Save the report under reports/")
	return c
}
