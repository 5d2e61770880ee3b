package cli

import (
	"github.com/spf13/cobra"

	"github.com/marshallmcdonnell/advent-of-code-2019/internal/domain"
)

func showCmd(g *globals) *cobra.Command {
	var part int
	var format string

	c := &cobra.Command{
		Use:   "show <report-id>",
		Short: "Print a saved report",
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

			report, err := ws.store.LoadReport(args[0])
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), report, args[0], p, format)
		},
	}

	c.Flags().IntVarP(&part, "part", "p", int(domain.PartDistance), "Puzzle part: 1 (Manhattan distance) or 2 (combined steps)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
