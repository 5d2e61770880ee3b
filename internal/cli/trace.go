package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marshallmcdonnell/advent-of-code-2019/internal/domain"
)

func traceCmd() *cobra.Command {
	var format string
	var limit int

	c := &cobra.Command{
		Use:   "trace <instructions>",
		Short: `Trace one instruction string (e.g. "U2,L2") and print its points`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := ""
			if len(args) == 1 {
				in = args[0]
			}

			p, err := domain.Trace(in)
			if err != nil {
				return err
			}

			points := p.Points()
			truncated := false
			if limit > 0 && len(points) > limit {
				points = points[:limit]
				truncated = true
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"steps":     p.Len(),
					"end":       p.Last(),
					"points":    points,
					"truncated": truncated,
				})
			case "pretty", "":
				fmt.Fprintf(out, "Steps: %d\n", p.Len())
				fmt.Fprintf(out, "End:   %s\n", p.Last())
				for i, pt := range points {
					fmt.Fprintf(out, "%6d %s\n", i, pt)
				}
				if truncated {
					fmt.Fprintf(out, "... %d more\n", p.Len()+1-len(points))
				}
				return nil
			default:
				return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
			}
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().IntVar(&limit, "limit", 50, "Print at most this many points (0 = all)")
	return c
}
