package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/marshallmcdonnell/advent-of-code-2019/internal/domain"
)

type theme struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Answer lipgloss.Style
	Faint  lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title:  lipgloss.NewStyle().Bold(true),
		Label:  lipgloss.NewStyle().Faint(true),
		Answer: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Faint:  lipgloss.NewStyle().Faint(true),
	}
}

const noIntersection = "no intersection found"

func printReport(w io.Writer, report domain.Report, reportID string, part domain.Part, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"report_id": reportID,
			"part":      int(part),
			"found":     report.Found(),
			"report":    report,
		}
		if v, ok := report.Answer(part); ok {
			payload["answer"] = v
		} else {
			payload["answer"] = nil
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyReport(w, report, reportID, part)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyReport(w io.Writer, report domain.Report, reportID string, part domain.Part) {
	th := defaultTheme()

	fmt.Fprintln(w, th.Title.Render("Input: "+report.Source))
	for i, p := range report.Paths {
		fmt.Fprintf(w, "%s %d: %d instructions, %d steps, ends at %s\n",
			th.Label.Render("Path"), i+1, p.Instructions, p.Steps, p.End)
	}
	if reportID != "" {
		fmt.Fprintf(w, "%s %s\n", th.Label.Render("Report:"), reportID)
	}
	fmt.Fprintln(w)

	if !report.Found() {
		fmt.Fprintln(w, noIntersection)
		return
	}

	fmt.Fprintf(w, "%s %d\n", th.Label.Render("Intersections:"), len(report.Intersections))

	switch part {
	case domain.PartSteps:
		fmt.Fprintf(w, "Fewest combined steps: %s at %s\n",
			th.Answer.Render(fmt.Sprint(report.Cheapest.Value)), report.Cheapest.Point)
	default:
		fmt.Fprintf(w, "Closest intersection: %s Distance: %s\n",
			report.Closest.Point, th.Answer.Render(fmt.Sprint(report.Closest.Value)))
	}
}

func printCrossings(w io.Writer, crossings []domain.Crossing, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"intersections": crossings})
	case "pretty", "":
		if len(crossings) == 0 {
			fmt.Fprintln(w, noIntersection)
			return nil
		}
		th := defaultTheme()
		fmt.Fprintln(w, th.Title.Render(fmt.Sprintf("%-16s %10s %10s", "POINT", "DISTANCE", "STEPS")))
		for _, c := range crossings {
			fmt.Fprintf(w, "%-16s %10d %10d\n", c.Point, c.Distance, c.Steps)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
