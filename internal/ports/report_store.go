package ports

import "github.com/marshallmcdonnell/advent-of-code-2019/internal/domain"

// ReportStore persists analysis reports.
type ReportStore interface {
	SaveReport(report domain.Report) (string, error)
	LoadReport(id string) (domain.Report, error)
}
