package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/marshallmcdonnell/advent-of-code-2019/internal/domain"
	"github.com/marshallmcdonnell/advent-of-code-2019/internal/ports"
)

// AnalyzeWires traces every instruction line of an input and reports where the
// resulting paths cross.
type AnalyzeWires struct {
	source   ports.InstructionSource
	store    ports.ReportStore
	logger   *slog.Logger
	now      func() time.Time
	expected int
}

type AnalyzeOption func(*AnalyzeWires)

func WithLogger(l *slog.Logger) AnalyzeOption {
	return func(uc *AnalyzeWires) {
		if l != nil {
			uc.logger = l
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) AnalyzeOption {
	return func(uc *AnalyzeWires) {
		if now != nil {
			uc.now = now
		}
	}
}

// WithExpectedPaths rejects inputs that do not hold exactly n instruction
// lines. Zero accepts any count.
func WithExpectedPaths(n int) AnalyzeOption {
	return func(uc *AnalyzeWires) { uc.expected = n }
}

// NewAnalyzeWires builds the use case. store may be nil to skip persisting.
func NewAnalyzeWires(src ports.InstructionSource, store ports.ReportStore, opts ...AnalyzeOption) *AnalyzeWires {
	uc := &AnalyzeWires{
		source: src,
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Build loads and traces the input without ranking anything.
func (uc *AnalyzeWires) Build(ctx context.Context, inputPath string) (domain.PathSet, error) {
	lines, err := uc.source.LoadInstructions(inputPath)
	if err != nil {
		return domain.PathSet{}, err
	}

	if uc.expected > 0 && len(lines) != uc.expected {
		return domain.PathSet{}, &domain.OpError{
			Op:   "usecase.analyze_wires",
			Kind: domain.KindInvalidInput,
			Path: inputPath,
			Err:  fmt.Errorf("%w: expected %d, got %d", domain.ErrWrongPathCount, uc.expected, len(lines)),
		}
	}

	paths := make([]domain.Path, 0, len(lines))
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return domain.PathSet{}, err
		}

		p, err := domain.Trace(line)
		if err != nil {
			return domain.PathSet{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		uc.logger.Debug("path.traced", "line", i+1, "steps", p.Len(), "distinct", p.Distinct())
		paths = append(paths, p)
	}

	return domain.NewPathSet(paths...), nil
}

// Execute analyses inputPath and returns the report plus, when a store is
// configured, the id it was saved under. An input whose paths never cross
// yields a report with Found() == false and no error.
func (uc *AnalyzeWires) Execute(ctx context.Context, inputPath string) (domain.Report, string, error) {
	started := uc.now()

	set, err := uc.Build(ctx, inputPath)
	if err != nil {
		uc.logger.Warn("analyze.failed", "input", inputPath, "err", err)
		return domain.Report{}, "", err
	}

	report := domain.NewReport(reportName(inputPath), inputPath, set, started)
	uc.logger.Info("analyze.done",
		"input", inputPath,
		"paths", set.Len(),
		"intersections", len(report.Intersections),
		"elapsed", uc.now().Sub(started),
	)

	if uc.store == nil {
		return report, "", nil
	}

	id, err := uc.store.SaveReport(report)
	if err != nil {
		return report, "", err
	}
	uc.logger.Info("report.saved", "id", id)
	return report, id, nil
}

func reportName(inputPath string) string {
	base := filepath.Base(inputPath)
	if inputPath == "" || inputPath == "-" || base == "." {
		return "stdin"
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
