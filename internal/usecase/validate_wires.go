package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/marshallmcdonnell/advent-of-code-2019/internal/domain"
	"github.com/marshallmcdonnell/advent-of-code-2019/internal/ports"
)

type ValidateWires struct {
	source ports.InstructionSource
}

func NewValidateWires(src ports.InstructionSource) *ValidateWires {
	return &ValidateWires{source: src}
}

// LineCheck is the outcome of tracing one input line.
type LineCheck struct {
	Line  int
	Steps int
	Err   error
}

// Execute traces every line without stopping at the first failure. The
// returned error joins every per-line failure so all of them can be reported.
func (uc *ValidateWires) Execute(ctx context.Context, inputPath string) ([]LineCheck, error) {
	lines, err := uc.source.LoadInstructions(inputPath)
	if err != nil {
		return nil, err
	}

	checks := make([]LineCheck, 0, len(lines))
	var errs []error
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return checks, err
		}

		c := LineCheck{Line: i + 1}
		p, err := domain.Trace(line)
		if err != nil {
			c.Err = err
			errs = append(errs, fmt.Errorf("line %d: %w", c.Line, err))
		} else {
			c.Steps = p.Len()
		}
		checks = append(checks, c)
	}

	return checks, errors.Join(errs...)
}
