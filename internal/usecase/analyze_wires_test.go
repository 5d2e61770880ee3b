package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/marshallmcdonnell/advent-of-code-2019/internal/domain"
)

var exampleLines = []string{"R8,U5,L5,D3", "U7,R6,D4,L4"}

func TestAnalyzeWires_ReportsBothAnswers(t *testing.T) {
	fixed := time.Date(2019, 12, 3, 0, 0, 0, 0, time.UTC)
	store := &fakeStore{}

	uc := NewAnalyzeWires(&fakeSource{lines: exampleLines}, store,
		WithNow(func() time.Time { return fixed }),
		WithExpectedPaths(2),
	)

	report, id, err := uc.Execute(context.Background(), "inputs/example.txt")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != "report-123" {
		t.Fatalf("expected stored id, got %q", id)
	}
	if !store.saved || store.last.Name != "example" {
		t.Fatalf("expected report saved under name example, got %+v", store.last)
	}
	if !report.CreatedAt.Equal(fixed) {
		t.Fatalf("expected created_at from injected clock")
	}
	if v, ok := report.Answer(domain.PartDistance); !ok || v != 6 {
		t.Fatalf("expected part 1 = 6, got %d (ok=%v)", v, ok)
	}
	if v, ok := report.Answer(domain.PartSteps); !ok || v != 30 {
		t.Fatalf("expected part 2 = 30, got %d (ok=%v)", v, ok)
	}
}

func TestAnalyzeWires_NoIntersectionIsNotAnError(t *testing.T) {
	uc := NewAnalyzeWires(&fakeSource{lines: []string{"R5", "L5"}}, nil)

	report, id, err := uc.Execute(context.Background(), "-")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Found() {
		t.Fatalf("expected no intersections, got %v", report.Intersections)
	}
	if id != "" {
		t.Fatalf("expected no id without a store, got %q", id)
	}
	if report.Name != "stdin" {
		t.Fatalf("expected stdin report name, got %q", report.Name)
	}
}

func TestAnalyzeWires_MalformedLineCarriesLineNumber(t *testing.T) {
	uc := NewAnalyzeWires(&fakeSource{lines: []string{"R8,U5", "U7,X6"}}, nil)

	_, _, err := uc.Execute(context.Background(), "bad.txt")
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidInstruction) {
		t.Fatalf("expected KindInvalidInstruction, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidInstructionFormat) {
		t.Fatalf("expected ErrInvalidInstructionFormat in chain, got %v", err)
	}
	if seg, ok := domain.OffendingInput(err); !ok || seg != "X6" {
		t.Fatalf("expected offending segment X6, got %q (ok=%v)", seg, ok)
	}
	if got := err.Error(); got[:7] != "line 2:" {
		t.Fatalf("expected line prefix, got %q", got)
	}
}

func TestAnalyzeWires_WrongPathCount(t *testing.T) {
	uc := NewAnalyzeWires(&fakeSource{lines: []string{"R1", "U1", "L1"}}, nil, WithExpectedPaths(2))

	_, _, err := uc.Execute(context.Background(), "three.txt")
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected KindInvalidInput, got %v", err)
	}
	if !errors.Is(err, domain.ErrWrongPathCount) {
		t.Fatalf("expected ErrWrongPathCount, got %v", err)
	}
}

func TestAnalyzeWires_AnyCountByDefault(t *testing.T) {
	lines := append([]string{}, exampleLines...)
	lines = append(lines, "U3,R3")
	uc := NewAnalyzeWires(&fakeSource{lines: lines}, nil)

	report, _, err := uc.Execute(context.Background(), "three.txt")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.Paths) != 3 || len(report.Intersections) != 1 {
		t.Fatalf("expected 3 paths crossing once, got %d paths / %v", len(report.Paths), report.Intersections)
	}
}

func TestAnalyzeWires_ErrorLoadingInput(t *testing.T) {
	loadErr := errors.New("input not found")
	uc := NewAnalyzeWires(errSource{err: loadErr}, nil)

	_, _, err := uc.Execute(context.Background(), "missing.txt")
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected wrapped loadErr, got %v", err)
	}
}

func TestAnalyzeWires_StoreFailureKeepsReport(t *testing.T) {
	saveErr := errors.New("disk full")
	uc := NewAnalyzeWires(&fakeSource{lines: exampleLines}, &fakeStore{err: saveErr})

	report, id, err := uc.Execute(context.Background(), "example.txt")
	if !errors.Is(err, saveErr) {
		t.Fatalf("expected saveErr, got %v", err)
	}
	if id != "" {
		t.Fatalf("expected no id, got %q", id)
	}
	if !report.Found() {
		t.Fatalf("expected computed report to be returned alongside the error")
	}
}

func TestAnalyzeWires_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := &fakeStore{}
	uc := NewAnalyzeWires(&fakeSource{lines: exampleLines}, store)
	_, _, err := uc.Execute(ctx, "example.txt")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if store.saved {
		t.Fatalf("expected nothing saved after cancellation")
	}
}

func TestAnalyzeWires_BuildExposesPathSet(t *testing.T) {
	uc := NewAnalyzeWires(&fakeSource{lines: exampleLines}, nil)

	set, err := uc.Build(context.Background(), "example.txt")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	crossings := set.Crossings()
	if len(crossings) != 2 {
		t.Fatalf("expected 2 crossings, got %d", len(crossings))
	}
	if crossings[0].Point != (domain.Point{X: 3, Y: 3}) || crossings[0].Steps != 40 {
		t.Fatalf("unexpected first crossing %+v", crossings[0])
	}
}

func TestReportName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"inputs/day3.txt", "day3"},
		{"day3", "day3"},
		{"-", "stdin"},
		{"", "stdin"},
	}
	for _, c := range cases {
		if got := reportName(c.input); got != c.want {
			t.Errorf("reportName(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
