package usecase

import (
	"errors"

	"github.com/marshallmcdonnell/advent-of-code-2019/internal/domain"
	"github.com/marshallmcdonnell/advent-of-code-2019/internal/ports"
)

// --- fakes shared by the use case tests ---

type fakeSource struct {
	lines []string
	calls int
}

func (f *fakeSource) LoadInstructions(_ string) ([]string, error) {
	f.calls++
	return f.lines, nil
}

type errSource struct{ err error }

func (e errSource) LoadInstructions(_ string) ([]string, error) {
	return nil, e.err
}

type fakeStore struct {
	saved bool
	last  domain.Report
	err   error
}

func (s *fakeStore) SaveReport(r domain.Report) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = true
	s.last = r
	return "report-123", nil
}

func (s *fakeStore) LoadReport(id string) (domain.Report, error) {
	if !s.saved || id != "report-123" {
		return domain.Report{}, errors.New("missing")
	}
	return s.last, nil
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return nil
}

var (
	_ ports.InstructionSource    = (*fakeSource)(nil)
	_ ports.InstructionSource    = errSource{}
	_ ports.ReportStore          = (*fakeStore)(nil)
	_ ports.WorkspaceInitializer = (*fakeInitializer)(nil)
)
