package domain

import (
	"fmt"
	"time"
)

// Part selects which ranking answers the puzzle.
type Part int

const (
	// PartDistance ranks intersections by Manhattan distance from Origin.
	PartDistance Part = 1
	// PartSteps ranks intersections by combined step count.
	PartSteps Part = 2
)

// ParsePart accepts 1 or 2.
func ParsePart(n int) (Part, error) {
	switch Part(n) {
	case PartDistance, PartSteps:
		return Part(n), nil
	default:
		return 0, &OpError{
			Op:   "domain.parse_part",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("%w: part must be 1 or 2, got %d", ErrInvalidConfig, n),
		}
	}
}

// PathSummary is a compact description of one traced path.
type PathSummary struct {
	Instructions int   `json:"instructions"`
	Steps        int   `json:"steps"`
	Distinct     int   `json:"distinct_points"`
	End          Point `json:"end"`
}

// Ranked is a winning intersection and the metric value that selected it.
type Ranked struct {
	Point Point `json:"point"`
	Value int   `json:"value"`
}

// Report is the outcome of analysing one input of instruction lines.
// Closest and Cheapest are nil when the paths never intersect; that is a
// valid result, not a failure.
type Report struct {
	Name   string `json:"name"`
	Source string `json:"source"`

	CreatedAt time.Time `json:"created_at"`

	Paths         []PathSummary `json:"paths"`
	Intersections []Point       `json:"intersections"`

	Closest  *Ranked `json:"closest,omitempty"`
	Cheapest *Ranked `json:"cheapest,omitempty"`
}

// Found reports whether any intersection exists.
func (r Report) Found() bool {
	return len(r.Intersections) > 0
}

// Answer returns the value the given part asks for.
func (r Report) Answer(part Part) (int, bool) {
	switch part {
	case PartDistance:
		if r.Closest != nil {
			return r.Closest.Value, true
		}
	case PartSteps:
		if r.Cheapest != nil {
			return r.Cheapest.Value, true
		}
	}
	return 0, false
}

// NewReport summarises a PathSet.
func NewReport(name, source string, set PathSet, now time.Time) Report {
	r := Report{
		Name:          name,
		Source:        source,
		CreatedAt:     now,
		Paths:         make([]PathSummary, 0, set.Len()),
		Intersections: set.Intersections(),
	}

	for _, p := range set.Paths() {
		r.Paths = append(r.Paths, PathSummary{
			Instructions: len(p.instructions),
			Steps:        p.Len(),
			Distinct:     p.Distinct(),
			End:          p.Last(),
		})
	}

	if pt, d, ok := set.ClosestByDistance(); ok {
		r.Closest = &Ranked{Point: pt, Value: d}
	}
	if pt, steps, ok := set.CheapestByCombinedSteps(); ok {
		r.Cheapest = &Ranked{Point: pt, Value: steps}
	}

	return r
}
