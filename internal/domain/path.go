package domain

import "slices"

// Path is the ordered sequence of lattice points a single instruction string
// visits, starting at Origin. A Path is immutable once Trace returns it and
// may be shared between goroutines.
type Path struct {
	points       []Point
	first        map[Point]int
	instructions []Instruction
}

// Points returns a copy of the visited points; index 0 is Origin.
func (p Path) Points() []Point {
	if len(p.points) == 0 {
		return []Point{Origin}
	}
	return slices.Clone(p.points)
}

// Instructions returns a copy of the moves the path was traced from.
func (p Path) Instructions() []Instruction {
	return slices.Clone(p.instructions)
}

// Len is the number of steps walked, i.e. the point count minus one.
func (p Path) Len() int {
	if len(p.points) == 0 {
		return 0
	}
	return len(p.points) - 1
}

// At returns the point reached after i steps.
func (p Path) At(i int) Point {
	if len(p.points) == 0 && i == 0 {
		return Origin
	}
	return p.points[i]
}

// Last returns the path's tail.
func (p Path) Last() Point {
	if len(p.points) == 0 {
		return Origin
	}
	return p.points[len(p.points)-1]
}

// Contains reports whether the path visits pt at least once.
func (p Path) Contains(pt Point) bool {
	_, ok := p.StepsTo(pt)
	return ok
}

// StepsTo returns the number of steps needed to first reach pt. A path that
// crosses itself keeps the earliest index.
func (p Path) StepsTo(pt Point) (int, bool) {
	if p.first == nil {
		return 0, pt == Origin
	}
	i, ok := p.first[pt]
	return i, ok
}

// Distinct is the number of distinct points the path visits.
func (p Path) Distinct() int {
	if p.first == nil {
		return 1
	}
	return len(p.first)
}

func (p Path) eachDistinct(fn func(Point) bool) {
	if p.first == nil {
		fn(Origin)
		return
	}
	for pt := range p.first {
		if !fn(pt) {
			return
		}
	}
}
