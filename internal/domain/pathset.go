package domain

import (
	"slices"

	"github.com/google/btree"
)

const intersectionTreeDegree = 16

// PathSet owns a collection of traced paths and answers intersection queries
// over them. The intersection is computed once at construction; every query
// afterwards is read-only, so a PathSet is safe for concurrent use.
type PathSet struct {
	paths         []Path
	intersections []Point
}

// Crossing describes one intersection point with both of its costs.
type Crossing struct {
	Point    Point `json:"point"`
	Distance int   `json:"distance"`
	Steps    int   `json:"steps"`
}

// NewPathSet takes ownership of paths. Any number of paths is accepted;
// fewer than two never intersect.
func NewPathSet(paths ...Path) PathSet {
	owned := slices.Clone(paths)
	return PathSet{
		paths:         owned,
		intersections: intersect(owned),
	}
}

func (s PathSet) Len() int { return len(s.paths) }

// Paths returns the paths in insertion order.
func (s PathSet) Paths() []Path { return slices.Clone(s.paths) }

// Intersections returns every non-origin point shared by all paths, ordered
// lexicographically by (x, y).
func (s PathSet) Intersections() []Point {
	return slices.Clone(s.intersections)
}

// ClosestByDistance returns the intersection with the smallest Manhattan
// distance to Origin. Ties resolve to the lexicographically first point.
// ok is false when the paths do not intersect.
func (s PathSet) ClosestByDistance() (pt Point, dist int, ok bool) {
	for _, p := range s.intersections {
		d := p.DistanceTo(Origin)
		if !ok || d < dist {
			pt, dist, ok = p, d, true
		}
	}
	return pt, dist, ok
}

// ClosestByCombinedSteps returns the smallest sum, over all paths, of the
// steps each path needs to first reach a shared point.
func (s PathSet) ClosestByCombinedSteps() (int, bool) {
	_, steps, ok := s.CheapestByCombinedSteps()
	return steps, ok
}

// CheapestByCombinedSteps is ClosestByCombinedSteps plus the point that
// achieves it. Ties resolve to the lexicographically first point.
func (s PathSet) CheapestByCombinedSteps() (pt Point, steps int, ok bool) {
	for _, p := range s.intersections {
		c := s.combinedSteps(p)
		if !ok || c < steps {
			pt, steps, ok = p, c, true
		}
	}
	return pt, steps, ok
}

// Crossings lists every intersection with its distance and combined steps,
// in the same order as Intersections.
func (s PathSet) Crossings() []Crossing {
	out := make([]Crossing, 0, len(s.intersections))
	for _, p := range s.intersections {
		out = append(out, Crossing{
			Point:    p,
			Distance: p.DistanceTo(Origin),
			Steps:    s.combinedSteps(p),
		})
	}
	return out
}

// combinedSteps assumes p lies on every path.
func (s PathSet) combinedSteps(p Point) int {
	total := 0
	for _, path := range s.paths {
		n, _ := path.StepsTo(p)
		total += n
	}
	return total
}

func intersect(paths []Path) []Point {
	if len(paths) < 2 {
		return []Point{}
	}

	// Walk the path with the fewest distinct points and probe the others.
	seed := 0
	for i, p := range paths {
		if p.Distinct() < paths[seed].Distinct() {
			seed = i
		}
	}

	tree := btree.NewG[Point](intersectionTreeDegree, Point.Less)
	paths[seed].eachDistinct(func(pt Point) bool {
		if pt == Origin {
			return true
		}
		for i, other := range paths {
			if i == seed {
				continue
			}
			if !other.Contains(pt) {
				return true
			}
		}
		tree.ReplaceOrInsert(pt)
		return true
	})

	out := make([]Point, 0, tree.Len())
	tree.Ascend(func(pt Point) bool {
		out = append(out, pt)
		return true
	})
	return out
}
