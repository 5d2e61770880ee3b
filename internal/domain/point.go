package domain

import "fmt"

// Point is an integer lattice position. It is comparable and safe to use as
// a map key.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Origin is where every path starts.
var Origin = Point{}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Less orders points lexicographically by X, then Y.
func (p Point) Less(q Point) bool {
	return p.X < q.X || (p.X == q.X && p.Y < q.Y)
}

// DistanceTo returns the Manhattan distance between p and q.
func (p Point) DistanceTo(q Point) int {
	return Manhattan([]int{p.X, p.Y}, []int{q.X, q.Y})
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Manhattan returns the L1 distance between two coordinate vectors of any
// dimension. Coordinates past the shorter vector's length are ignored.
func Manhattan(a, b []int) int {
	n := min(len(a), len(b))
	dist := 0
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		dist += d
	}
	return dist
}
