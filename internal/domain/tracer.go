package domain

import "strings"

// maxPrealloc caps the up-front point allocation; longer paths still grow.
const maxPrealloc = 1 << 20

// Trace expands a comma-separated instruction string such as "R8,U5,L5,D3"
// into a Path. An empty string yields the origin-only path. Every segment is
// validated before any point is emitted, so a failing call never produces a
// partially traced path.
func Trace(instructions string) (Path, error) {
	var moves []Instruction
	total := 0

	if instructions != "" {
		segments := strings.Split(instructions, ",")
		moves = make([]Instruction, 0, len(segments))
		for _, seg := range segments {
			in, err := ParseInstruction(seg)
			if err != nil {
				return Path{}, err
			}
			moves = append(moves, in)
			if in.Count > maxPrealloc-total {
				total = maxPrealloc
			} else {
				total += in.Count
			}
		}
	}

	points := make([]Point, 1, 1+total)
	first := make(map[Point]int, total+1)
	points[0] = Origin
	first[Origin] = 0

	cur := Origin
	for _, in := range moves {
		unit, err := in.Dir.Unit()
		if err != nil {
			return Path{}, err
		}
		for i := 0; i < in.Count; i++ {
			cur = cur.Add(unit)
			if _, seen := first[cur]; !seen {
				first[cur] = len(points)
			}
			points = append(points, cur)
		}
	}

	return Path{points: points, first: first, instructions: moves}, nil
}

// MustTrace is like Trace but panics on malformed input. Intended for
// fixtures and literals known to be valid.
func MustTrace(instructions string) Path {
	p, err := Trace(instructions)
	if err != nil {
		panic(err)
	}
	return p
}
