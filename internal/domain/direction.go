package domain

import "fmt"

// Direction is one of the four unit moves on the lattice.
type Direction int

const (
	Right Direction = iota
	Left
	Up
	Down
)

var directionSymbols = [...]byte{
	Right: 'R',
	Left:  'L',
	Up:    'U',
	Down:  'D',
}

var unitVectors = [...]Point{
	Right: {X: 1, Y: 0},
	Left:  {X: -1, Y: 0},
	Up:    {X: 0, Y: 1},
	Down:  {X: 0, Y: -1},
}

// ParseDirection maps an instruction symbol (U, D, L, R) to a Direction.
func ParseDirection(symbol byte) (Direction, error) {
	for d, s := range directionSymbols {
		if s == symbol {
			return Direction(d), nil
		}
	}
	return 0, &OpError{
		Op:    "domain.parse_direction",
		Kind:  KindUnknownDirection,
		Input: string(symbol),
		Err:   fmt.Errorf("%w: %q (choices: R,L,U,D)", ErrUnknownDirection, symbol),
	}
}

func (d Direction) valid() bool {
	return d >= 0 && int(d) < len(unitVectors)
}

// Unit returns the one-step offset for d.
func (d Direction) Unit() (Point, error) {
	if !d.valid() {
		return Point{}, &OpError{
			Op:    "domain.direction_unit",
			Kind:  KindUnknownDirection,
			Input: fmt.Sprintf("Direction(%d)", int(d)),
			Err:   ErrUnknownDirection,
		}
	}
	return unitVectors[d], nil
}

func (d Direction) String() string {
	if !d.valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return string(directionSymbols[d])
}
