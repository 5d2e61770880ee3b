package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

var instructionRe = regexp.MustCompile(`^[UDLR][0-9]+$`)

// Instruction is a single "<direction><count>" move, e.g. "U22".
type Instruction struct {
	Dir   Direction
	Count int
}

func (in Instruction) String() string {
	return fmt.Sprintf("%s%d", in.Dir, in.Count)
}

// ParseInstruction validates a whole segment before decoding it. The segment
// must be exactly one token; "U2,D2" is rejected here even though Trace
// accepts it as two segments.
func ParseInstruction(segment string) (Instruction, error) {
	if !instructionRe.MatchString(segment) {
		return Instruction{}, &OpError{
			Op:    "domain.parse_instruction",
			Kind:  KindInvalidInstruction,
			Input: segment,
			Err:   ErrInvalidInstructionFormat,
		}
	}

	count, err := strconv.Atoi(segment[1:])
	if err != nil {
		return Instruction{}, &OpError{
			Op:    "domain.parse_instruction",
			Kind:  KindInvalidInstruction,
			Input: segment,
			Err:   fmt.Errorf("%w: %v", ErrInvalidInstructionFormat, err),
		}
	}

	dir, err := ParseDirection(segment[0])
	if err != nil {
		return Instruction{}, err
	}

	return Instruction{Dir: dir, Count: count}, nil
}
