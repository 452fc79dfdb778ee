package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Action encodes one move in 32 bits:
// bits 0-4:    source square (0-31)
// bits 5-9:    destination square (0-31)
// bits 10-13:  jump count (0 for a simple move, else 1-8)
// bits 15+2i:  direction of jump i (two bits each, Direction ordinals)
//
// An action is a pure value; it carries no reference to the board it was
// meant for.
type Action uint32

// NewAction builds an action from the traversed squares in external 1..32
// numbering: source, every intermediate landing square and the destination.
// A simple move has exactly two squares; a capture chain lists each landing
// square in order.
func NewAction(positions ...int) (Action, error) {
	if len(positions) < 2 || len(positions) > 9 {
		return 0, &MoveQuantityError{Quantity: len(positions)}
	}

	squares := make([]Square, len(positions))
	for i, p := range positions {
		if p < 1 || p > 32 {
			return 0, &PositionValueError{Position: strconv.Itoa(p)}
		}
		squares[i] = Square(p - 1)
	}

	source := squares[0]
	destination := squares[len(squares)-1]

	data := Action(source) | Action(destination)<<5

	diff := int(destination) - int(source)
	if diff < 0 {
		diff = -diff
	}

	if len(squares) == 2 && (diff == 3 || diff == 4 || diff == 5) {
		// A simple move. The destination must be a diagonal neighbor; an
		// offset of 3, 4 or 5 alone can still cross a column edge.
		if _, ok := moveDirection(source, destination); !ok {
			return 0, &PositionValueError{Position: strconv.Itoa(positions[1])}
		}
		return data, nil
	}

	data |= Action(len(squares)-1) << 10
	for i := 0; i+1 < len(squares); i++ {
		d, ok := Between(squares[i], squares[i+1])
		if !ok {
			return 0, &PositionValueError{
				Position: fmt.Sprintf("%d-%d", positions[i], positions[i+1]),
			}
		}
		data |= Action(d) << (15 + 2*i)
	}

	return data, nil
}

// ParseAction parses a PDN movetext string such as "10-14" or "10-19-12-3".
func ParseAction(movetext string) (Action, error) {
	parts := strings.Split(movetext, "-")
	positions := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, &PositionValueError{Position: p}
		}
		positions[i] = n
	}
	return NewAction(positions...)
}

// Source returns the origin square.
func (a Action) Source() Square {
	return Square(a & 31)
}

// Destination returns the final square.
func (a Action) Destination() Square {
	return Square((a >> 5) & 31)
}

// JumpLen returns the number of captures; zero for a simple move.
func (a Action) JumpLen() int {
	return int((a >> 10) & 15)
}

// IsJump returns true if the action captures at least one piece.
func (a Action) IsJump() bool {
	return a.JumpLen() != 0
}

// JumpDirection returns the direction of the i-th jump of a capture chain.
func (a Action) JumpDirection(i int) (Direction, bool) {
	if i < 0 || i >= a.JumpLen() {
		return 0, false
	}
	return Direction((a >> (15 + 2*i)) & 3), true
}

// MoveDirection returns the direction of a simple move.
func (a Action) MoveDirection() (Direction, bool) {
	if a.IsJump() {
		return 0, false
	}
	return moveDirection(a.Source(), a.Destination())
}

// Movetext renders the canonical PDN form of the action, e.g. "22-17" or
// "8-15-22-31". Parsing the result yields an identical action.
func (a Action) Movetext() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(a.Source()) + 1))
	if !a.IsJump() {
		sb.WriteByte('-')
		sb.WriteString(strconv.Itoa(int(a.Destination()) + 1))
		return sb.String()
	}
	cursor := a.Source()
	for i := 0; i < a.JumpLen(); i++ {
		d, _ := a.JumpDirection(i)
		cursor = d.Jump(cursor)
		sb.WriteByte('-')
		sb.WriteString(strconv.Itoa(int(cursor) + 1))
	}
	return sb.String()
}

func (a Action) String() string {
	return a.Movetext()
}
