package board

// Square indexes one of the 32 playable dark squares. Internally squares are
// numbered 0..31 row by row from the top of the board; external PDN notation
// numbers the same squares 1..32.
type Square uint8

// NoSquare represents an off-board square.
const NoSquare Square = 32

// Valid returns true if the square is on the board.
func (s Square) Valid() bool {
	return s < 32
}

// Row returns the board row (0-7) containing the square.
func (s Square) Row() int {
	return int(s) / 4
}

// Col returns the board column (0-7) of the square. Even rows hold their dark
// squares on odd columns, odd rows on even columns.
func (s Square) Col() int {
	if s.Row()%2 == 0 {
		return 2*(int(s)%4) + 1
	}
	return 2 * (int(s) % 4)
}

// Direction is one of the four diagonals a piece can travel along. The
// ordinal values are part of the Action encoding.
type Direction uint8

const (
	UpLeft Direction = iota
	UpRight
	DownLeft
	DownRight
)

func (d Direction) String() string {
	switch d {
	case UpLeft:
		return "up-left"
	case UpRight:
		return "up-right"
	case DownLeft:
		return "down-left"
	case DownRight:
		return "down-right"
	default:
		return "?"
	}
}

// Step offsets on the packed numbering depend on row parity: the four squares
// of a row share one diagonal offset and split the other with their neighbor
// rows. Jumps cross two rows, so their offsets are parity independent.
var (
	evenRowStep = [4]int{-4, -3, 4, 5} // UpLeft, UpRight, DownLeft, DownRight
	oddRowStep  = [4]int{-5, -4, 3, 4}
	jumpOffset  = [4]int{-9, -7, 7, 9}
)

// Step returns the immediate diagonal neighbor of s in direction d, or
// NoSquare if that square leaves the board or wraps a column edge.
func (d Direction) Step(s Square) Square {
	if !s.Valid() {
		return NoSquare
	}
	var delta int
	if s.Row()%2 == 0 {
		delta = evenRowStep[d]
	} else {
		delta = oddRowStep[d]
	}
	t := int(s) + delta
	if t < 0 || t > 31 {
		return NoSquare
	}
	to := Square(t)
	if diff := to.Col() - s.Col(); diff != 1 && diff != -1 {
		return NoSquare
	}
	return to
}

// Jump returns the square two diagonals away from s in direction d, or
// NoSquare.
func (d Direction) Jump(s Square) Square {
	if !s.Valid() {
		return NoSquare
	}
	t := int(s) + jumpOffset[d]
	if t < 0 || t > 31 {
		return NoSquare
	}
	to := Square(t)
	if diff := to.Col() - s.Col(); diff != 2 && diff != -2 {
		return NoSquare
	}
	return to
}

// Between infers the jump direction connecting from and to, if any.
func Between(from, to Square) (Direction, bool) {
	for d := UpLeft; d <= DownRight; d++ {
		if d.Jump(from) == to {
			return d, true
		}
	}
	return 0, false
}

// moveDirection infers the simple-move direction connecting from and to.
func moveDirection(from, to Square) (Direction, bool) {
	for d := UpLeft; d <= DownRight; d++ {
		if d.Step(from) == to {
			return d, true
		}
	}
	return 0, false
}

// backwardFor reports whether d runs backward for c. Black men advance down
// the board (toward row 7), white men advance up it.
func (d Direction) backwardFor(c Color) bool {
	if c == Black {
		return d == UpLeft || d == UpRight
	}
	return d == DownLeft || d == DownRight
}
