package board

import (
	"errors"
	"fmt"
)

// Rule violations raised by Apply and Validate. These are surfaced verbatim
// to the interactive caller, so the messages are written for humans.
var (
	// ErrHaveToJump is returned for a simple move while a capture is available.
	ErrHaveToJump = errors.New("one of the jumpers needs to move")

	// ErrSinglePieceBackwards is returned when a man moves away from its
	// crowning row.
	ErrSinglePieceBackwards = errors.New("only kings can move backwards")

	// ErrNeedMoreJumping is returned when a capture chain stops while the
	// piece can still jump and did not just promote.
	ErrNeedMoreJumping = errors.New("more jumping required")
)

// SourceColorError reports a move whose source square does not hold a piece
// of the side to move.
type SourceColorError struct {
	Position Square
	Color    Color
}

func (e *SourceColorError) Error() string {
	return fmt.Sprintf("source position %d must be in possession of mover %v", e.Position, e.Color)
}

// DestinationEmptyError reports a move onto an occupied square.
type DestinationEmptyError struct {
	Destination Square
}

func (e *DestinationEmptyError) Error() string {
	return fmt.Sprintf("destination position %d must be empty", e.Destination)
}

// SkippedPositionError reports a jump over a square that does not hold an
// opponent piece.
type SkippedPositionError struct {
	Skipped Square
	Color   Color
}

func (e *SkippedPositionError) Error() string {
	return fmt.Sprintf("skipped position %d must hold an opponent of color %v", e.Skipped, e.Color)
}

// FEN parsing failures.
var (
	// ErrColonQuantity is returned when the FEN string does not have exactly
	// three colon-separated fields.
	ErrColonQuantity = errors.New("there should be two colons ':' in the FEN string")
)

// ColorParseError reports an invalid side letter in a FEN string.
type ColorParseError struct {
	Letter string
}

func (e *ColorParseError) Error() string {
	return fmt.Sprintf("%q is not a valid board color (black 'B' or white 'W')", e.Letter)
}

// PositionParseError reports an invalid piece position in a FEN string.
type PositionParseError struct {
	Position string
}

func (e *PositionParseError) Error() string {
	return fmt.Sprintf("%q is not a valid position 1-32", e.Position)
}

// Movetext parsing failures.

// MoveQuantityError reports an action with too few or too many squares.
type MoveQuantityError struct {
	Quantity int
}

func (e *MoveQuantityError) Error() string {
	return fmt.Sprintf("number of positions must be between 2 and 9, not %d", e.Quantity)
}

// PositionValueError reports an out-of-range square or a square pair that no
// step or jump connects.
type PositionValueError struct {
	Position string
}

func (e *PositionValueError) Error() string {
	return fmt.Sprintf("position %s is invalid", e.Position)
}
