package board

import "strings"

// Color identifies one of the two sides.
type Color uint8

const (
	Black Color = iota
	White
)

// Other returns the opposing side.
func (c Color) Other() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// crownRow returns the row on which a man of color c promotes.
func (c Color) crownRow() int {
	if c == Black {
		return 7
	}
	return 0
}

// GameState describes whether a game is over and who won. Draws are
// representable but never produced: the only terminal condition is the side
// to move having no legal action.
type GameState uint8

const (
	InProgress GameState = iota
	BlackWon
	WhiteWon
	Drawn
)

// Over returns true once the game has completed.
func (g GameState) Over() bool {
	return g != InProgress
}

func (g GameState) String() string {
	switch g {
	case BlackWon:
		return "Winner: Black"
	case WhiteWon:
		return "Winner: White"
	case Drawn:
		return "Draw"
	default:
		return "In progress"
	}
}

// Board is an immutable snapshot of a checkers position: occupancy masks for
// both sides, the crowned pieces, and the side to move. Boards are values;
// every mutation returns a new board.
type Board struct {
	blacks Bitmask
	whites Bitmask
	kings  Bitmask
	turn   Color
}

// New returns a board in the starting position: twelve black men on squares
// 1-12 facing twelve white men on squares 21-32, black to move.
func New() Board {
	return Board{
		blacks: 0x00000FFF,
		whites: 0xFFF00000,
		kings:  0,
		turn:   Black,
	}
}

// Blacks returns the black occupancy mask.
func (b Board) Blacks() Bitmask { return b.blacks }

// Whites returns the white occupancy mask.
func (b Board) Whites() Bitmask { return b.whites }

// Kings returns the king mask, a subset of the two occupancy masks.
func (b Board) Kings() Bitmask { return b.kings }

// Turn returns the side to move.
func (b Board) Turn() Color { return b.turn }

// Piece reports what occupies a square.
func (b Board) Piece(s Square) (c Color, king, occupied bool) {
	switch {
	case b.blacks.IsSet(s):
		return Black, b.kings.IsSet(s), true
	case b.whites.IsSet(s):
		return White, b.kings.IsSet(s), true
	default:
		return 0, false, false
	}
}

func (b Board) sideMask(c Color) Bitmask {
	if c == Black {
		return b.blacks
	}
	return b.whites
}

func (b Board) isEmpty(s Square) bool {
	return !b.blacks.IsSet(s) && !b.whites.IsSet(s)
}

func (b Board) isKing(s Square) bool {
	return b.kings.IsSet(s)
}

func (b *Board) removePiece(s Square) {
	b.blacks = b.blacks.Clear(s)
	b.whites = b.whites.Clear(s)
	b.kings = b.kings.Clear(s)
}

func (b *Board) addPiece(s Square, c Color, king bool) {
	if c == Black {
		b.blacks = b.blacks.Set(s)
	} else {
		b.whites = b.whites.Set(s)
	}
	if king {
		b.kings = b.kings.Set(s)
	}
}

// Movers returns the subset of c's pieces that have at least one legal simple
// move. Pieces that can only capture are not included; see Jumpers.
//
// The construction shifts the empty-square mask backward along each of c's
// travel directions and intersects with c's pieces. Shifts by 4 are valid
// from every square; shifts by 3 and 5 only from the squares in the L/R edge
// masks.
func (b Board) Movers(c Color) Bitmask {
	notOccupied := ^(b.whites | b.blacks)

	if c == White {
		whiteKings := b.whites & b.kings

		movers := notOccupied << 4
		movers |= (notOccupied & MaskR3) << 3
		movers |= (notOccupied & MaskR5) << 5
		movers &= b.whites

		if whiteKings != 0 {
			movers |= (notOccupied >> 4) & whiteKings
			movers |= ((notOccupied & MaskL3) >> 3) & whiteKings
			movers |= ((notOccupied & MaskL5) >> 5) & whiteKings
		}
		return movers
	}

	blackKings := b.blacks & b.kings

	movers := notOccupied >> 4
	movers |= (notOccupied & MaskL3) >> 3
	movers |= (notOccupied & MaskL5) >> 5
	movers &= b.blacks

	if blackKings != 0 {
		movers |= (notOccupied << 4) & blackKings
		movers |= ((notOccupied & MaskR3) << 3) & blackKings
		movers |= ((notOccupied & MaskR5) << 5) & blackKings
	}
	return movers
}

// Jumpers returns the subset of c's pieces that can capture. The two-step
// construction first finds opponent pieces adjacent to an empty landing
// square, then shifts once more to the capturing piece.
func (b Board) Jumpers(c Color) Bitmask {
	notOccupied := ^(b.whites | b.blacks)

	if c == White {
		whiteKings := b.whites & b.kings

		var jumpers Bitmask
		temp := (notOccupied << 4) & b.blacks
		jumpers |= ((temp & MaskR3) << 3) | ((temp & MaskR5) << 5)
		temp = (((notOccupied & MaskR3) << 3) | ((notOccupied & MaskR5) << 5)) & b.blacks
		jumpers |= temp << 4
		jumpers &= b.whites

		if whiteKings != 0 {
			temp = (notOccupied >> 4) & b.blacks
			jumpers |= (((temp & MaskL3) >> 3) | ((temp & MaskL5) >> 5)) & whiteKings
			temp = (((notOccupied & MaskL3) >> 3) | ((notOccupied & MaskL5) >> 5)) & b.blacks
			jumpers |= (temp >> 4) & whiteKings
		}
		return jumpers
	}

	blackKings := b.blacks & b.kings

	var jumpers Bitmask
	temp := (notOccupied >> 4) & b.whites
	jumpers |= ((temp & MaskL3) >> 3) | ((temp & MaskL5) >> 5)
	temp = (((notOccupied & MaskL3) >> 3) | ((notOccupied & MaskL5) >> 5)) & b.whites
	jumpers |= temp >> 4
	jumpers &= b.blacks

	if blackKings != 0 {
		temp = (notOccupied << 4) & b.whites
		jumpers |= (((temp & MaskR3) << 3) | ((temp & MaskR5) << 5)) & blackKings
		temp = (((notOccupied & MaskR3) << 3) | ((notOccupied & MaskR5) << 5)) & b.whites
		jumpers |= (temp << 4) & blackKings
	}
	return jumpers
}

// GameState returns the current result of the game. A side with neither a
// mover nor a jumper on its turn has lost.
func (b Board) GameState() GameState {
	if b.Movers(b.turn) == 0 && b.Jumpers(b.turn) == 0 {
		if b.turn == Black {
			return WhiteWon
		}
		return BlackWon
	}
	return InProgress
}

// Validate returns nil exactly when Apply would succeed.
func (b Board) Validate(a Action) error {
	_, err := b.Apply(a)
	return err
}

// Apply plays an action for the side to move and returns the resulting
// board, or the zero board and the rule that was violated.
func (b Board) Apply(a Action) (Board, error) {
	source := a.Source()
	destination := a.Destination()

	startsKing := b.isKing(source)
	endsKing := startsKing || destination.Row() == b.turn.crownRow()
	opponent := b.turn.Other()

	if !b.sideMask(b.turn).IsSet(source) {
		return Board{}, &SourceColorError{Position: source, Color: b.turn}
	}
	if !b.isEmpty(destination) {
		return Board{}, &DestinationEmptyError{Destination: destination}
	}

	next := b
	next.removePiece(source)
	next.addPiece(destination, b.turn, endsKing)

	if !a.IsJump() {
		if b.Jumpers(b.turn) != 0 {
			return Board{}, ErrHaveToJump
		}
		dir, ok := a.MoveDirection()
		if !ok || (dir.backwardFor(b.turn) && !startsKing) {
			return Board{}, ErrSinglePieceBackwards
		}
	} else {
		cursor := source
		for i := 0; i < a.JumpLen(); i++ {
			dir, _ := a.JumpDirection(i)

			if dir.backwardFor(b.turn) && !startsKing {
				return Board{}, ErrSinglePieceBackwards
			}

			skipped := dir.Step(cursor)
			if !next.sideMask(opponent).IsSet(skipped) {
				return Board{}, &SkippedPositionError{Skipped: skipped, Color: opponent}
			}
			next.removePiece(skipped)

			cursor = dir.Jump(cursor)
		}

		// Captures are compulsory: the chain may only stop where no further
		// jump exists, unless this step just crowned the piece.
		if next.Jumpers(b.turn).IsSet(destination) && !(!startsKing && endsKing) {
			return Board{}, ErrNeedMoreJumping
		}
	}

	next.turn = opponent
	return next, nil
}

// ActionState pairs a legal action with the board it produces and the XOR
// delta that advances the parent's Zobrist key to the child's.
type ActionState struct {
	Action       Action
	Board        Board
	ZobristDelta uint64
}

// Actions generates every legal action from this position. When a capture is
// available only capture chains are produced; otherwise every simple move is.
// The result is empty exactly when the game is over.
func (b Board) Actions() []ActionState {
	jumpers := b.Jumpers(b.turn)
	if jumpers == 0 {
		return b.simpleMoves()
	}
	return b.captureChains(jumpers)
}

func (b *Board) directionsFor(s Square) []Direction {
	if b.isKing(s) {
		return []Direction{UpLeft, UpRight, DownLeft, DownRight}
	}
	if b.turn == Black {
		return []Direction{DownLeft, DownRight}
	}
	return []Direction{UpLeft, UpRight}
}

func (b Board) simpleMoves() []ActionState {
	var out []ActionState

	movers := b.Movers(b.turn)
	for movers != 0 {
		from := movers.PopLSB()
		startsKing := b.isKing(from)

		for _, dir := range b.directionsFor(from) {
			to := dir.Step(from)
			if to == NoSquare || !b.isEmpty(to) {
				continue
			}

			endsKing := startsKing || to.Row() == b.turn.crownRow()

			next := b
			next.removePiece(from)
			next.addPiece(to, b.turn, endsKing)
			next.turn = b.turn.Other()

			delta := zobristPiece(from, b.turn, startsKing)
			delta ^= zobristPiece(to, b.turn, endsKing)
			delta ^= zobristTurn()

			action, _ := NewAction(int(from)+1, int(to)+1)
			out = append(out, ActionState{Action: action, Board: next, ZobristDelta: delta})
		}
	}
	return out
}

// chainFrontier is one partially explored capture chain: the board with the
// captures so far applied (turn not yet flipped), the squares traversed, and
// the accumulated Zobrist delta.
type chainFrontier struct {
	board Board
	path  []Square
	delta uint64
}

func (b Board) captureChains(jumpers Bitmask) []ActionState {
	var out []ActionState

	var frontier []chainFrontier
	for jumpers != 0 {
		from := jumpers.PopLSB()
		frontier = append(frontier, chainFrontier{board: b, path: []Square{from}})
	}

	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]

		jumper := cur.path[len(cur.path)-1]
		startsKing := cur.board.isKing(jumper)

		for _, dir := range cur.board.directionsFor(jumper) {
			skipped := dir.Step(jumper)
			landing := dir.Jump(jumper)
			if landing == NoSquare || !cur.board.isEmpty(landing) {
				continue
			}
			if !cur.board.sideMask(b.turn.Other()).IsSet(skipped) {
				continue
			}

			endsKing := startsKing || landing.Row() == b.turn.crownRow()
			skippedKing := cur.board.isKing(skipped)

			next := cur.board
			next.removePiece(jumper)
			next.removePiece(skipped)
			next.addPiece(landing, b.turn, endsKing)

			delta := cur.delta
			delta ^= zobristPiece(jumper, b.turn, startsKing)
			delta ^= zobristPiece(landing, b.turn, endsKing)
			delta ^= zobristPiece(skipped, b.turn.Other(), skippedKing)

			path := make([]Square, len(cur.path), len(cur.path)+1)
			copy(path, cur.path)
			path = append(path, landing)

			// A chain ends where no further jump exists or on promotion.
			if !next.Jumpers(b.turn).IsSet(landing) || (!startsKing && endsKing) {
				next.turn = b.turn.Other()
				delta ^= zobristTurn()

				positions := make([]int, len(path))
				for i, s := range path {
					positions[i] = int(s) + 1
				}
				action, _ := NewAction(positions...)
				out = append(out, ActionState{Action: action, Board: next, ZobristDelta: delta})
				continue
			}
			frontier = append(frontier, chainFrontier{board: next, path: path, delta: delta})
		}
	}
	return out
}

// Hash computes the position's Zobrist key from scratch. Actions carries the
// incremental XOR delta for each move so searches never need to call this on
// child positions.
func (b Board) Hash() uint64 {
	var hash uint64

	for m := b.blacks; m != 0; {
		s := m.PopLSB()
		hash ^= zobristPiece(s, Black, b.isKing(s))
	}
	for m := b.whites; m != 0; {
		s := m.PopLSB()
		hash ^= zobristPiece(s, White, b.isKing(s))
	}
	if b.turn == White {
		hash ^= zobristTurn()
	}
	return hash
}

// String renders the position as an ASCII grid, black men as 'b', white men
// as 'w', kings uppercased.
func (b Board) String() string {
	var sb strings.Builder

	sq := Square(0)
	for row := 0; row < 8; row++ {
		sb.WriteString("+---+---+---+---+---+---+---+---+\n")
		for col := 0; col < 8; col++ {
			if (row+col)%2 == 0 {
				sb.WriteString("|   ")
				continue
			}
			c := byte(' ')
			switch {
			case b.blacks.IsSet(sq):
				c = 'b'
			case b.whites.IsSet(sq):
				c = 'w'
			}
			if b.kings.IsSet(sq) && c != ' ' {
				c -= 'a' - 'A'
			}
			sb.WriteString("| ")
			sb.WriteByte(c)
			sb.WriteByte(' ')
			sq++
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+---+---+---+---+---+---+---+---+")

	return sb.String()
}
