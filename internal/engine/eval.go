package engine

import "github.com/jatayl/muskox/internal/board"

// Evaluator scores a position. Black prefers positive scores, White negative.
// Evaluators must be deterministic: the transposition table caches their
// output across searches.
type Evaluator func(board.Board) Score

// Material is the default evaluator: piece difference with kings counted
// twice.
func Material(b board.Board) Score {
	blackKings := b.Blacks() & b.Kings()
	whiteKings := b.Whites() & b.Kings()

	return Score(b.Blacks().PopCount() - b.Whites().PopCount() +
		blackKings.PopCount() - whiteKings.PopCount())
}
