package engine

import (
	"sort"

	"github.com/jatayl/muskox/internal/board"
)

// searchToDepth scores every root action with a fixed-depth alpha-beta and
// ranks the list in the side to move's preferred direction: descending for
// Black, ascending for White.
func (e *Engine) searchToDepth(b board.Board, depth int) []ActionScore {
	rootHash := b.Hash()

	children := b.Actions()
	out := make([]ActionScore, 0, len(children))
	for _, as := range children {
		score := e.alphabeta(as.Board, depth, NegInfinity, Infinity, rootHash^as.ZobristDelta)
		out = append(out, ActionScore{Action: as.Action, Score: score})
	}

	if b.Turn() == board.Black {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	}
	return out
}

// alphabeta is fail-soft minimax with alpha-beta pruning. Black maximizes,
// White minimizes. Each node probes the transposition table before expanding
// and saves its result after; hash is maintained incrementally from the
// generator's XOR deltas.
func (e *Engine) alphabeta(b board.Board, depth int, alpha, beta Score, hash uint64) Score {
	if score, ok := e.tt.Probe(hash, b, depth); ok {
		return score
	}

	if depth <= 0 || b.GameState().Over() {
		return e.eval(b)
	}

	children := e.ordered(b)

	var best Score
	if b.Turn() == board.Black {
		best = NegInfinity
		for _, as := range children {
			score := e.alphabeta(as.Board, depth-1, alpha, beta, hash^as.ZobristDelta)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
	} else {
		best = Infinity
		for _, as := range children {
			score := e.alphabeta(as.Board, depth-1, alpha, beta, hash^as.ZobristDelta)
			if score < best {
				best = score
			}
			if best < beta {
				beta = best
			}
			if beta <= alpha {
				break
			}
		}
	}

	e.tt.Save(hash, b, depth, best)
	return best
}

// ordered generates b's children sorted by static evaluation, most promising
// for the side to move first. Trying strong moves early tightens the window
// and prunes more of the remaining siblings.
func (e *Engine) ordered(b board.Board) []board.ActionState {
	children := b.Actions()
	if len(children) < 2 {
		return children
	}

	keys := make([]Score, len(children))
	idx := make([]int, len(children))
	for i, as := range children {
		keys[i] = e.eval(as.Board)
		idx[i] = i
	}

	if b.Turn() == board.Black {
		sort.SliceStable(idx, func(i, j int) bool { return keys[idx[i]] > keys[idx[j]] })
	} else {
		sort.SliceStable(idx, func(i, j int) bool { return keys[idx[i]] < keys[idx[j]] })
	}

	sorted := make([]board.ActionState, len(children))
	for i, j := range idx {
		sorted[i] = children[j]
	}
	return sorted
}
