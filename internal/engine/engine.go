package engine

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jatayl/muskox/internal/board"
)

const (
	// DefaultWorkers sizes the engine's worker pool.
	DefaultWorkers = 7

	// DefaultTableMB sizes the transposition table.
	DefaultTableMB = 256
)

// Options configures a new engine. Zero fields fall back to defaults.
type Options struct {
	TableMB int
	Workers int
	Depth   int // depth used by unconstrained searches
}

// ActionScore pairs a root action with its search score.
type ActionScore struct {
	Action board.Action
	Score  Score
}

// Engine computes ranked move lists with iterative-deepening alpha-beta over
// a shared transposition table. One engine may serve many searches; boards
// are values, so callers never share mutable state with it.
type Engine struct {
	eval         Evaluator
	tt           *Table
	pool         *pool
	defaultDepth int
	log          zerolog.Logger
}

// New creates an engine around the given evaluator. A nil evaluator selects
// Material.
func New(eval Evaluator, opts Options) *Engine {
	if eval == nil {
		eval = Material
	}
	if opts.TableMB <= 0 {
		opts.TableMB = DefaultTableMB
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.Depth <= 0 || opts.Depth > MaxDepth {
		opts.Depth = DefaultDepth
	}

	e := &Engine{
		eval:         eval,
		tt:           NewTable(opts.TableMB),
		pool:         newPool(opts.Workers),
		defaultDepth: opts.Depth,
		log:          log.With().Str("component", "engine").Logger(),
	}
	e.log.Debug().Int("workers", opts.Workers).Int("tt_mb", opts.TableMB).
		Int("default_depth", opts.Depth).Msg("engine ready")
	return e
}

// Search scores every legal action from b under the given constraint and
// returns them ranked best-first for the side to move. The result is empty
// exactly when the game is over; search itself never fails.
func (e *Engine) Search(b board.Board, c Constraint) []ActionScore {
	e.tt.NewSearch()

	start := time.Now()
	var out []ActionScore
	switch c.kind {
	case constraintDepth:
		out = e.searchToDepth(b, c.depth)
	case constraintTime:
		out = e.searchTimed(b, c.duration)
	default:
		out = e.searchToDepth(b, e.defaultDepth)
	}

	e.log.Debug().Stringer("constraint", c).Int("actions", len(out)).
		Dur("elapsed", time.Since(start)).Msg("search finished")
	return out
}

// searchTimed runs the deepening loop on the worker pool and collects the
// deepest fully-completed iteration once the budget elapses. The worker
// checks for cancellation only between depths, so it may overrun by the
// length of the iteration in flight; that iteration's result is discarded.
func (e *Engine) searchTimed(b board.Board, budget time.Duration) []ActionScore {
	results := make(chan []ActionScore, MaxDepth)
	quit := make(chan struct{})

	e.pool.submit(func() {
		for depth := 1; ; depth++ {
			ranked := e.searchToDepth(b, depth)

			select {
			case <-quit:
				return
			default:
			}

			select {
			case results <- ranked:
			default:
				// Channel full: nobody will read this many iterations.
				return
			}
		}
	})

	time.Sleep(budget)
	close(quit)

	var last []ActionScore
	for {
		select {
		case ranked := <-results:
			last = ranked
		default:
			if last == nil {
				// The budget expired before depth 1 finished; depth 1 is
				// cheap on any position, so compute it directly rather than
				// return nothing.
				return e.searchToDepth(b, 1)
			}
			return last
		}
	}
}

// Reset discards all cached search state.
func (e *Engine) Reset() {
	e.tt.Resize(DefaultTableMB)
}

// Close releases the worker pool. The engine must not be used afterwards.
func (e *Engine) Close() {
	e.pool.close()
}
