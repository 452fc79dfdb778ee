package engine

import (
	"testing"
	"time"

	"github.com/jatayl/muskox/internal/board"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(nil, Options{TableMB: 1, Workers: 2})
	t.Cleanup(e.Close)
	return e
}

func depthConstraint(t *testing.T, d int) Constraint {
	t.Helper()
	c, err := AtDepth(d)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestConstraintLimits(t *testing.T) {
	if _, err := AtDepth(MaxDepth); err != nil {
		t.Errorf("AtDepth(%d): %v", MaxDepth, err)
	}
	if _, err := AtDepth(MaxDepth + 1); err == nil {
		t.Error("AtDepth above the cap should fail")
	}
	if _, err := Timed(MaxTimeMS); err != nil {
		t.Errorf("Timed(%d): %v", MaxTimeMS, err)
	}
	if _, err := Timed(MaxTimeMS + 1); err == nil {
		t.Error("Timed above the cap should fail")
	}
}

func TestSearchReturnsAllRootActions(t *testing.T) {
	e := testEngine(t)
	b := board.New()

	ranked := e.Search(b, depthConstraint(t, 3))
	if len(ranked) != len(b.Actions()) {
		t.Fatalf("ranked %d actions, want %d", len(ranked), len(b.Actions()))
	}

	seen := make(map[board.Action]bool)
	for _, as := range ranked {
		seen[as.Action] = true
	}
	for _, as := range b.Actions() {
		if !seen[as.Action] {
			t.Errorf("legal action %v missing from search result", as.Action)
		}
	}
}

func TestSearchRankingDirection(t *testing.T) {
	e := testEngine(t)

	// Black maximizes: scores descending.
	ranked := e.Search(board.New(), depthConstraint(t, 4))
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("black ranking not descending at %d: %v > %v", i, ranked[i].Score, ranked[i-1].Score)
		}
	}

	// White minimizes: scores ascending.
	b, err := board.ParseFEN("W:W21,22,23,24,25,26,27,28,29,30,31,32:B1,2,3,4,5,6,7,8,9,10,11,12")
	if err != nil {
		t.Fatal(err)
	}
	ranked = e.Search(b, depthConstraint(t, 4))
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score < ranked[i-1].Score {
			t.Errorf("white ranking not ascending at %d: %v < %v", i, ranked[i].Score, ranked[i-1].Score)
		}
	}
}

// At depth zero every child is scored by the bare evaluator, so the ranking
// must agree with it exactly.
func TestSearchDepthZeroMatchesEvaluator(t *testing.T) {
	e := testEngine(t)
	b, err := board.ParseFEN("W:W9,K11,19,K26,27,30:B15,22,25,K32")
	if err != nil {
		t.Fatal(err)
	}

	ranked := e.Search(b, depthConstraint(t, 0))
	children := make(map[board.Action]Score)
	for _, as := range b.Actions() {
		children[as.Action] = Material(as.Board)
	}
	for _, as := range ranked {
		if as.Score != children[as.Action] {
			t.Errorf("%v scored %v, evaluator says %v", as.Action, as.Score, children[as.Action])
		}
	}
}

func TestSearchForcedWin(t *testing.T) {
	e := testEngine(t)

	// Black's only move captures White's last man.
	b, err := board.ParseFEN("B:W14:B10")
	if err != nil {
		t.Fatal(err)
	}

	ranked := e.Search(b, depthConstraint(t, 3))
	if len(ranked) != 1 {
		t.Fatalf("ranked %d actions, want 1", len(ranked))
	}
	if got := ranked[0].Action.Movetext(); got != "10-17" {
		t.Errorf("best action = %q, want 10-17", got)
	}
	if ranked[0].Score != 1 {
		t.Errorf("score = %v, want 1", ranked[0].Score)
	}
}

func TestSearchTerminalPosition(t *testing.T) {
	e := testEngine(t)
	b, err := board.ParseFEN("B:WK11,3:B")
	if err != nil {
		t.Fatal(err)
	}
	if ranked := e.Search(b, Unconstrained()); len(ranked) != 0 {
		t.Errorf("terminal position ranked %d actions, want 0", len(ranked))
	}
}

func TestSearchTimed(t *testing.T) {
	e := testEngine(t)

	c, err := Timed(100)
	if err != nil {
		t.Fatal(err)
	}

	start := time.Now()
	ranked := e.Search(board.New(), c)
	elapsed := time.Since(start)

	if len(ranked) == 0 {
		t.Fatal("timed search returned no result")
	}
	if elapsed < 100*time.Millisecond {
		t.Errorf("timed search returned after %v, before the budget elapsed", elapsed)
	}

	// The ranking covers every root action, like any completed iteration.
	if len(ranked) != len(board.New().Actions()) {
		t.Errorf("ranked %d actions, want %d", len(ranked), len(board.New().Actions()))
	}
}

func TestSearchSharedEngineConcurrent(t *testing.T) {
	e := testEngine(t)
	boards := []string{
		board.StartFEN,
		"W:W9,K11,19,K26,27,30:B15,22,25,K32",
		"B:WK3,11,23,25,26,27:B6,7,8,18,19,21,K31",
	}

	done := make(chan struct{})
	for _, fen := range boards {
		go func(fen string) {
			defer func() { done <- struct{}{} }()
			b, err := board.ParseFEN(fen)
			if err != nil {
				t.Error(err)
				return
			}
			if ranked := e.Search(b, depthConstraint(t, 4)); len(ranked) == 0 {
				t.Errorf("%q: empty result", fen)
			}
		}(fen)
	}
	for range boards {
		<-done
	}
}

func TestMaterialEvaluator(t *testing.T) {
	tests := []struct {
		fen  string
		want Score
	}{
		{board.StartFEN, 0},
		{"B:W14:B10", 0},
		{"B:W21:B1,2", 1},
		{"B:W21,22:BK1", 0},  // a king counts double
		{"W:WK21,22:B1", -2}, // symmetric for white
	}
	for _, tc := range tests {
		b, err := board.ParseFEN(tc.fen)
		if err != nil {
			t.Fatal(err)
		}
		if got := Material(b); got != tc.want {
			t.Errorf("Material(%q) = %v, want %v", tc.fen, got, tc.want)
		}
	}
}
