package board

import "testing"

func TestZobristDeterministic(t *testing.T) {
	rng := newPRNG(zobristSeed)
	for i, want := range zobristTable {
		if got := rng.next(); got != want {
			t.Fatalf("table entry %d not reproducible: %#x != %#x", i, got, want)
		}
	}
}

func TestZobristTurnKey(t *testing.T) {
	blackToMove := mustBoard(t, "B:W21:B1")
	whiteToMove := mustBoard(t, "W:W21:B1")
	if blackToMove.Hash()^whiteToMove.Hash() != zobristTurn() {
		t.Error("hashes of mirrored turns should differ by exactly the turn key")
	}
}

func TestZobristKingKey(t *testing.T) {
	man := mustBoard(t, "B:W21:B10")
	king := mustBoard(t, "B:W21:BK10")
	if man.Hash() == king.Hash() {
		t.Error("crowning a piece should change the hash")
	}
}

// Every generated action carries an XOR delta that must advance the parent
// key to the child key.
func TestZobristIncremental(t *testing.T) {
	for _, fen := range []string{StartFEN, testBoard2, testBoard3, testBoard7} {
		b := mustBoard(t, fen)
		h := b.Hash()
		for _, as := range b.Actions() {
			if got := h ^ as.ZobristDelta; got != as.Board.Hash() {
				t.Errorf("%q: action %v: incremental hash %#x != full hash %#x",
					fen, as.Action, got, as.Board.Hash())
			}
		}
	}
}
