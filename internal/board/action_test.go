package board

import (
	"errors"
	"testing"
)

func TestActionFields(t *testing.T) {
	tests := []struct {
		movetext string
		source   Square
		dest     Square
		jumpLen  int
	}{
		{"1-10-17", 0, 16, 2},
		{"1-6", 0, 5, 0},
		{"10-19-12-3", 9, 2, 3},
		{"15-11", 14, 10, 0},
		{"8-15-22-31", 7, 30, 3},
	}

	for _, tc := range tests {
		a, err := ParseAction(tc.movetext)
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", tc.movetext, err)
		}
		if a.Source() != tc.source {
			t.Errorf("%q: source = %d, want %d", tc.movetext, a.Source(), tc.source)
		}
		if a.Destination() != tc.dest {
			t.Errorf("%q: destination = %d, want %d", tc.movetext, a.Destination(), tc.dest)
		}
		if a.JumpLen() != tc.jumpLen {
			t.Errorf("%q: jumpLen = %d, want %d", tc.movetext, a.JumpLen(), tc.jumpLen)
		}
		if a.IsJump() != (tc.jumpLen > 0) {
			t.Errorf("%q: IsJump = %v, want %v", tc.movetext, a.IsJump(), tc.jumpLen > 0)
		}
	}
}

func TestActionJumpDirections(t *testing.T) {
	a, err := ParseAction("1-10-17")
	if err != nil {
		t.Fatal(err)
	}
	if d, ok := a.JumpDirection(0); !ok || d != DownRight {
		t.Errorf("direction 0 = %v, %v; want down-right", d, ok)
	}
	if d, ok := a.JumpDirection(1); !ok || d != DownLeft {
		t.Errorf("direction 1 = %v, %v; want down-left", d, ok)
	}
	if _, ok := a.JumpDirection(2); ok {
		t.Error("direction 2 should not exist")
	}

	a, err = ParseAction("10-19-12-3")
	if err != nil {
		t.Fatal(err)
	}
	if d, ok := a.JumpDirection(1); !ok || d != UpRight {
		t.Errorf("direction 1 = %v, %v; want up-right", d, ok)
	}
	if d, ok := a.JumpDirection(2); !ok || d != UpLeft {
		t.Errorf("direction 2 = %v, %v; want up-left", d, ok)
	}
}

func TestActionMoveDirection(t *testing.T) {
	a, _ := ParseAction("1-10-17")
	if _, ok := a.MoveDirection(); ok {
		t.Error("jump chain should have no move direction")
	}

	a, _ = ParseAction("1-6")
	if d, ok := a.MoveDirection(); !ok || d != DownRight {
		t.Errorf("1-6 direction = %v, %v; want down-right", d, ok)
	}

	a, _ = ParseAction("15-11")
	if d, ok := a.MoveDirection(); !ok || d != UpRight {
		t.Errorf("15-11 direction = %v, %v; want up-right", d, ok)
	}
}

func TestActionMovetextRoundTrip(t *testing.T) {
	for _, movetext := range []string{
		"1-6", "15-11", "22-17", "1-10-17", "10-19-12-3", "8-15-22-31",
	} {
		a, err := ParseAction(movetext)
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", movetext, err)
		}
		if a.Movetext() != movetext {
			t.Errorf("Movetext() = %q, want %q", a.Movetext(), movetext)
		}
		b, err := ParseAction(a.Movetext())
		if err != nil {
			t.Fatalf("reparse %q: %v", a.Movetext(), err)
		}
		if a != b {
			t.Errorf("round trip of %q: %#x != %#x", movetext, uint32(a), uint32(b))
		}
	}
}

func TestActionErrors(t *testing.T) {
	var quantityErr *MoveQuantityError
	var valueErr *PositionValueError

	if _, err := NewAction(10); !errors.As(err, &quantityErr) {
		t.Errorf("single position: got %v, want MoveQuantityError", err)
	}
	if _, err := NewAction(1, 10, 17, 26, 19, 10, 1, 10, 17, 26); !errors.As(err, &quantityErr) {
		t.Errorf("ten positions: got %v, want MoveQuantityError", err)
	}
	if _, err := NewAction(0, 5); !errors.As(err, &valueErr) {
		t.Errorf("position 0: got %v, want PositionValueError", err)
	}
	if _, err := NewAction(33, 28); !errors.As(err, &valueErr) {
		t.Errorf("position 33: got %v, want PositionValueError", err)
	}
	// Same row: the offset alone looks like a step but no diagonal connects.
	if _, err := NewAction(1, 4); !errors.As(err, &valueErr) {
		t.Errorf("1-4: got %v, want PositionValueError", err)
	}
	// Adjacent but not reachable by a jump.
	if _, err := NewAction(1, 2); !errors.As(err, &valueErr) {
		t.Errorf("1-2: got %v, want PositionValueError", err)
	}
	// Chain with a non-jump link.
	if _, err := ParseAction("1-6-10"); !errors.As(err, &valueErr) {
		t.Errorf("1-6-10: got %v, want PositionValueError", err)
	}
	if _, err := ParseAction("abc"); !errors.As(err, &valueErr) {
		t.Errorf("abc: got %v, want PositionValueError", err)
	}
}

func TestDirectionStepEdges(t *testing.T) {
	// Square 4 (external) sits on the right edge of the top row.
	if got := DownRight.Step(3); got != NoSquare {
		t.Errorf("DownRight from square 4 = %d, want off-board", got)
	}
	if got := DownLeft.Step(3); got != 7 {
		t.Errorf("DownLeft from square 4 = %d, want 7", got)
	}
	// Square 5 (external) sits on the left edge.
	if got := DownLeft.Step(4); got != NoSquare {
		t.Errorf("DownLeft from square 5 = %d, want off-board", got)
	}
	if got := DownRight.Step(4); got != 8 {
		t.Errorf("DownRight from square 5 = %d, want 8", got)
	}
	// Jumps reject column wrap.
	if got := DownRight.Jump(6); got != 15 {
		t.Errorf("DownRight jump from square 7 = %d, want 15", got)
	}
	if got := DownRight.Jump(7); got != NoSquare {
		t.Errorf("DownRight jump from square 8 = %d, want off-board", got)
	}
}
