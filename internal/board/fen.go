package board

import (
	"strconv"
	"strings"
)

// StartFEN is the PDN FEN tag for the starting position.
const StartFEN = "B:W21,22,23,24,25,26,27,28,29,30,31,32:B1,2,3,4,5,6,7,8,9,10,11,12"

// ParseFEN parses a PDN-style FEN tag: "<turn>:<side>:<side>", where each
// side is its color letter followed by comma-separated squares in 1..32
// numbering, kings prefixed with 'K'. A side with no pieces is written as the
// bare color letter.
func ParseFEN(fen string) (Board, error) {
	fen = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, fen)

	parts := strings.Split(fen, ":")
	if len(parts) != 3 {
		return Board{}, ErrColonQuantity
	}

	var turn Color
	switch parts[0] {
	case "B":
		turn = Black
	case "W":
		turn = White
	default:
		return Board{}, &ColorParseError{Letter: parts[0]}
	}

	var blacks, whites, kings Bitmask

	for _, side := range parts[1:] {
		if side == "" {
			return Board{}, &ColorParseError{Letter: side}
		}

		var pieces Bitmask
		for _, piece := range strings.Split(side[1:], ",") {
			if piece == "" {
				continue
			}

			digits := piece
			isKing := false
			if digits[0] == 'K' {
				isKing = true
				digits = digits[1:]
			}

			n, err := strconv.Atoi(digits)
			if err != nil || n < 1 || n > 32 {
				return Board{}, &PositionParseError{Position: piece}
			}

			pieces = pieces.Set(Square(n - 1))
			if isKing {
				kings = kings.Set(Square(n - 1))
			}
		}

		switch side[0] {
		case 'B':
			blacks |= pieces
		case 'W':
			whites |= pieces
		default:
			return Board{}, &ColorParseError{Letter: side[:1]}
		}
	}

	return Board{blacks: blacks, whites: whites, kings: kings, turn: turn}, nil
}

// FEN renders the position as a PDN FEN tag, white side first, squares in
// ascending order.
func (b Board) FEN() string {
	var sb strings.Builder

	if b.turn == Black {
		sb.WriteByte('B')
	} else {
		sb.WriteByte('W')
	}

	writeSide := func(letter byte, mask Bitmask) {
		sb.WriteByte(':')
		sb.WriteByte(letter)
		first := true
		for m := mask; m != 0; {
			s := m.PopLSB()
			if !first {
				sb.WriteByte(',')
			}
			first = false
			if b.kings.IsSet(s) {
				sb.WriteByte('K')
			}
			sb.WriteString(strconv.Itoa(int(s) + 1))
		}
	}

	writeSide('W', b.whites)
	writeSide('B', b.blacks)

	return sb.String()
}
