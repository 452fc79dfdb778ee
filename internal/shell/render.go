package shell

import (
	"strings"

	"github.com/fatih/color"

	"github.com/jatayl/muskox/internal/board"
)

var (
	blackPiece = color.New(color.FgRed)
	whitePiece = color.New(color.FgCyan)
	blackKing  = color.New(color.FgRed, color.Bold)
	whiteKing  = color.New(color.FgCyan, color.Bold)
)

// renderBoard draws the position as a colored grid. Black men render red,
// white men cyan; kings are uppercase and bold.
func (s *Shell) renderBoard() string {
	var sb strings.Builder

	sq := board.Square(0)
	for row := 0; row < 8; row++ {
		sb.WriteString("+---+---+---+---+---+---+---+---+\n")
		for col := 0; col < 8; col++ {
			if (row+col)%2 == 0 {
				sb.WriteString("|   ")
				continue
			}

			sb.WriteString("| ")
			c, king, occupied := s.board.Piece(sq)
			switch {
			case !occupied:
				sb.WriteByte(' ')
			case c == board.Black && king:
				sb.WriteString(blackKing.Sprint("B"))
			case c == board.Black:
				sb.WriteString(blackPiece.Sprint("b"))
			case king:
				sb.WriteString(whiteKing.Sprint("W"))
			default:
				sb.WriteString(whitePiece.Sprint("w"))
			}
			sb.WriteByte(' ')
			sq++
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+---+---+---+---+---+---+---+---+")

	return sb.String()
}
