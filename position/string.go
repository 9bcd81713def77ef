package position

import (
	"strings"

	"github.com/brackenfield/chessmg/coord"
)

var kindLetters = map[coord.Kind]string{
	coord.Pawn:   "p",
	coord.Knight: "n",
	coord.Bishop: "b",
	coord.Rook:   "r",
	coord.Queen:  "q",
	coord.King:   "k",
}

// String renders an 8x8 grid (rank 8 at top, as FEN diagrams do) plus a
// one-line status summary. Exposition only, not a compatibility contract.
func (p *Position) String() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			k, c, ok := p.PieceAt(sq)
			if !ok {
				b.WriteString(". ")
				continue
			}
			letter := kindLetters[k]
			if c == coord.White {
				letter = strings.ToUpper(letter)
			}
			b.WriteString(letter + " ")
		}
		b.WriteByte('\n')
	}
	b.WriteString(p.sideToMove.String())
	b.WriteString(" to move, castling=")
	b.WriteString(castlingString(p.castling))
	b.WriteString(", ep=")
	if p.epSquare == coord.NoSquare {
		b.WriteString("-")
	} else {
		b.WriteString(SquareName(int(p.epSquare)))
	}
	return b.String()
}

func castlingString(r CastleRight) string {
	s := ""
	if r&WhiteKingside != 0 {
		s += "K"
	}
	if r&WhiteQueenside != 0 {
		s += "Q"
	}
	if r&BlackKingside != 0 {
		s += "k"
	}
	if r&BlackQueenside != 0 {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
