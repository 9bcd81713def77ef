// Package eval implements a static evaluator: material balance plus
// piece-square tables, from the side-to-move's perspective. Exposition
// only — spec §7 names this a reference implementation for testing the
// move generator, not a search-grade evaluation function.
package eval

import (
	"github.com/brackenfield/chessmg/coord"
	"github.com/brackenfield/chessmg/position"
)

// MaterialValue is the centipawn value of one piece of each kind.
var MaterialValue = map[coord.Kind]int{
	coord.Pawn:   100,
	coord.Knight: 320,
	coord.Bishop: 330,
	coord.Rook:   500,
	coord.Queen:  900,
	coord.King:   0,
}

// Evaluate returns a centipawn score from the side-to-move's point of
// view: positive favors the side to move. It returns 0 outright once the
// halfmove clock reaches the source's documented threshold, ahead of any
// material count — see DESIGN.md's Open Questions for why this is 50 and
// not the standard 100.
func Evaluate(pos *position.Position) int {
	if pos.IsDrawByFiftyMoveRule() {
		return 0
	}

	side := pos.SideToMove()
	opp := side.Opponent()

	score := materialAndPST(pos, side) - materialAndPST(pos, opp)
	return score
}

func materialAndPST(pos *position.Position, c coord.Color) int {
	total := 0
	for _, k := range coord.NonKing {
		bb := pos.Bitboard(c, k)
		value := MaterialValue[k]
		table := pieceSquareTable[k]
		bb.Each(func(sq int) {
			total += value
			total += table[coord.ReverseForColor(coord.Square(sq), c)]
		})
	}
	kingBB := pos.Bitboard(c, coord.King)
	kingBB.Each(func(sq int) {
		total += pieceSquareTable[coord.King][coord.ReverseForColor(coord.Square(sq), c)]
	})
	return total
}
