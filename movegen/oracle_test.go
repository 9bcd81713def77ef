package movegen

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/brackenfield/chessmg/fen"
)

// oraclePerft walks dragontoothmg's own legal-move generator the same way
// Perft walks ours, so the two counts can be compared directly without
// trusting either implementation's node count in isolation.
func oraclePerft(b *dragontoothmg.Board, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var nodes int64
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		nodes += oraclePerft(b, depth-1)
		unapply()
	}
	return nodes
}

func crossValidate(t *testing.T, fenStr string, depth int) {
	t.Helper()
	ours := Perft(fen.MustParse(fenStr), depth)

	board := dragontoothmg.ParseFen(fenStr)
	theirs := oraclePerft(&board, depth)

	if ours != theirs {
		t.Errorf("perft(%q, %d) = %d, dragontoothmg oracle says %d", fenStr, depth, ours, theirs)
	}
}

func TestPerftMatchesOracleAtStartingPosition(t *testing.T) {
	crossValidate(t, fen.StartPos, 3)
}

func TestPerftMatchesOracleAtKiwipete(t *testing.T) {
	crossValidate(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2)
}
