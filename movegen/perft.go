package movegen

import "github.com/brackenfield/chessmg/position"

// Perft counts the leaf nodes of the legal move tree rooted at pos, to
// the given depth — the standard correctness harness for a move
// generator (a wrong count at a well-known depth means the generator
// disagrees with reality somewhere in its first few plies).
func Perft(pos *position.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := LegalMoves(pos)
	if depth == 1 {
		return int64(len(moves))
	}
	var total int64
	for _, m := range moves {
		u := pos.Apply(m)
		total += Perft(pos, depth-1)
		pos.Undo(u)
	}
	return total
}

// PerftDivide runs Perft one ply down from pos for every legal root move,
// returning the per-move leaf counts in long-algebraic notation — the
// standard tool for bisecting a perft mismatch against a reference
// engine's divide output.
func PerftDivide(pos *position.Position, depth int) map[string]int64 {
	out := make(map[string]int64)
	if depth < 1 {
		return out
	}
	for _, m := range LegalMoves(pos) {
		u := pos.Apply(m)
		out[m.String()] = Perft(pos, depth-1)
		pos.Undo(u)
	}
	return out
}
