// Package movegen implements the single-pass legal move generator (spec
// component C5): pseudo-legal generation, the check/pin scan that turns it
// legal, attacker queries, and the perft correctness harness built on top.
package movegen

import (
	"github.com/brackenfield/chessmg/attacks"
	"github.com/brackenfield/chessmg/bitset"
	"github.com/brackenfield/chessmg/coord"
	"github.com/brackenfield/chessmg/position"
)

// AttackersOf returns every square occupied by a byColor piece that
// attacks sq, given pos's current occupancy. It is built on the symmetric
// leaper trick: a piece of the kind being queried, placed at sq, attacks
// exactly the squares that piece-kind could attack it from.
func AttackersOf(pos *position.Position, sq int, byColor coord.Color) bitset.Set {
	return attackersOfWithOcc(pos, sq, byColor, pos.AllOccupancy())
}

// attackersOfWithOcc is AttackersOf parameterized on an explicit
// occupancy, used by the en-passant discovered-check check (spec §4.4 step
// 4), which must probe attacks against a hypothetical occupancy that
// hasn't actually been applied to pos.
func attackersOfWithOcc(pos *position.Position, sq int, byColor coord.Color, occ bitset.Set) bitset.Set {
	var out bitset.Set
	out |= attacks.PawnAttacks[byColor.Opponent()][sq] & pos.Bitboard(byColor, coord.Pawn)
	out |= attacks.KnightMoves[sq] & pos.Bitboard(byColor, coord.Knight)
	out |= attacks.KingMoves[sq] & pos.Bitboard(byColor, coord.King)
	out |= attacks.BishopAttacks(sq, occ) & (pos.Bitboard(byColor, coord.Bishop) | pos.Bitboard(byColor, coord.Queen))
	out |= attacks.RookAttacks(sq, occ) & (pos.Bitboard(byColor, coord.Rook) | pos.Bitboard(byColor, coord.Queen))
	return out
}

// IsSquareAttacked reports whether any byColor piece attacks sq.
func IsSquareAttacked(pos *position.Position, sq int, byColor coord.Color) bool {
	return AttackersOf(pos, sq, byColor) != bitset.Empty
}

// InCheck reports whether the side to move's king is attacked.
func InCheck(pos *position.Position) bool {
	side := pos.SideToMove()
	kingSq := pos.Bitboard(side, coord.King).FirstSet()
	return IsSquareAttacked(pos, kingSq, side.Opponent())
}
