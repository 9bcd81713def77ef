package movegen

import (
	"golang.org/x/exp/slices"

	"github.com/brackenfield/chessmg/attacks"
	"github.com/brackenfield/chessmg/bitset"
	"github.com/brackenfield/chessmg/coord"
	"github.com/brackenfield/chessmg/position"
)

// LegalMoves returns every legal move available to the side to move, in
// no particular order (spec §4.4: "callers that need a canonical order
// sort the result themselves").
func LegalMoves(pos *position.Position) []position.Move {
	return generate(pos, true)
}

// SortedLegalMoves returns LegalMoves in the canonical (from, to,
// promotion) order spec §4.4 defines for callers that need a
// deterministic move list — golden-file tests and the divide/compare
// tooling in cmd/perft chief among them.
func SortedLegalMoves(pos *position.Position) []position.Move {
	moves := LegalMoves(pos)
	slices.SortFunc(moves, func(a, b position.Move) bool {
		if a.From() != b.From() {
			return a.From() < b.From()
		}
		if a.To() != b.To() {
			return a.To() < b.To()
		}
		return a.Promotion() < b.Promotion()
	})
	return moves
}

// PseudoMoves returns every move that respects blockers, board edges and
// castling-path emptiness, but has not been checked for leaving the
// mover's own king in check.
func PseudoMoves(pos *position.Position) []position.Move {
	return generate(pos, false)
}

func generate(pos *position.Position, legal bool) []position.Move {
	side := pos.SideToMove()
	opp := side.Opponent()
	occ := pos.AllOccupancy()
	ownOcc := pos.Occupancy(side)
	kingSq := pos.Bitboard(side, coord.King).FirstSet()

	var st checkState
	if legal {
		st = computeCheckState(pos)
	} else {
		st.targetMask = bitset.All
		for i := range st.pinRay {
			st.pinRay[i] = bitset.All
		}
	}

	moves := make([]position.Move, 0, 32)

	// King moves.
	occWithoutKing := occ.Clear(kingSq)
	kingDest := attacks.KingMoves[kingSq] &^ ownOcc
	kingDest.Each(func(to int) {
		if legal && isAttackedWithOcc(pos, to, opp, occWithoutKing) {
			return
		}
		moves = append(moves, makeMove(pos, kingSq, to, coord.King, coord.Empty, position.FlagNone))
	})

	if st.checkersCount == 0 || !legal {
		generateCastling(pos, legal, &moves)
	}

	if st.checkersCount < 2 || !legal {
		for _, kind := range coord.NonKing {
			pieces := pos.Bitboard(side, kind)
			pieces.Each(func(from int) {
				if kind == coord.Pawn {
					generatePawnMoves(pos, from, st, legal, &moves)
					return
				}
				reach := sliderOrLeaperReach(kind, from, occ)
				reach &^= ownOcc
				reach &= st.pinRay[from]
				reach &= st.targetMask
				reach.Each(func(to int) {
					moves = append(moves, makeMove(pos, from, to, kind, coord.Empty, position.FlagNone))
				})
			})
		}
	}

	return moves
}

func sliderOrLeaperReach(kind coord.Kind, from int, occ bitset.Set) bitset.Set {
	switch kind {
	case coord.Knight:
		return attacks.KnightMoves[from]
	case coord.Bishop:
		return attacks.BishopAttacks(from, occ)
	case coord.Rook:
		return attacks.RookAttacks(from, occ)
	case coord.Queen:
		return attacks.QueenAttacks(from, occ)
	}
	return bitset.Empty
}

// makeMove fills in the captured-piece field by consulting pos directly,
// so every call site above only needs to name from/to/piece/flag.
func makeMove(pos *position.Position, from, to int, piece, promotion coord.Kind, flag position.Flag) position.Move {
	captured := coord.Empty
	if k, _, ok := pos.PieceAt(to); ok {
		captured = k
	}
	return position.NewMove(from, to, piece, captured, promotion, flag)
}

func isAttackedWithOcc(pos *position.Position, sq int, byColor coord.Color, occ bitset.Set) bool {
	return attackersOfWithOcc(pos, sq, byColor, occ) != bitset.Empty
}

var promotionKinds = [4]coord.Kind{coord.Queen, coord.Rook, coord.Bishop, coord.Knight}

func generateCastling(pos *position.Position, legal bool, moves *[]position.Move) {
	side := pos.SideToMove()
	opp := side.Opponent()
	occ := pos.AllOccupancy()
	rights := pos.CastlingRights()

	type castle struct {
		right         position.CastleRight
		kingFrom      int
		kingTo        int
		pathSquares   []int // squares that must be empty
		safetySquares []int // squares (incl. king's current square) that must not be attacked
	}

	var candidates []castle
	if side == coord.White {
		candidates = []castle{
			{position.WhiteKingside, 4, 6, []int{5, 6}, []int{4, 5, 6}},
			{position.WhiteQueenside, 4, 2, []int{1, 2, 3}, []int{2, 3, 4}},
		}
	} else {
		candidates = []castle{
			{position.BlackKingside, 60, 62, []int{61, 62}, []int{60, 61, 62}},
			{position.BlackQueenside, 60, 58, []int{57, 58, 59}, []int{58, 59, 60}},
		}
	}

	for _, c := range candidates {
		if rights&c.right == 0 {
			continue
		}
		blocked := false
		for _, sq := range c.pathSquares {
			if occ.Contains(sq) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		if legal {
			attacked := false
			for _, sq := range c.safetySquares {
				if IsSquareAttacked(pos, sq, opp) {
					attacked = true
					break
				}
			}
			if attacked {
				continue
			}
		}
		*moves = append(*moves, position.NewMove(c.kingFrom, c.kingTo, coord.King, coord.Empty, coord.Empty, position.FlagCastle))
	}
}
