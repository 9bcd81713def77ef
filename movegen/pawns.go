package movegen

import (
	"github.com/brackenfield/chessmg/attacks"
	"github.com/brackenfield/chessmg/coord"
	"github.com/brackenfield/chessmg/position"
)

// generatePawnMoves handles pushes, double pushes, diagonal captures,
// promotions and en passant for the pawn on from. Pawns get their own
// function because none of the other piece kinds have a direction that
// depends on color, a double-length first move, or a capture that can
// happen on an empty square.
func generatePawnMoves(pos *position.Position, from int, st checkState, legal bool, moves *[]position.Move) {
	side := pos.SideToMove()
	opp := side.Opponent()
	occ := pos.AllOccupancy()

	dir := coord.North
	startRank := 1
	promRank := 7
	if side == coord.Black {
		dir = coord.South
		startRank = 6
		promRank = 0
	}

	emit := func(to int, flag position.Flag, captured coord.Kind) {
		if legal {
			if !st.pinRay[from].Contains(to) || !st.targetMask.Contains(to) {
				return
			}
		}
		if coord.Rank(coord.Square(to)) == promRank {
			for _, pk := range promotionKinds {
				*moves = append(*moves, position.NewMove(from, to, coord.Pawn, captured, pk, flag))
			}
			return
		}
		*moves = append(*moves, position.NewMove(from, to, coord.Pawn, captured, coord.Empty, flag))
	}

	single := from + dir
	if single >= 0 && single < 64 && !occ.Contains(single) {
		emit(single, position.FlagNone, coord.Empty)
		if coord.Rank(coord.Square(from)) == startRank {
			double := from + 2*dir
			if !occ.Contains(double) {
				emit(double, position.FlagDoublePush, coord.Empty)
			}
		}
	}

	captures := attacks.PawnAttacks[side][from] & pos.Occupancy(opp)
	captures.Each(func(to int) {
		captured, _, _ := pos.PieceAt(to)
		emit(to, position.FlagNone, captured)
	})

	ep := pos.EnPassantSquare()
	if ep == coord.NoSquare {
		return
	}
	epSq := int(ep)
	if !attacks.PawnAttacks[side][from].Contains(epSq) {
		return
	}
	capturedSq := epSq - dir
	if legal {
		if !st.pinRay[from].Contains(epSq) {
			return
		}
		if !st.targetMask.Contains(epSq) && !st.targetMask.Contains(capturedSq) {
			return
		}
		if exposesKingOnRank(pos, from, capturedSq, epSq, side, opp) {
			return
		}
	}
	*moves = append(*moves, position.NewMove(from, epSq, coord.Pawn, coord.Pawn, coord.Empty, position.FlagEnPassant))
}

// exposesKingOnRank implements the en-passant discovered-check corner
// case (spec §4.4 step 4 / §9): removing both the capturing and captured
// pawns from the same rank can open a rook/queen's line to the king, even
// when neither pawn was individually pinned.
func exposesKingOnRank(pos *position.Position, from, capturedSq, to int, side, opp coord.Color) bool {
	kingSq := pos.Bitboard(side, coord.King).FirstSet()
	if coord.Rank(coord.Square(kingSq)) != coord.Rank(coord.Square(from)) {
		return false
	}
	hypOcc := pos.AllOccupancy()
	hypOcc = hypOcc.Clear(from).Clear(capturedSq).Set(to)
	return isAttackedWithOcc(pos, kingSq, opp, hypOcc)
}
