package position

import (
	"github.com/brackenfield/chessmg/attacks"
	"github.com/brackenfield/chessmg/coord"
)

// UndoRecord captures exactly what Apply changed, so Undo can restore the
// position bit-for-bit without recomputation. Per spec §4.5, Apply trusts
// its caller to only ever hand it a legal move — package movegen is the
// sole legality gate; Apply itself never second-guesses and never fails.
type UndoRecord struct {
	move            Move
	prevCastling    CastleRight
	prevEnPassant   coord.Square
	prevHalfmove    int
	prevFullmove    int
	prevZobrist     uint64
	capturedSquare  int
	rookFrom        int
	rookTo          int
	hadCastleRook   bool
}

// Apply plays m and returns the record Undo needs to reverse it.
func (p *Position) Apply(m Move) UndoRecord {
	u := UndoRecord{
		move:          m,
		prevCastling:  p.castling,
		prevEnPassant: p.epSquare,
		prevHalfmove:  p.halfmove,
		prevFullmove:  p.fullmove,
		prevZobrist:   p.zobrist,
		capturedSquare: -1,
	}

	from, to := m.From(), m.To()
	piece, color := m.Piece(), p.sideToMove

	p.zobrist ^= zobristCastle[p.castling]
	if p.epSquare != coord.NoSquare {
		p.zobrist ^= zobristEP[coord.File(p.epSquare)]
	}

	// Remove a captured piece before relocating the mover, including the
	// en-passant special case where the captured pawn does not sit on the
	// destination square.
	if m.Flag() == FlagEnPassant {
		capSq := to - coord.North
		if color == coord.Black {
			capSq = to - coord.South
		}
		u.capturedSquare = capSq
		p.zobrist ^= zobristPiece[color.Opponent()][coord.Pawn-1][capSq]
		p.ClearSquare(capSq)
	} else if m.IsCapture() {
		u.capturedSquare = to
		p.zobrist ^= zobristPiece[color.Opponent()][m.Captured()-1][to]
		p.ClearSquare(to)
	}

	p.zobrist ^= zobristPiece[color][piece-1][from]
	p.ClearSquare(from)

	finalPiece := piece
	if m.IsPromotion() {
		finalPiece = m.Promotion()
	}
	p.SetPiece(to, finalPiece, color)
	p.zobrist ^= zobristPiece[color][finalPiece-1][to]

	if m.Flag() == FlagCastle {
		u.hadCastleRook = true
		if to > from {
			u.rookFrom, u.rookTo = to+1, from+1
		} else {
			u.rookFrom, u.rookTo = to-2, from-1
		}
		p.zobrist ^= zobristPiece[color][coord.Rook-1][u.rookFrom]
		p.ClearSquare(u.rookFrom)
		p.SetPiece(u.rookTo, coord.Rook, color)
		p.zobrist ^= zobristPiece[color][coord.Rook-1][u.rookTo]
	}

	p.castling = updatedCastlingRights(p.castling, piece, from, to)

	p.epSquare = coord.NoSquare
	if m.Flag() == FlagDoublePush {
		epSq := (from + to) / 2
		if attacks.PawnAttacks[color][epSq]&p.Bitboard(color.Opponent(), coord.Pawn) != 0 {
			p.epSquare = coord.Square(epSq)
		}
	}

	if piece == coord.Pawn || m.IsCapture() {
		p.halfmove = 0
	} else {
		p.halfmove++
	}
	if color == coord.Black {
		p.fullmove++
	}

	p.sideToMove = color.Opponent()
	p.zobrist ^= zobristSide
	p.zobrist ^= zobristCastle[p.castling]
	if p.epSquare != coord.NoSquare {
		p.zobrist ^= zobristEP[coord.File(p.epSquare)]
	}

	p.history = append(p.history, p.zobrist)
	return u
}

// Undo reverses the effect of Apply(m), restoring every field exactly,
// including the Zobrist key from the saved snapshot rather than
// recomputing it incrementally.
func (p *Position) Undo(u UndoRecord) {
	m := u.move
	from, to := m.From(), m.To()
	color := p.sideToMove.Opponent()

	if len(p.history) > 0 {
		p.history = p.history[:len(p.history)-1]
	}

	p.sideToMove = color
	p.castling = u.prevCastling
	p.epSquare = u.prevEnPassant
	p.halfmove = u.prevHalfmove
	p.fullmove = u.prevFullmove
	p.zobrist = u.prevZobrist

	p.ClearSquare(to)
	p.SetPiece(from, m.Piece(), color)

	if u.hadCastleRook {
		p.ClearSquare(u.rookTo)
		p.SetPiece(u.rookFrom, coord.Rook, color)
	}

	if u.capturedSquare >= 0 {
		capturedKind := m.Captured()
		if m.Flag() == FlagEnPassant {
			capturedKind = coord.Pawn
		}
		p.SetPiece(u.capturedSquare, capturedKind, color.Opponent())
	}
}

// updatedCastlingRights strips whichever rights a king move, a rook move
// from its home square, or a capture on a rook's home square revokes.
func updatedCastlingRights(rights CastleRight, piece coord.Kind, from, to int) CastleRight {
	const (
		a1, e1, h1 = 0, 4, 7
		a8, e8, h8 = 56, 60, 63
	)
	switch {
	case piece == coord.King && from == e1:
		rights &^= WhiteKingside | WhiteQueenside
	case piece == coord.King && from == e8:
		rights &^= BlackKingside | BlackQueenside
	}
	switch from {
	case h1:
		rights &^= WhiteKingside
	case a1:
		rights &^= WhiteQueenside
	case h8:
		rights &^= BlackKingside
	case a8:
		rights &^= BlackQueenside
	}
	switch to {
	case h1:
		rights &^= WhiteKingside
	case a1:
		rights &^= WhiteQueenside
	case h8:
		rights &^= BlackKingside
	case a8:
		rights &^= BlackQueenside
	}
	return rights
}
