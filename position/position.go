// Package position implements the board representation (spec component
// C4) and move application (C6): twelve piece-color bitboards, side to
// move, castling rights, the en-passant target, the halfmove clock, and a
// Zobrist hash kept incrementally in sync with every mutation.
package position

import (
	"github.com/brackenfield/chessmg/bitset"
	"github.com/brackenfield/chessmg/coord"
)

// CastleRight is one bit of castling permission.
type CastleRight uint8

const (
	WhiteKingside  CastleRight = 1 << 0
	WhiteQueenside CastleRight = 1 << 1
	BlackKingside  CastleRight = 1 << 2
	BlackQueenside CastleRight = 1 << 3
)

// Position is the single-owner mutable board state spec §5 describes: safe
// to read from any number of goroutines as long as none of them mutate it
// concurrently, and cheap to Clone for parallel search roots since every
// field except the history slice is a fixed-size array or scalar.
type Position struct {
	// byKind[color][kind-1] holds the bitboard of that color's pieces of
	// that kind. Kind 0 (coord.Empty) has no slot.
	byKind     [2][6]bitset.Set
	occupancy  [2]bitset.Set
	mailbox    [64]mailboxEntry
	sideToMove coord.Color
	castling   CastleRight
	epSquare   coord.Square
	halfmove   int
	fullmove   int
	zobrist    uint64

	// history records the Zobrist key of the finalized starting position
	// and of the position after every move played since, for repetition
	// detection; Apply appends to it, Undo drops its last entry, and Apply
	// never consults it otherwise.
	history []uint64
}

type mailboxEntry struct {
	kind    coord.Kind
	color   coord.Color
	present bool
}

// New returns an empty position: no pieces, White to move, no castling
// rights, no en-passant target, clocks at zero. Callers (typically package
// fen) populate it via the mutation methods below, then call Finalize.
func New() *Position {
	p := &Position{epSquare: coord.NoSquare}
	return p
}

// SideToMove returns whose turn it is.
func (p *Position) SideToMove() coord.Color { return p.sideToMove }

// SetSideToMove sets whose turn it is.
func (p *Position) SetSideToMove(c coord.Color) { p.sideToMove = c }

// CastlingRights returns the current castling permissions.
func (p *Position) CastlingRights() CastleRight { return p.castling }

// SetCastlingRights overwrites the castling permissions wholesale.
func (p *Position) SetCastlingRights(r CastleRight) { p.castling = r }

// EnPassantSquare returns the current en-passant target square, or
// coord.NoSquare if none.
func (p *Position) EnPassantSquare() coord.Square { return p.epSquare }

// SetEnPassantSquare sets the en-passant target square.
func (p *Position) SetEnPassantSquare(sq coord.Square) { p.epSquare = sq }

// HalfmoveClock returns the count of plies since the last capture or pawn
// push.
func (p *Position) HalfmoveClock() int { return p.halfmove }

// SetHalfmoveClock sets the halfmove clock directly (used by fen parsing).
func (p *Position) SetHalfmoveClock(n int) { p.halfmove = n }

// FullmoveNumber returns the current full move number, starting at 1.
func (p *Position) FullmoveNumber() int { return p.fullmove }

// SetFullmoveNumber sets the full move number directly.
func (p *Position) SetFullmoveNumber(n int) { p.fullmove = n }

// ZobristKey returns the position's current Zobrist hash.
func (p *Position) ZobristKey() uint64 { return p.zobrist }

// History returns the Zobrist keys of every position reached so far,
// oldest first, including the current one.
func (p *Position) History() []uint64 { return p.history }

// Occupancy returns the set of squares occupied by pieces of color c.
func (p *Position) Occupancy(c coord.Color) bitset.Set { return p.occupancy[c] }

// AllOccupancy returns the set of every occupied square.
func (p *Position) AllOccupancy() bitset.Set { return p.occupancy[coord.White] | p.occupancy[coord.Black] }

// Bitboard returns the bitboard of color c's pieces of kind k.
func (p *Position) Bitboard(c coord.Color, k coord.Kind) bitset.Set {
	if k == coord.Empty {
		return bitset.Empty
	}
	return p.byKind[c][k-1]
}

// PieceAt reports the kind and color of whatever occupies sq, if anything.
func (p *Position) PieceAt(sq int) (k coord.Kind, c coord.Color, ok bool) {
	e := p.mailbox[sq]
	return e.kind, e.color, e.present
}

// SetPiece places a piece of kind k and color c on sq, which must
// currently be empty. It is the primitive package fen uses to populate a
// freshly-created Position; it updates bitboards and the mailbox but not
// the Zobrist key (call Finalize once the whole position is built).
func (p *Position) SetPiece(sq int, k coord.Kind, c coord.Color) {
	p.byKind[c][k-1] = p.byKind[c][k-1].Set(sq)
	p.occupancy[c] = p.occupancy[c].Set(sq)
	p.mailbox[sq] = mailboxEntry{kind: k, color: c, present: true}
}

// ClearSquare removes whatever piece (if any) sits on sq.
func (p *Position) ClearSquare(sq int) {
	e := p.mailbox[sq]
	if !e.present {
		return
	}
	p.byKind[e.color][e.kind-1] = p.byKind[e.color][e.kind-1].Clear(sq)
	p.occupancy[e.color] = p.occupancy[e.color].Clear(sq)
	p.mailbox[sq] = mailboxEntry{}
}

// MovePiece relocates whatever sits on from to to, which must be empty.
// Neither fen nor Apply calls it; both go through SetPiece and
// ClearSquare directly.
func (p *Position) MovePiece(from, to int) {
	e := p.mailbox[from]
	if !e.present {
		return
	}
	p.ClearSquare(from)
	p.SetPiece(to, e.kind, e.color)
}

// Finalize recomputes the Zobrist key from scratch. Call it once after
// building a position via SetPiece/SetSideToMove/etc; Apply/Undo keep the
// key in sync incrementally afterward and never need Finalize again.
func (p *Position) Finalize() {
	p.zobrist = p.computeZobrist()
	p.history = []uint64{p.zobrist}
}

// Clone returns an independent copy of p. Every field is a fixed-size
// array or scalar except history, which is copied so the clone's journal
// never aliases the original's.
func (p *Position) Clone() *Position {
	c := *p
	c.history = append([]uint64(nil), p.history...)
	return &c
}
