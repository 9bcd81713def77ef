package position

import (
	"fmt"

	"github.com/brackenfield/chessmg/coord"
)

// Flag marks the special-move handling Apply must perform beyond a plain
// piece relocation.
type Flag uint8

const (
	FlagNone      Flag = 0
	FlagCastle    Flag = 1
	FlagEnPassant Flag = 2
	FlagDoublePush Flag = 3
)

// Move is a packed description of one ply, small enough to copy, compare
// with ==, and sort by value — the native encoding spec §3 calls for
// ("equality is structural").
//
// Bit layout: from[0:6) to[6:12) piece[12:16) captured[16:20)
// promotion[20:24) flag[24:27).
type Move uint32

const (
	moveFromShift      = 0
	moveToShift        = 6
	movePieceShift     = 12
	moveCapturedShift  = 16
	movePromoteShift   = 20
	moveFlagShift      = 24
	move6BitMask       = 0x3F
	move4BitMask       = 0xF
)

// NewMove packs a move. captured and promotion use coord.Empty when not
// applicable.
func NewMove(from, to int, piece, captured, promotion coord.Kind, flag Flag) Move {
	return Move(uint32(from)<<moveFromShift |
		uint32(to)<<moveToShift |
		uint32(piece)<<movePieceShift |
		uint32(captured)<<moveCapturedShift |
		uint32(promotion)<<movePromoteShift |
		uint32(flag)<<moveFlagShift)
}

func (m Move) From() int             { return int(m>>moveFromShift) & move6BitMask }
func (m Move) To() int               { return int(m>>moveToShift) & move6BitMask }
func (m Move) Piece() coord.Kind     { return coord.Kind(m>>movePieceShift) & move4BitMask }
func (m Move) Captured() coord.Kind  { return coord.Kind(m>>moveCapturedShift) & move4BitMask }
func (m Move) Promotion() coord.Kind { return coord.Kind(m>>movePromoteShift) & move4BitMask }
func (m Move) Flag() Flag            { return Flag(m>>moveFlagShift) & 0x7 }
func (m Move) IsCapture() bool       { return m.Captured() != coord.Empty }
func (m Move) IsPromotion() bool     { return m.Promotion() != coord.Empty }

var squareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

var promotionLetters = map[coord.Kind]string{
	coord.Knight: "n",
	coord.Bishop: "b",
	coord.Rook:   "r",
	coord.Queen:  "q",
}

// String renders m in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := squareNames[m.From()] + squareNames[m.To()]
	if letter, ok := promotionLetters[m.Promotion()]; ok {
		s += letter
	}
	return s
}

// SquareName renders sq ("a1".."h8"), used by callers outside this
// package (render, notation) that only have a bare index.
func SquareName(sq int) string {
	if sq < 0 || sq > 63 {
		return fmt.Sprintf("?%d", sq)
	}
	return squareNames[sq]
}
