// Package fen parses and formats Forsyth-Edwards position descriptions.
// It is an external collaborator (spec §1): it never reaches into
// package position's internals, only calling the mutation methods
// position.Position already exports for exactly this purpose.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brackenfield/chessmg/coord"
	"github.com/brackenfield/chessmg/position"
)

// StartPos is the FEN of the standard starting position.
const StartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var pieceLetters = map[rune]coord.Kind{
	'p': coord.Pawn, 'n': coord.Knight, 'b': coord.Bishop,
	'r': coord.Rook, 'q': coord.Queen, 'k': coord.King,
}

// Parse builds a Position from fen, or returns an error describing the
// first malformed field.
func Parse(fen string) (*position.Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen: expected at least 4 fields, got %d", len(fields))
	}

	pos := position.New()
	if err := parseBoard(pos, fields[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, fields[1]); err != nil {
		return nil, err
	}
	if err := parseCastling(pos, fields[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, fields[3]); err != nil {
		return nil, err
	}
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("fen: bad halfmove clock %q: %w", fields[4], err)
		}
		pos.SetHalfmoveClock(n)
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("fen: bad fullmove number %q: %w", fields[5], err)
		}
		pos.SetFullmoveNumber(n)
	} else {
		pos.SetFullmoveNumber(1)
	}

	pos.Finalize()
	return pos, nil
}

// MustParse is Parse's panic-on-error convenience wrapper, for tests and
// constants where the FEN is known good at compile time.
func MustParse(fen string) *position.Position {
	pos, err := Parse(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

func parseBoard(pos *position.Position, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen: board field has %d ranks, want 8", len(ranks))
	}
	for i, rankField := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankField {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				lower := ch
				if lower >= 'A' && lower <= 'Z' {
					lower += 'a' - 'A'
				}
				kind, ok := pieceLetters[lower]
				if !ok {
					return fmt.Errorf("fen: unrecognized piece letter %q", ch)
				}
				if file > 7 {
					return fmt.Errorf("fen: rank %d overflows 8 files", rank+1)
				}
				color := coord.Black
				if ch >= 'A' && ch <= 'Z' {
					color = coord.White
				}
				pos.SetPiece(int(coord.Index(file, rank)), kind, color)
				file++
			}
		}
		if file != 8 {
			return fmt.Errorf("fen: rank %d has %d files, want 8", rank+1, file)
		}
	}
	return nil
}

func parseSideToMove(pos *position.Position, field string) error {
	switch field {
	case "w":
		pos.SetSideToMove(coord.White)
	case "b":
		pos.SetSideToMove(coord.Black)
	default:
		return fmt.Errorf("fen: bad side to move %q", field)
	}
	return nil
}

func parseCastling(pos *position.Position, field string) error {
	var rights position.CastleRight
	if field != "-" {
		for _, ch := range field {
			switch ch {
			case 'K':
				rights |= position.WhiteKingside
			case 'Q':
				rights |= position.WhiteQueenside
			case 'k':
				rights |= position.BlackKingside
			case 'q':
				rights |= position.BlackQueenside
			default:
				return fmt.Errorf("fen: bad castling field %q", field)
			}
		}
	}
	pos.SetCastlingRights(rights)
	return nil
}

func parseEnPassant(pos *position.Position, field string) error {
	if field == "-" {
		pos.SetEnPassantSquare(coord.NoSquare)
		return nil
	}
	if len(field) != 2 {
		return fmt.Errorf("fen: bad en-passant field %q", field)
	}
	file := int(field[0] - 'a')
	rank := int(field[1] - '1')
	if !coord.InRangeFile(file) || !coord.InRangeRank(rank) {
		return fmt.Errorf("fen: bad en-passant field %q", field)
	}
	pos.SetEnPassantSquare(coord.Index(file, rank))
	return nil
}

// Format renders pos as a FEN string.
func Format(pos *position.Position) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := int(coord.Index(file, rank))
			k, c, ok := pos.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := kindToLetter(k)
			if c == coord.White {
				letter = strings.ToUpper(letter)
			}
			b.WriteString(letter)
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	b.WriteString(pos.SideToMove().String())

	b.WriteByte(' ')
	b.WriteString(formatCastling(pos.CastlingRights()))

	b.WriteByte(' ')
	if pos.EnPassantSquare() == coord.NoSquare {
		b.WriteByte('-')
	} else {
		b.WriteString(position.SquareName(int(pos.EnPassantSquare())))
	}

	fmt.Fprintf(&b, " %d %d", pos.HalfmoveClock(), pos.FullmoveNumber())
	return b.String()
}

func kindToLetter(k coord.Kind) string {
	for letter, kind := range pieceLetters {
		if kind == k {
			return string(letter)
		}
	}
	return "?"
}

func formatCastling(r position.CastleRight) string {
	s := ""
	if r&position.WhiteKingside != 0 {
		s += "K"
	}
	if r&position.WhiteQueenside != 0 {
		s += "Q"
	}
	if r&position.BlackKingside != 0 {
		s += "k"
	}
	if r&position.BlackQueenside != 0 {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
