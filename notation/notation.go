// Package notation parses and formats moves in long algebraic notation
// (spec §6), resolving a "from/to/promotion" string against the legal
// moves available in a position — the same external-collaborator role
// package fen plays for whole positions.
package notation

import (
	"fmt"
	"strings"

	"github.com/brackenfield/chessmg/movegen"
	"github.com/brackenfield/chessmg/position"
)

// ParseSquare parses a square name like "e4" into its 0..63 index.
func ParseSquare(s string) (int, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("notation: bad square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, fmt.Errorf("notation: bad square %q", s)
	}
	return rank*8 + file, nil
}

// Parse resolves a long-algebraic move string such as "e2e4" or "e7e8q"
// against pos's legal moves, returning the matching position.Move. This
// is the only place move strings (including the promotion letter, in
// either case) get interpreted — the core never sees strings. Castling
// is written as the king's own move, e.g. "e1g1".
func Parse(pos *position.Position, s string) (position.Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 4 {
		return 0, fmt.Errorf("notation: move %q too short", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return 0, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return 0, err
	}
	wantPromotion := byte(0)
	if len(s) >= 5 {
		wantPromotion = s[4]
	}

	for _, m := range movegen.LegalMoves(pos) {
		if m.From() != from || m.To() != to {
			continue
		}
		if wantPromotion == 0 {
			if !m.IsPromotion() {
				return m, nil
			}
			continue
		}
		if promotionLetter(m) == wantPromotion {
			return m, nil
		}
	}
	return 0, fmt.Errorf("notation: %q is not a legal move", s)
}

func promotionLetter(m position.Move) byte {
	return m.String()[len(m.String())-1]
}

// Format renders m in long algebraic notation. This is a thin wrapper
// over Move.String kept here so callers only ever import one package for
// move text in either direction.
func Format(m position.Move) string {
	return m.String()
}
