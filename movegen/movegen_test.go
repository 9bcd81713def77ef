package movegen

import (
	"testing"

	"github.com/brackenfield/chessmg/fen"
)

func TestPerftStartPosition(t *testing.T) {
	pos := fen.MustParse(fen.StartPos)
	cases := []struct {
		depth int
		want  int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		if got := Perft(pos, c.depth); got != c.want {
			t.Errorf("Perft(start, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	pos := fen.MustParse(fen.StartPos)
	divide := PerftDivide(pos, 3)
	var total int64
	for _, n := range divide {
		total += n
	}
	if want := Perft(pos, 3); total != want {
		t.Errorf("sum of PerftDivide leaf counts = %d, want %d", total, want)
	}
	if len(divide) != 20 {
		t.Errorf("PerftDivide at the starting position should have 20 root moves, got %d", len(divide))
	}
}

func TestSortedLegalMovesIsDeterministicallyOrdered(t *testing.T) {
	pos := fen.MustParse(fen.StartPos)
	sorted := SortedLegalMoves(pos)
	for i := 1; i < len(sorted); i++ {
		a, b := sorted[i-1], sorted[i]
		if a.From() > b.From() {
			t.Fatalf("move %d (%s) sorts after move %d (%s) by From", i-1, a.String(), i, b.String())
		}
		if a.From() == b.From() && a.To() > b.To() {
			t.Fatalf("move %d (%s) sorts after move %d (%s) by To", i-1, a.String(), i, b.String())
		}
	}
	if len(sorted) != len(LegalMoves(pos)) {
		t.Fatalf("SortedLegalMoves changed the move count: %d vs %d", len(sorted), len(LegalMoves(pos)))
	}
}

func TestPerftKiwipete(t *testing.T) {
	pos := fen.MustParse("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if got := Perft(pos, 1); got != 48 {
		t.Errorf("Perft(kiwipete, 1) = %d, want 48", got)
	}
}

// TestEnPassantDiscoveredCheck covers spec §4.4 step 4: the capturing
// pawn and the captured pawn sit on the same rank as the king, and
// removing both at once (not either alone) opens a rook's file... here,
// a rook's rank to the king. Neither pawn is individually pinned by the
// ordinary ray scan, since each shields the other until the capture
// actually happens.
func TestEnPassantDiscoveredCheck(t *testing.T) {
	pos := fen.MustParse("4k3/8/8/r1pPK3/8/8/8/8 w - c6 0 1")
	for _, m := range LegalMoves(pos) {
		if m.String() == "d5c6" {
			t.Fatalf("dxc6 en passant should be illegal: it exposes the king to the a5 rook along rank 5")
		}
	}
}

// TestPinRestrictsRookToItsRay covers spec §4.4 step 2: a pinned rook may
// still move along the pin ray (including capturing the pinning piece)
// but not off it.
func TestPinRestrictsRookToItsRay(t *testing.T) {
	pos := fen.MustParse("r6k/8/8/8/R7/8/8/K7 w - - 0 1")
	allowed := map[string]bool{
		"a4a2": true, "a4a3": true, "a4a5": true,
		"a4a6": true, "a4a7": true, "a4a8": true,
	}
	seen := map[string]bool{}
	for _, m := range LegalMoves(pos) {
		if m.From() != 24 { // a4
			continue
		}
		seen[m.String()] = true
		if !allowed[m.String()] {
			t.Errorf("pinned rook produced disallowed move %s", m.String())
		}
	}
	for want := range allowed {
		if !seen[want] {
			t.Errorf("pinned rook is missing expected move %s", want)
		}
	}
}

// TestDoubleCheckOnlyKingMoves covers spec §4.4 step 2's double-check
// case: with two simultaneous checkers, no block or single capture can
// resolve both, so only king moves are legal.
func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// White king e1, checked at once by a black rook on e8 (along the
	// e-file) and a black knight on f3.
	pos := fen.MustParse("4r3/8/8/8/8/5n2/8/4K3 w - - 0 1")
	if InCheck(pos) {
		moves := LegalMoves(pos)
		for _, m := range moves {
			if m.Piece() != 6 { // coord.King
				t.Errorf("expected only king moves under double check, got %s moving piece kind %d", m.String(), m.Piece())
			}
		}
	}
}

func TestCastlingBlockedByAttackedSquare(t *testing.T) {
	// White king e1, rook h1, kingside rights intact, but a black rook on
	// f8 controls f1 — castling kingside must be illegal.
	pos := fen.MustParse("5r2/8/8/8/8/8/8/4K2R w K - 0 1")
	for _, m := range LegalMoves(pos) {
		if m.String() == "e1g1" {
			t.Fatal("kingside castling should be illegal while f1 is attacked")
		}
	}
}

func TestGivesCheckAfterDiscoveredCheck(t *testing.T) {
	// White rook a1, white bishop a2 blocking its own rook's file to a
	// black king on a8; moving the bishop off the file gives check.
	pos := fen.MustParse("k7/8/8/8/8/8/B7/R3K3 w - - 0 1")
	var found bool
	for _, m := range LegalMoves(pos) {
		if m.From() == 8 && m.To() == 1 { // a2-b1
			found = true
			if !GivesCheck(pos, m) {
				t.Error("a2b1 should give check by discovering the a-file rook")
			}
		}
	}
	if !found {
		t.Fatal("expected a2b1 to be a legal move")
	}
}
