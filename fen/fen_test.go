package fen

import (
	"testing"

	"github.com/brackenfield/chessmg/coord"
	"github.com/brackenfield/chessmg/position"
)

func TestParseStartingPositionRoundTrip(t *testing.T) {
	pos, err := Parse(StartPos)
	if err != nil {
		t.Fatalf("Parse(StartPos) failed: %v", err)
	}
	if got := Format(pos); got != StartPos {
		t.Errorf("Format(Parse(StartPos)) = %q, want %q", got, StartPos)
	}
	if err := pos.Validate(); err != nil {
		t.Errorf("parsed starting position is invalid: %v", err)
	}
}

func TestParsePiecePlacement(t *testing.T) {
	pos := MustParse(StartPos)
	if k, c, ok := pos.PieceAt(int(coord.Index(4, 0))); !ok || k != coord.King || c != coord.White {
		t.Error("e1 should hold the white king")
	}
	if k, c, ok := pos.PieceAt(int(coord.Index(3, 7))); !ok || k != coord.Queen || c != coord.Black {
		t.Error("d8 should hold the black queen")
	}
	if _, _, ok := pos.PieceAt(int(coord.Index(4, 3))); ok {
		t.Error("e4 should be empty in the starting position")
	}
}

func TestParseCastlingSubset(t *testing.T) {
	pos := MustParse("r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1")
	rights := pos.CastlingRights()
	if rights&position.WhiteKingside == 0 {
		t.Error("expected White kingside rights")
	}
	if rights&position.WhiteQueenside != 0 {
		t.Error("did not expect White queenside rights")
	}
	if rights&position.BlackKingside != 0 {
		t.Error("did not expect Black kingside rights")
	}
	if rights&position.BlackQueenside == 0 {
		t.Error("expected Black queenside rights")
	}
}

func TestParseEnPassantSquare(t *testing.T) {
	pos := MustParse("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if got := pos.EnPassantSquare(); got != coord.Index(3, 5) {
		t.Errorf("en-passant square = %v, want d6", got)
	}
}

func TestParseNoEnPassant(t *testing.T) {
	pos := MustParse(StartPos)
	if pos.EnPassantSquare() != coord.NoSquare {
		t.Error("starting position should have no en-passant target")
	}
}

func TestParseHalfmoveAndFullmove(t *testing.T) {
	pos := MustParse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 7 23")
	if pos.HalfmoveClock() != 7 {
		t.Errorf("halfmove clock = %d, want 7", pos.HalfmoveClock())
	}
	if pos.FullmoveNumber() != 23 {
		t.Errorf("fullmove number = %d, want 23", pos.FullmoveNumber())
	}
}

func TestParseMissingFieldsDefaultFullmoveToOne(t *testing.T) {
	pos := MustParse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	if pos.FullmoveNumber() != 1 {
		t.Errorf("fullmove number = %d, want 1 when omitted", pos.FullmoveNumber())
	}
}

func TestParseRejectsBadBoardField(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1")
	if err == nil {
		t.Fatal("expected an error for a rank with too few files")
	}
}

func TestParseRejectsBadSideToMove(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	if err == nil {
		t.Fatal("expected an error for an invalid side-to-move field")
	}
}

func TestFormatRoundTripsKiwipete(t *testing.T) {
	kiwipete := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos := MustParse(kiwipete)
	if got := Format(pos); got != kiwipete {
		t.Errorf("Format(Parse(kiwipete)) = %q, want %q", got, kiwipete)
	}
}
