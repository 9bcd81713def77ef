package coord

import "testing"

func TestFileRankIndex(t *testing.T) {
	cases := []struct {
		sq        Square
		file, rank int
	}{
		{0, 0, 0},
		{7, 7, 0},
		{56, 0, 7},
		{63, 7, 7},
		{28, 4, 3},
	}
	for _, c := range cases {
		if got := File(c.sq); got != c.file {
			t.Errorf("File(%d) = %d, want %d", c.sq, got, c.file)
		}
		if got := Rank(c.sq); got != c.rank {
			t.Errorf("Rank(%d) = %d, want %d", c.sq, got, c.rank)
		}
		if got := Index(c.file, c.rank); got != c.sq {
			t.Errorf("Index(%d,%d) = %d, want %d", c.file, c.rank, got, c.sq)
		}
	}
}

func TestOpponent(t *testing.T) {
	if White.Opponent() != Black {
		t.Error("White.Opponent() should be Black")
	}
	if Black.Opponent() != White {
		t.Error("Black.Opponent() should be White")
	}
}

func TestReverseForColor(t *testing.T) {
	if got := ReverseForColor(12, White); got != 12 {
		t.Errorf("White square should be unchanged, got %d", got)
	}
	// e2 (sq 12) mirrors to e7 (sq 52) for Black.
	if got := ReverseForColor(12, Black); got != 52 {
		t.Errorf("ReverseForColor(12, Black) = %d, want 52", got)
	}
}
