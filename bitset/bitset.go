// Package bitset implements BitSet64, a 64-bit square set with the
// elementary set algebra and bit-iteration the rest of the engine is built
// on.
package bitset

import "math/bits"

// Set is a 64-bit value treated as a subset of the 64 board squares: bit i
// set means square i is a member.
type Set uint64

// Empty and All are the bottom and top of the lattice.
const (
	Empty Set = 0
	All   Set = 0xFFFFFFFFFFFFFFFF
)

// Single returns the set containing only sq.
func Single(sq int) Set { return Set(1) << uint(sq) }

// Union returns a ∪ b.
func (a Set) Union(b Set) Set { return a | b }

// Intersect returns a ∩ b.
func (a Set) Intersect(b Set) Set { return a & b }

// Complement returns ¬a.
func (a Set) Complement() Set { return ^a }

// Difference returns a ∩ ¬b.
func (a Set) Difference(b Set) Set { return a &^ b }

// Set returns a with sq added.
func (a Set) Set(sq int) Set { return a | Single(sq) }

// Clear returns a with sq removed.
func (a Set) Clear(sq int) Set { return a &^ Single(sq) }

// Contains reports whether sq is a member of a.
func (a Set) Contains(sq int) bool { return a&Single(sq) != 0 }

// IsEmpty reports whether a has no members.
func (a Set) IsEmpty() bool { return a == Empty }

// Popcount returns the number of members of a.
func (a Set) Popcount() int { return bits.OnesCount64(uint64(a)) }

// FirstSet returns the lowest-index member of a. It panics if a is empty;
// callers must check IsEmpty first.
func (a Set) FirstSet() int {
	if a == Empty {
		panic("bitset: FirstSet of empty set")
	}
	return bits.TrailingZeros64(uint64(a))
}

// PopFirst returns the lowest-index member of a together with the set that
// remains once that member is removed. It panics on an empty set, for the
// same reason FirstSet does.
func (a Set) PopFirst() (sq int, rest Set) {
	sq = a.FirstSet()
	rest = a &^ Single(sq)
	return sq, rest
}

// Each calls fn once for every member of a, in ascending index order.
func (a Set) Each(fn func(sq int)) {
	for s := a; s != Empty; {
		var sq int
		sq, s = s.PopFirst()
		fn(sq)
	}
}

// Squares materializes a's members, in ascending index order, as a slice.
// Prefer Each in hot paths; this exists for tests and diagnostics.
func (a Set) Squares() []int {
	out := make([]int, 0, a.Popcount())
	a.Each(func(sq int) { out = append(out, sq) })
	return out
}

// WholeFile returns the set of all squares on file f (0=a .. 7=h).
func WholeFile(f int) Set {
	const fileA Set = 0x0101010101010101
	return fileA << uint(f)
}

// WholeRank returns the set of all squares on rank r (0-indexed).
func WholeRank(r int) Set {
	const rank1 Set = 0xFF
	return rank1 << uint(8*r)
}

// RightOf returns every square strictly to the right (higher file) of file f.
func RightOf(f int) Set {
	var s Set
	for ff := f + 1; ff < 8; ff++ {
		s |= WholeFile(ff)
	}
	return s
}

// LeftOf returns every square strictly to the left (lower file) of file f.
func LeftOf(f int) Set {
	var s Set
	for ff := f - 1; ff >= 0; ff-- {
		s |= WholeFile(ff)
	}
	return s
}

// Above returns every square strictly above rank r.
func Above(r int) Set {
	var s Set
	for rr := r + 1; rr < 8; rr++ {
		s |= WholeRank(rr)
	}
	return s
}

// Below returns every square strictly below rank r.
func Below(r int) Set {
	var s Set
	for rr := r - 1; rr >= 0; rr-- {
		s |= WholeRank(rr)
	}
	return s
}

// Edges returns the outer ring of the board: rank 0, rank 7, file a, file h.
func Edges() Set {
	return WholeRank(0) | WholeRank(7) | WholeFile(0) | WholeFile(7)
}
