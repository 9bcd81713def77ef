// Package attacks builds the process-wide, immutable attack tables: leaper
// tables for pawns, knights and kings, and magic-multiplier perfect-hash
// tables for bishop and rook rays. Everything here is computed once, in
// init, and never mutated afterward — concurrent readers need no
// synchronization.
package attacks

import (
	"math/bits"

	"github.com/brackenfield/chessmg/bitset"
	"github.com/brackenfield/chessmg/coord"
)

// HashEntry describes the perfect-hash lookup for one slider on one square:
// index := ((occupancy & Mask) * Magic) >> Shift, then Offset+index indexes
// into the shared SlidingMoves table.
type HashEntry struct {
	Mask   bitset.Set
	Magic  uint64
	Shift  uint
	Offset int
}

// Lookup returns the slider's reachable squares given the full-board
// occupancy, per the contract in spec §4.3: occupancy is first masked down
// to the relevant blockers, hashed, and used to index the shared table.
func (h HashEntry) Lookup(occupancy bitset.Set) bitset.Set {
	idx := ((uint64(occupancy) & uint64(h.Mask)) * h.Magic) >> h.Shift
	return SlidingMoves[h.Offset+int(idx)]
}

var (
	// PawnAttacks[color][sq] is the set of squares a pawn of that color
	// attacks (diagonally forward) from sq. It never includes the forward
	// push square.
	PawnAttacks [2][64]bitset.Set

	// KnightMoves[sq] and KingMoves[sq] are the leaper tables.
	KnightMoves [64]bitset.Set
	KingMoves   [64]bitset.Set

	// BishopHash and RookHash are the per-square perfect-hash descriptors.
	BishopHash [64]HashEntry
	RookHash   [64]HashEntry

	// SlidingMoves is the single flat table both hash tables index into.
	SlidingMoves []bitset.Set

	// RookRays[sq][d] / BishopRays[sq][d] are the full (edge-inclusive) rays
	// from sq in each of the four directions, used both to build blocker
	// masks and, at runtime, by the checker/pin scan in package movegen.
	// Rook directions: 0=N 1=S 2=E 3=W. Bishop directions: 0=NE 1=NW 2=SE 3=SW.
	RookRays   [64][4]bitset.Set
	BishopRays [64][4]bitset.Set
)

func init() {
	initLeaperTables()
	initRays()
	initMagicTables()
}

func initLeaperTables() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := 0; sq < 64; sq++ {
		f, r := coord.File(coord.Square(sq)), coord.Rank(coord.Square(sq))
		for _, off := range knightOffsets {
			ff, rf := f+off[1], r+off[0]
			if coord.InRangeFile(ff) && coord.InRangeRank(rf) {
				KnightMoves[sq] = KnightMoves[sq].Set(int(coord.Index(ff, rf)))
			}
		}
		for _, off := range kingOffsets {
			ff, rf := f+off[1], r+off[0]
			if coord.InRangeFile(ff) && coord.InRangeRank(rf) {
				KingMoves[sq] = KingMoves[sq].Set(int(coord.Index(ff, rf)))
			}
		}
		// Pawn attacks: one diagonal step forward only, never the push.
		if r < 7 {
			if f > 0 {
				PawnAttacks[coord.White][sq] = PawnAttacks[coord.White][sq].Set(int(coord.Index(f-1, r+1)))
			}
			if f < 7 {
				PawnAttacks[coord.White][sq] = PawnAttacks[coord.White][sq].Set(int(coord.Index(f+1, r+1)))
			}
		}
		if r > 0 {
			if f > 0 {
				PawnAttacks[coord.Black][sq] = PawnAttacks[coord.Black][sq].Set(int(coord.Index(f-1, r-1)))
			}
			if f < 7 {
				PawnAttacks[coord.Black][sq] = PawnAttacks[coord.Black][sq].Set(int(coord.Index(f+1, r-1)))
			}
		}
	}
}

func initRays() {
	for sq := 0; sq < 64; sq++ {
		f, r := coord.File(coord.Square(sq)), coord.Rank(coord.Square(sq))

		var ray bitset.Set
		for rr := r + 1; rr < 8; rr++ {
			ray = ray.Set(int(coord.Index(f, rr)))
		}
		RookRays[sq][0] = ray

		ray = 0
		for rr := r - 1; rr >= 0; rr-- {
			ray = ray.Set(int(coord.Index(f, rr)))
		}
		RookRays[sq][1] = ray

		ray = 0
		for ff := f + 1; ff < 8; ff++ {
			ray = ray.Set(int(coord.Index(ff, r)))
		}
		RookRays[sq][2] = ray

		ray = 0
		for ff := f - 1; ff >= 0; ff-- {
			ray = ray.Set(int(coord.Index(ff, r)))
		}
		RookRays[sq][3] = ray

		ray = 0
		for ff, rr := f+1, r+1; ff < 8 && rr < 8; ff, rr = ff+1, rr+1 {
			ray = ray.Set(int(coord.Index(ff, rr)))
		}
		BishopRays[sq][0] = ray

		ray = 0
		for ff, rr := f-1, r+1; ff >= 0 && rr < 8; ff, rr = ff-1, rr+1 {
			ray = ray.Set(int(coord.Index(ff, rr)))
		}
		BishopRays[sq][1] = ray

		ray = 0
		for ff, rr := f+1, r-1; ff < 8 && rr >= 0; ff, rr = ff+1, rr-1 {
			ray = ray.Set(int(coord.Index(ff, rr)))
		}
		BishopRays[sq][2] = ray

		ray = 0
		for ff, rr := f-1, r-1; ff >= 0 && rr >= 0; ff, rr = ff-1, rr-1 {
			ray = ray.Set(int(coord.Index(ff, rr)))
		}
		BishopRays[sq][3] = ray
	}
}

// blockerMask returns the squares along sq's rays that can affect
// reachability: each ray with its own farthest square dropped (§4.3 step
// 1 — whatever sits on the square at the board's edge never changes
// reachability, since a slider always reaches that square regardless of
// what's on it; only the squares strictly between the origin and the edge
// are "relevant occupancy").
func blockerMask(rays [4]bitset.Set, ascending [4]bool) bitset.Set {
	var mask bitset.Set
	for d := 0; d < 4; d++ {
		ray := rays[d]
		if ray == bitset.Empty {
			continue
		}
		var farthest int
		if ascending[d] {
			farthest = 63 - bits.LeadingZeros64(uint64(ray))
		} else {
			farthest = bits.TrailingZeros64(uint64(ray))
		}
		mask |= ray.Clear(farthest)
	}
	return mask
}

// rookAscending and bishopAscending say, for each of the four ray
// directions in RookRays/BishopRays, whether the ray grows toward higher
// square indices (true) or lower ones (false).
var rookAscending = [4]bool{true, false, true, false}     // N, S, E, W
var bishopAscending = [4]bool{true, true, false, false}   // NE, NW, SE, SW

// rayAttacks ray-traces the true reachable set for one square given an
// occupancy, stopping at and including the first blocker on each ray.
func rayAttacks(rays [4]bitset.Set, ascending [4]bool, occupancy bitset.Set) bitset.Set {
	var out bitset.Set
	// A ray growing toward higher indices has its first blocker at the
	// lowest set bit; a ray growing toward lower indices has it at the
	// highest set bit.
	for d := 0; d < 4; d++ {
		ray := rays[d]
		blockers := ray & occupancy
		if blockers == 0 {
			out |= ray
			continue
		}
		var first int
		if ascending[d] {
			first = bits.TrailingZeros64(uint64(blockers))
		} else {
			first = 63 - bits.LeadingZeros64(uint64(blockers))
		}
		out |= ray &^ rayBeyond(rays, d, first)
	}
	return out
}

// rayBeyond is the portion of the ray in direction d that lies strictly
// beyond square `first` — i.e. the ray as seen from `first` itself.
func rayBeyond(rays [4]bitset.Set, d int, first int) bitset.Set {
	return raysOf(first)[d]
}

// raysOf looks up the precomputed ray table for either piece, chosen by
// whichever table initMagicTables is currently building; both bishop and
// rook construction call rayAttacks with their own ray table, so this is
// filled in lazily by a package-level pointer swapped per call. Kept
// simple and single-threaded: init() never runs concurrently with itself.
var raysOf func(sq int) [4]bitset.Set

func initMagicTables() {
	// Rooks first, then bishops, sharing one flat backing array as spec
	// §4.3 describes ("a flat table ... sliding_moves[N]").
	SlidingMoves = make([]bitset.Set, 0, 107_648/8)

	raysOf = func(sq int) [4]bitset.Set { return RookRays[sq] }
	for sq := 0; sq < 64; sq++ {
		RookHash[sq] = buildHashEntry(RookRays[sq], rookAscending, rookMagic[sq])
	}

	raysOf = func(sq int) [4]bitset.Set { return BishopRays[sq] }
	for sq := 0; sq < 64; sq++ {
		BishopHash[sq] = buildHashEntry(BishopRays[sq], bishopAscending, bishopMagic[sq])
	}
	raysOf = nil
}

// buildHashEntry enumerates every subset of the blocker mask for sq, ray
// traces the true reachable set for each, and appends the results to the
// shared SlidingMoves table at the slot the magic multiplier sends that
// subset to.
func buildHashEntry(rays [4]bitset.Set, ascending [4]bool, magic uint64) HashEntry {
	mask := blockerMask(rays, ascending)
	bitsInMask := mask.Popcount()
	size := 1 << bitsInMask
	shift := uint(64 - bitsInMask)

	offset := len(SlidingMoves)
	SlidingMoves = append(SlidingMoves, make([]bitset.Set, size)...)

	for idx := 0; idx < size; idx++ {
		occ := pdep(uint64(idx), uint64(mask))
		reach := rayAttacks(rays, ascending, bitset.Set(occ))
		slot := (uint64(occ) * magic) >> shift
		SlidingMoves[offset+int(slot)] = reach
	}

	return HashEntry{Mask: mask, Magic: magic, Shift: shift, Offset: offset}
}

// pdep deposits the low bits of x into the positions where mask has a 1
// bit, in ascending order — the textbook software fallback for the PDEP
// instruction, used here only at init time to enumerate blocker subsets.
func pdep(x, mask uint64) uint64 {
	var res uint64
	for bit := uint(0); mask != 0; bit++ {
		lsb := mask & -mask
		if x&(1<<bit) != 0 {
			res |= lsb
		}
		mask &= mask - 1
	}
	return res
}

// BishopAttacks and RookAttacks are convenience wrappers over the hash
// tables, taking a plain occupancy set.
func BishopAttacks(sq int, occupancy bitset.Set) bitset.Set { return BishopHash[sq].Lookup(occupancy) }
func RookAttacks(sq int, occupancy bitset.Set) bitset.Set   { return RookHash[sq].Lookup(occupancy) }

// QueenAttacks is the union of bishop and rook reachability from sq.
func QueenAttacks(sq int, occupancy bitset.Set) bitset.Set {
	return BishopAttacks(sq, occupancy) | RookAttacks(sq, occupancy)
}
