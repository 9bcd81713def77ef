package position

import (
	"fmt"

	"github.com/brackenfield/chessmg/coord"
)

var allKinds = [6]coord.Kind{coord.Pawn, coord.Knight, coord.Bishop, coord.Rook, coord.Queen, coord.King}

// Validate cross-checks the bitboards against the mailbox and the Zobrist
// key, returning the first inconsistency found. It exists for tests and
// debugging, not for the hot path.
func (p *Position) Validate() error {
	var wantOcc [2]uint64
	for c := coord.White; c <= coord.Black; c++ {
		for _, k := range coord.NonKing {
			wantOcc[c] |= uint64(p.Bitboard(c, k))
		}
		wantOcc[c] |= uint64(p.Bitboard(c, coord.King))
	}
	for c := coord.White; c <= coord.Black; c++ {
		if uint64(p.occupancy[c]) != wantOcc[c] {
			return fmt.Errorf("position: occupancy[%v] disagrees with per-kind bitboards", c)
		}
		var sum int
		for _, k := range coord.NonKing {
			sum += p.Bitboard(c, k).Popcount()
		}
		sum += p.Bitboard(c, coord.King).Popcount()
		if sum != p.occupancy[c].Popcount() {
			return fmt.Errorf("position: %v's per-kind bitboards overlap", c)
		}
		if n := p.Bitboard(c, coord.King).Popcount(); n != 1 {
			return fmt.Errorf("position: %v has %d kings, want exactly 1", c, n)
		}
	}
	for sq := 0; sq < 64; sq++ {
		k, c, ok := p.PieceAt(sq)
		var owners int
		var ownedByMailboxEntry bool
		for cc := coord.White; cc <= coord.Black; cc++ {
			for _, kk := range allKinds {
				if !p.Bitboard(cc, kk).Contains(sq) {
					continue
				}
				owners++
				if ok && cc == c && kk == k {
					ownedByMailboxEntry = true
				}
			}
		}
		if ok != (owners > 0) || (ok && !ownedByMailboxEntry) {
			return fmt.Errorf("position: mailbox says %v at %s but bitboard disagrees", k, SquareName(sq))
		}
		if owners > 1 {
			return fmt.Errorf("position: %s is claimed by %d piece boards, want at most 1", SquareName(sq), owners)
		}
	}
	if p.computeZobrist() != p.zobrist {
		return fmt.Errorf("position: zobrist key out of sync")
	}
	return nil
}
