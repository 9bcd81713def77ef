package position

import (
	"math/rand"

	"github.com/brackenfield/chessmg/coord"
)

var (
	zobristPiece [2][6][64]uint64
	zobristCastle [16]uint64
	zobristEP     [8]uint64
	zobristSide   uint64
)

// Seeded deterministically, matching the teacher convention of a fixed
// PRNG seed so Zobrist keys are reproducible across runs and processes.
func init() {
	rng := rand.New(rand.NewSource(0xC0DE))
	for c := 0; c < 2; c++ {
		for k := 0; k < 6; k++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][k][sq] = rng.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rng.Uint64()
	}
	for i := range zobristEP {
		zobristEP[i] = rng.Uint64()
	}
	zobristSide = rng.Uint64()
}

func (p *Position) computeZobrist() uint64 {
	var key uint64
	for sq := 0; sq < 64; sq++ {
		k, c, ok := p.PieceAt(sq)
		if !ok {
			continue
		}
		key ^= zobristPiece[c][k-1][sq]
	}
	key ^= zobristCastle[p.castling]
	if p.epSquare != coord.NoSquare {
		key ^= zobristEP[coord.File(p.epSquare)]
	}
	if p.sideToMove == coord.Black {
		key ^= zobristSide
	}
	return key
}
