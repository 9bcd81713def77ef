package position

// IsDrawByFiftyMoveRule reports whether the position is drawn by the
// halfmove clock. This preserves the source's >=50 threshold rather than
// the standard >=100 (50 full moves) — see DESIGN.md's Open Questions.
func (p *Position) IsDrawByFiftyMoveRule() bool {
	return p.halfmove >= 50
}

// IsDrawByRepetition reports whether the current position has occurred
// three times in the game so far (the standard threefold rule). History
// is seeded with the starting position's key by Finalize and extended by
// every Apply since, so it already accounts for the current occurrence.
func (p *Position) IsDrawByRepetition() bool {
	count := 0
	for _, key := range p.history {
		if key == p.zobrist {
			count++
		}
	}
	return count >= 3
}
