package movegen

import "github.com/brackenfield/chessmg/position"

// GivesCheck reports whether playing m (already known legal for pos)
// delivers check, without mutating pos. It is used by exposition-only
// tooling (cmd/perft's -divide annotation); move ordering itself is out
// of scope.
func GivesCheck(pos *position.Position, m position.Move) bool {
	u := pos.Apply(m)
	defer pos.Undo(u)
	return InCheck(pos)
}
