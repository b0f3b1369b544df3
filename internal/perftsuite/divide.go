package perftsuite

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Diff is one root move whose subtree count differs between two divides.
// A move missing from one side shows up with a zero count there.
type Diff struct {
	Move      string
	Got, Want uint64
}

// SortedMoves returns the moves of a divide in lexical order.
func SortedMoves(div map[string]uint64) []string {
	moves := maps.Keys(div)
	slices.Sort(moves)
	return moves
}

// Total sums a divide.
func Total(div map[string]uint64) uint64 {
	var n uint64
	for _, v := range div {
		n += v
	}
	return n
}

// DiffDivide compares two divides and returns the differing moves in order.
func DiffDivide(got, want map[string]uint64) []Diff {
	moves := append(maps.Keys(got), maps.Keys(want)...)
	slices.Sort(moves)
	moves = slices.Compact(moves)

	var diffs []Diff
	for _, m := range moves {
		g, w := got[m], want[m]
		_, inGot := got[m]
		_, inWant := want[m]
		if g != w || inGot != inWant {
			diffs = append(diffs, Diff{Move: m, Got: g, Want: w})
		}
	}
	return diffs
}
