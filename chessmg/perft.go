package chessmg

// Perft counts leaf nodes (move sequences) from the position for a given depth.
// The position itself is not modified.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.AllLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := *p
		if err := child.ApplyMove(m); err != nil {
			continue
		}
		nodes += Perft(&child, depth-1)
	}
	return nodes
}

// PerftDivide returns a map from each legal root move to the number of leaf nodes
// reachable from that move at the given depth. Useful for debugging.
func PerftDivide(p *Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range p.AllLegalMoves() {
		child := *p
		if err := child.ApplyMove(m); err != nil {
			continue
		}
		result[m] = Perft(&child, depth-1)
	}
	return result
}

// DivideByText keys a divide result by coordinate notation.
func DivideByText(div map[Move]uint64) map[string]uint64 {
	out := make(map[string]uint64, len(div))
	for m, n := range div {
		out[m.String()] += n
	}
	return out
}
