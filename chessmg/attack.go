package chessmg

// Attacks reports whether some piece of color by could capture on sq with a
// single pseudo-legal move. Castles are never considered.
func (p *Position) Attacks(sq Square, by Color) bool {
	probe := *p
	if occ, ok := probe.Tile(sq); ok {
		if occ.Color == by {
			return false
		}
	} else {
		// A dummy enemy pawn gives pawns and sliders something to capture.
		probe.SetTile(sq, Piece{Type: Pawn, Color: by.Opposite()})
	}

	var buf [32]Move
	for i, pc := range probe.tiles {
		if pc.IsNone() || pc.Color != by {
			continue
		}
		for _, m := range probe.generate(SquareFromIndex(i), true, buf[:0]) {
			if capSq, ok := CaptureSquare(m); ok && capSq == sq {
				return true
			}
		}
	}
	return false
}

// CanCaptureKing reports whether color has a pseudo-legal move capturing a
// king. Asked for the side to move right after a trial move, it detects a
// king left en prise by the previous mover.
func (p *Position) CanCaptureKing(color Color) bool {
	var buf [32]Move
	for i, pc := range p.tiles {
		if pc.IsNone() || pc.Color != color {
			continue
		}
		for _, m := range p.generate(SquareFromIndex(i), true, buf[:0]) {
			capSq, ok := CaptureSquare(m)
			if !ok {
				continue
			}
			if victim, _ := p.Tile(capSq); victim.Type == King {
				return true
			}
		}
	}
	return false
}
