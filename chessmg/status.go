package chessmg

// IsCheck reports whether the side to move has its king attacked.
func (p *Position) IsCheck() bool { return p.CanCaptureKing(p.turn.Opposite()) }

// HasLegalMoves reports whether the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	var buf []Move
	for i, pc := range p.tiles {
		if pc.IsNone() || pc.Color != p.turn {
			continue
		}
		buf = p.generate(SquareFromIndex(i), false, buf[:0])
		if len(p.filterLegal(buf, nil)) > 0 {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool { return p.IsCheck() && !p.HasLegalMoves() }

// IsStalemate reports whether the side to move is stalemated.
func (p *Position) IsStalemate() bool { return !p.IsCheck() && !p.HasLegalMoves() }

// IsDrawBy50 reports a 50-move rule draw (halfmoveClock counts half-moves).
func (p *Position) IsDrawBy50() bool { return p.halfmoveClock >= 100 }

// Outcome classifies the position for the side to move.
type Outcome uint8

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
)

func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// Outcome computes check and legal-move existence once and classifies the position.
func (p *Position) Outcome() Outcome {
	if p.HasLegalMoves() {
		return Ongoing
	}
	if p.IsCheck() {
		return Checkmate
	}
	return Stalemate
}
