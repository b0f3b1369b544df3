package chessmg

import (
	"fmt"
	"strings"
)

// Move is one of Quiet, Capture, Castle, QuietPromotion or CapturePromotion.
// Moves are plain values and do not reference the position they came from.
type Move interface {
	// Origin is the square the moving piece leaves (the king for castles).
	Origin() Square
	// Target is the square the moving piece lands on (the king for castles).
	Target() Square
	// String returns coordinate notation, e.g. "e2e4", "e7e8q", "e1g1".
	String() string
	isMove()
}

// Quiet relocates a piece without capturing.
type Quiet struct {
	From, To Square
}

// Capture relocates a piece and removes the piece on Captured. Captured
// equals To except for en passant.
type Capture struct {
	From, To Square
	Captured Square
}

// Castle moves the king and a rook together.
type Castle struct {
	From, To         Square
	RookFrom, RookTo Square
}

// QuietPromotion is a non-capturing pawn move onto the final rank.
type QuietPromotion struct {
	From, To  Square
	Promotion PieceType
}

// CapturePromotion is a capturing pawn move onto the final rank.
type CapturePromotion struct {
	From, To  Square
	Captured  Square
	Promotion PieceType
}

func (m Quiet) Origin() Square { return m.From }
func (m Capture) Origin() Square { return m.From }
func (m Castle) Origin() Square { return m.From }
func (m QuietPromotion) Origin() Square { return m.From }
func (m CapturePromotion) Origin() Square { return m.From }

func (m Quiet) Target() Square { return m.To }
func (m Capture) Target() Square { return m.To }
func (m Castle) Target() Square { return m.To }
func (m QuietPromotion) Target() Square { return m.To }
func (m CapturePromotion) Target() Square { return m.To }

func (m Quiet) String() string { return moveText(m.From, m.To, PieceTypeNone) }
func (m Capture) String() string { return moveText(m.From, m.To, PieceTypeNone) }
func (m Castle) String() string { return moveText(m.From, m.To, PieceTypeNone) }
func (m QuietPromotion) String() string { return moveText(m.From, m.To, m.Promotion) }
func (m CapturePromotion) String() string { return moveText(m.From, m.To, m.Promotion) }

func (Quiet) isMove() {}
func (Capture) isMove() {}
func (Castle) isMove() {}
func (QuietPromotion) isMove() {}
func (CapturePromotion) isMove() {}

func moveText(from, to Square, promo PieceType) string {
	s := from.String() + to.String()
	if promo != PieceTypeNone {
		s += string(Piece{Type: promo, Color: Black}.Char())
	}
	return s
}

// IsCapture reports whether m removes an enemy piece (en passant included).
func IsCapture(m Move) bool {
	switch m.(type) {
	case Capture, CapturePromotion:
		return true
	default:
		return false
	}
}

// IsCastle reports whether m is a castle.
func IsCastle(m Move) bool {
	_, ok := m.(Castle)
	return ok
}

// IsPromotion reports whether m promotes a pawn.
func IsPromotion(m Move) bool {
	switch m.(type) {
	case QuietPromotion, CapturePromotion:
		return true
	default:
		return false
	}
}

// CaptureSquare returns the square of the captured piece, if m captures.
func CaptureSquare(m Move) (Square, bool) {
	switch mv := m.(type) {
	case Capture:
		return mv.Captured, true
	case CapturePromotion:
		return mv.Captured, true
	default:
		return Square{}, false
	}
}

// PromotionType returns the kind a pawn promotes to, if m is a promotion.
func PromotionType(m Move) (PieceType, bool) {
	switch mv := m.(type) {
	case QuietPromotion:
		return mv.Promotion, true
	case CapturePromotion:
		return mv.Promotion, true
	default:
		return PieceTypeNone, false
	}
}

// MoveText is parsed coordinate notation before it is resolved against a position.
type MoveText struct {
	From, To  Square
	Promotion PieceType
}

// ParseMoveText parses coordinate notation such as "e2e4" or "e7e8q".
func ParseMoveText(s string) (MoveText, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) < 4 || len(s) > 5 {
		return MoveText{}, fmt.Errorf("%w: %q has invalid length", ErrInvalidMoveText, s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return MoveText{}, fmt.Errorf("%w: %q: %v", ErrInvalidMoveText, s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return MoveText{}, fmt.Errorf("%w: %q: %v", ErrInvalidMoveText, s, err)
	}
	mt := MoveText{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			mt.Promotion = Queen
		case 'r':
			mt.Promotion = Rook
		case 'b':
			mt.Promotion = Bishop
		case 'n':
			mt.Promotion = Knight
		default:
			return MoveText{}, fmt.Errorf("%w: %q has invalid promotion piece", ErrInvalidMoveText, s)
		}
	}
	return mt, nil
}

// Matches reports whether m has the same squares and promotion kind.
func (mt MoveText) Matches(m Move) bool {
	promo, _ := PromotionType(m)
	return m.Origin() == mt.From && m.Target() == mt.To && promo == mt.Promotion
}
