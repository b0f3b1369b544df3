package chessmg

import "fmt"

// ApplyMove plays m in place. It trusts m to be pseudo-legal and only fails
// with ErrInvalidMove when the board lacks a piece the move relocates; in that
// case the position may be partially updated and should be discarded.
func (p *Position) ApplyMove(m Move) error {
	p.enPassant = NoSquare

	var (
		moved    Piece
		captured bool
		err      error
	)
	switch mv := m.(type) {
	case Quiet:
		moved, err = p.relocate(mv.From, mv.To, PieceTypeNone)
		if err == nil && moved.Type == Pawn && abs(mv.To.Rank-mv.From.Rank) == 2 {
			p.enPassant = mv.To
		}
	case Capture:
		p.capture(mv.Captured)
		captured = true
		moved, err = p.relocate(mv.From, mv.To, PieceTypeNone)
	case QuietPromotion:
		moved, err = p.relocate(mv.From, mv.To, mv.Promotion)
	case CapturePromotion:
		p.capture(mv.Captured)
		captured = true
		moved, err = p.relocate(mv.From, mv.To, mv.Promotion)
	case Castle:
		moved, err = p.castle(mv)
	default:
		err = fmt.Errorf("%w: unsupported move type %T", ErrInvalidMove, m)
	}
	if err != nil {
		return err
	}

	if moved.Type == Pawn || captured {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if p.turn == Black {
		p.fullmoveNumber++
	}
	p.turn = p.turn.Opposite()
	return nil
}

// relocate moves the piece on from to to, optionally changing its kind, and
// revokes castling rights the departure invalidates.
func (p *Position) relocate(from, to Square, promotion PieceType) (Piece, error) {
	pc, ok := p.Tile(from)
	if !ok {
		return NoPiece, fmt.Errorf("%w: no piece on %s", ErrInvalidMove, from)
	}
	if pc.Type == King {
		p.revokeColor(pc.Color)
	}
	p.revokeCorner(from)

	placed := pc
	if promotion != PieceTypeNone {
		placed.Type = promotion
	}
	p.ClearTile(from)
	p.SetTile(to, placed)
	return pc, nil
}

// capture removes whatever stands on sq. A rook taken on its home corner
// takes its castling right with it.
func (p *Position) capture(sq Square) {
	p.ClearTile(sq)
	p.revokeCorner(sq)
}

func (p *Position) castle(mv Castle) (Piece, error) {
	king, ok := p.Tile(mv.From)
	if !ok || king.Type != King {
		return NoPiece, fmt.Errorf("%w: no king on %s", ErrInvalidMove, mv.From)
	}
	rook, ok := p.Tile(mv.RookFrom)
	if !ok || rook.Type != Rook {
		return NoPiece, fmt.Errorf("%w: no rook on %s", ErrInvalidMove, mv.RookFrom)
	}
	p.revokeColor(king.Color)

	p.ClearTile(mv.From)
	p.ClearTile(mv.RookFrom)
	p.SetTile(mv.To, king)
	p.SetTile(mv.RookTo, rook)
	return king, nil
}

func (p *Position) revokeColor(c Color) {
	if c == White {
		p.castling &^= CastlingWhiteK | CastlingWhiteQ
	} else {
		p.castling &^= CastlingBlackK | CastlingBlackQ
	}
}

// revokeCorner clears the right tied to a rook home corner.
func (p *Position) revokeCorner(sq Square) {
	switch sq {
	case Sq(0, 7):
		p.castling &^= CastlingWhiteQ
	case Sq(7, 7):
		p.castling &^= CastlingWhiteK
	case Sq(0, 0):
		p.castling &^= CastlingBlackQ
	case Sq(7, 0):
		p.castling &^= CastlingBlackK
	}
}

// IsDoublePawnPush reports whether m is a quiet pawn move spanning two ranks
// in this position.
func (p *Position) IsDoublePawnPush(m Move) bool {
	q, ok := m.(Quiet)
	if !ok || !q.From.OnBoard() {
		return false
	}
	pc, occupied := p.Tile(q.From)
	return occupied && pc.Type == Pawn && abs(q.To.Rank-q.From.Rank) == 2
}

// LegalMoves returns the legal moves of the piece on sq. It returns nil if
// the tile is empty, holds a piece of the side not to move, or the piece has
// no legal move.
func (p *Position) LegalMoves(sq Square) []Move {
	pc, ok := p.Tile(sq)
	if !ok || pc.Color != p.turn {
		return nil
	}
	return p.filterLegal(p.generate(sq, false, nil), nil)
}

// AllLegalMoves returns every legal move for the side to move, or nil when
// there is none (checkmate or stalemate, told apart by IsCheck).
func (p *Position) AllLegalMoves() []Move {
	var moves []Move
	var buf []Move
	for i, pc := range p.tiles {
		if pc.IsNone() || pc.Color != p.turn {
			continue
		}
		buf = p.generate(SquareFromIndex(i), false, buf[:0])
		moves = p.filterLegal(buf, moves)
	}
	return moves
}

// filterLegal appends to dst the candidates that do not leave the mover's
// king capturable.
func (p *Position) filterLegal(candidates, dst []Move) []Move {
	for _, m := range candidates {
		trial := *p
		if err := trial.ApplyMove(m); err != nil {
			continue
		}
		if !trial.CanCaptureKing(trial.turn) {
			dst = append(dst, m)
		}
	}
	return dst
}

// MoveFromText resolves coordinate notation against the legal moves.
func (p *Position) MoveFromText(s string) (Move, error) {
	mt, err := ParseMoveText(s)
	if err != nil {
		return nil, err
	}
	for _, m := range p.LegalMoves(mt.From) {
		if mt.Matches(m) {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %s in %s", ErrIllegalMove, s, p.FEN())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
