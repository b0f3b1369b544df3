// Package chessmg is a mailbox chess rules engine: legal move generation,
// move application and check, checkmate and stalemate queries.
package chessmg

import "strings"

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// CastlingRights is a bit set of the four castling permissions.
type CastlingRights uint8

const (
	CastlingWhiteK CastlingRights = 1 << iota
	CastlingWhiteQ
	CastlingBlackK
	CastlingBlackQ

	CastlingNone CastlingRights = 0
	CastlingAll                 = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

// Has reports whether every right in r2 is held.
func (r CastlingRights) Has(r2 CastlingRights) bool { return r&r2 == r2 }

// Position is the full game state. It is a plain value: assigning it copies
// the board, which is how speculative moves are tried.
type Position struct {
	tiles [64]Piece

	turn Color

	// enPassant holds the pawn that just advanced two ranks (not the
	// square behind it), or NoSquare.
	enPassant Square

	castling CastlingRights

	halfmoveClock  int
	fullmoveNumber int
}

// NewPosition returns an empty board with the given side to move and no rights.
func NewPosition(turn Color) Position {
	return Position{turn: turn, enPassant: NoSquare, fullmoveNumber: 1}
}

// StartPos returns the standard initial position.
func StartPos() Position {
	p, err := ParseFEN(FENStartPos)
	if err != nil {
		panic(err)
	}
	return *p
}

// Tile returns the piece on sq and whether the tile is occupied. It panics
// if sq is off the board.
func (p *Position) Tile(sq Square) (Piece, bool) {
	pc := p.tiles[sq.Index()]
	return pc, !pc.IsNone()
}

// SetTile places pc on sq, replacing any piece already there. It panics if
// sq is off the board.
func (p *Position) SetTile(sq Square, pc Piece) { p.tiles[sq.Index()] = pc }

// ClearTile empties sq. It panics if sq is off the board.
func (p *Position) ClearTile(sq Square) { p.tiles[sq.Index()] = NoPiece }

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.turn }

// EnPassant returns the pawn that may be captured en passant on this move.
func (p *Position) EnPassant() (Square, bool) {
	return p.enPassant, p.enPassant != NoSquare
}

// CastlingRights returns the rights still held by both sides.
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// HalfmoveClock counts half-moves since the last capture or pawn move.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber starts at 1 and is incremented after Black's move.
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// KingSquare returns the square of color's king.
func (p *Position) KingSquare(color Color) (Square, bool) {
	for i, pc := range p.tiles {
		if pc.Type == King && pc.Color == color {
			return SquareFromIndex(i), true
		}
	}
	return NoSquare, false
}

// String dumps the board one character per tile, '-' for empty, top row first.
func (p *Position) String() string {
	var sb strings.Builder
	for i, pc := range p.tiles {
		if i%8 == 0 && i != 0 {
			sb.WriteByte('\n')
		}
		sb.WriteRune(pc.Char())
	}
	return sb.String()
}
