package chessmg

import (
	"fmt"
	"unicode"
)

// Color is the side owning a piece or the side to move.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is the colorless kind of a piece. The zero value marks an empty tile.
type PieceType uint8

const (
	PieceTypeNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// promotionTypes lists the kinds a pawn may promote to, in generation order.
var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Piece is an immutable (type, color) pair. The zero value is no piece.
type Piece struct {
	Type  PieceType
	Color Color
}

// NoPiece is the empty tile value.
var NoPiece = Piece{}

// IsNone reports whether p is the empty tile value.
func (p Piece) IsNone() bool { return p.Type == PieceTypeNone }

// Char returns the FEN letter of the piece, uppercase for White.
func (p Piece) Char() rune {
	var ch rune
	switch p.Type {
	case Pawn:
		ch = 'p'
	case Knight:
		ch = 'n'
	case Bishop:
		ch = 'b'
	case Rook:
		ch = 'r'
	case Queen:
		ch = 'q'
	case King:
		ch = 'k'
	default:
		return '-'
	}
	if p.Color == White {
		return unicode.ToUpper(ch)
	}
	return ch
}

func (p Piece) String() string { return string(p.Char()) }

// PieceFromChar converts a FEN piece letter to a Piece.
func PieceFromChar(ch rune) (Piece, error) {
	var pt PieceType
	switch unicode.ToLower(ch) {
	case 'p':
		pt = Pawn
	case 'n':
		pt = Knight
	case 'b':
		pt = Bishop
	case 'r':
		pt = Rook
	case 'q':
		pt = Queen
	case 'k':
		pt = King
	default:
		return NoPiece, fmt.Errorf("%w: %q", ErrUnknownPiece, ch)
	}
	color := Black
	if unicode.IsUpper(ch) {
		color = White
	}
	return Piece{Type: pt, Color: color}, nil
}
