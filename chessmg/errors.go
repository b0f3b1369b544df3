package chessmg

import "errors"

// FEN parsing failures. Each one is wrapped with the offending input, so
// callers should compare with errors.Is.
var (
	ErrWrongSlashCount  = errors.New("invalid FEN: placement must have exactly 8 ranks")
	ErrWrongTileCount   = errors.New("invalid FEN: placement must describe exactly 64 tiles")
	ErrUnknownCharacter = errors.New("invalid FEN: unknown character")
	ErrWrongFieldCount  = errors.New("invalid FEN: wrong number of fields")
	ErrUnknownTurn      = errors.New("invalid FEN: side to move must be 'w' or 'b'")
	ErrRepeatedCastling = errors.New("invalid FEN: repeated castling character")
	ErrCastlingLength   = errors.New("invalid FEN: castling field too long")
	ErrInvalidEnPassant = errors.New("invalid FEN: invalid en passant square")
	ErrInvalidHalfmove  = errors.New("invalid FEN: halfmove clock is not a non-negative number")
	ErrInvalidFullmove  = errors.New("invalid FEN: fullmove number is not a positive number")
)

var (
	// ErrInvalidMove is returned by ApplyMove when the board does not hold
	// the pieces the move claims to relocate.
	ErrInvalidMove = errors.New("move does not match the position")

	// ErrInvalidMoveText reports coordinate move text that cannot be parsed.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrIllegalMove reports well-formed move text with no matching legal move.
	ErrIllegalMove = errors.New("illegal move")

	ErrUnknownPiece  = errors.New("unknown piece character")
	ErrInvalidSquare = errors.New("invalid square")
)
