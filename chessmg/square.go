package chessmg

import "fmt"

// Square is a board coordinate. Rank 0 is the top row as printed in FEN
// (the eighth rank), so a8 is {0, 0} and h1 is {7, 7}. Tiles are indexed
// rank*8 + file.
type Square struct {
	File int
	Rank int
}

// NoSquare marks an absent square, e.g. no en passant pawn.
var NoSquare = Square{File: -1, Rank: -1}

// Sq builds a square from file and rank.
func Sq(file, rank int) Square { return Square{File: file, Rank: rank} }

// SquareFromIndex converts a tile index (0-63) to a square.
func SquareFromIndex(i int) Square { return Square{File: i % 8, Rank: i / 8} }

// OnBoard reports whether both coordinates are within 0-7.
func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File <= 7 && s.Rank >= 0 && s.Rank <= 7
}

// Index returns the tile index. It panics for coordinates off the board.
func (s Square) Index() int {
	if !s.OnBoard() {
		panic(fmt.Sprintf("chessmg: square out of range: file=%d rank=%d", s.File, s.Rank))
	}
	return s.Rank*8 + s.File
}

// Offset returns the square shifted by df files and dr ranks; the result may be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns algebraic coordinates such as "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File), '8' - byte(s.Rank)})
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return Square{File: int(file - 'a'), Rank: int('8' - rank)}, nil
}

// MustSquare is like ParseSquare but panics on bad input. Meant for tests and constants.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}
