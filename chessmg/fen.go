package chessmg

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFEN parses a FEN string and returns the position it describes. The
// halfmove clock and fullmove number are optional and default to 0 and 1.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fmt.Errorf("%w: got %d, want 4 to 6", ErrWrongFieldCount, len(fields))
	}

	pos := NewPosition(White)

	// 1. Piece placement
	if err := pos.parsePlacement(fields[0]); err != nil {
		return nil, err
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		pos.turn = White
	case "b":
		pos.turn = Black
	default:
		return nil, fmt.Errorf("%w: got %q", ErrUnknownTurn, fields[1])
	}

	// 3. Castling rights
	rights, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}
	pos.castling = rights

	// 4. En passant target square
	ep, err := pos.parseEnPassant(fields[3])
	if err != nil {
		return nil, err
	}
	pos.enPassant = ep

	// 5. Halfmove clock
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidHalfmove, fields[4])
		}
		pos.halfmoveClock = n
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidFullmove, fields[5])
		}
		pos.fullmoveNumber = n
	}
	return &pos, nil
}

func (p *Position) parsePlacement(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: got %d ranks in %q", ErrWrongSlashCount, len(ranks), field)
	}
	for rank, rankStr := range ranks {
		file := 0
		for _, ch := range rankStr {
			if file >= 8 {
				return fmt.Errorf("%w: rank %q is too long", ErrWrongTileCount, rankStr)
			}
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pc, err := PieceFromChar(ch)
			if err != nil {
				return fmt.Errorf("%w: %q in %q", ErrUnknownCharacter, ch, field)
			}
			p.tiles[rank*8+file] = pc
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %q covers %d files", ErrWrongTileCount, rankStr, file)
		}
	}
	return nil
}

func parseCastling(field string) (CastlingRights, error) {
	if field == "-" {
		return CastlingNone, nil
	}
	if len(field) > 4 {
		return CastlingNone, fmt.Errorf("%w: got %q", ErrCastlingLength, field)
	}
	var rights CastlingRights
	for _, ch := range field {
		var r CastlingRights
		switch ch {
		case 'K':
			r = CastlingWhiteK
		case 'Q':
			r = CastlingWhiteQ
		case 'k':
			r = CastlingBlackK
		case 'q':
			r = CastlingBlackQ
		default:
			return CastlingNone, fmt.Errorf("%w: %q in castling field %q", ErrUnknownCharacter, ch, field)
		}
		if rights&r != 0 {
			return CastlingNone, fmt.Errorf("%w: %q", ErrRepeatedCastling, field)
		}
		rights |= r
	}
	return rights, nil
}

// parseEnPassant converts the FEN target square (the square passed over)
// into the square of the pawn that may be captured, and checks that an
// enemy pawn actually stands there.
func (p *Position) parseEnPassant(field string) (Square, error) {
	if field == "-" {
		return NoSquare, nil
	}
	target, err := ParseSquare(field)
	if err != nil {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidEnPassant, field)
	}
	// The pawn that just moved belongs to the side not to move, one step
	// past the target in its own direction of travel.
	pawnSq := target.Offset(0, pawnDir(p.turn.Opposite()))
	if !pawnSq.OnBoard() {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidEnPassant, field)
	}
	pc, ok := p.Tile(pawnSq)
	if !ok || pc.Type != Pawn || pc.Color == p.turn {
		return NoSquare, fmt.Errorf("%w: no %s pawn on %s", ErrInvalidEnPassant, p.turn.Opposite(), pawnSq)
	}
	return pawnSq, nil
}

// PlacementFEN returns the piece placement field only.
func (p *Position) PlacementFEN() string {
	var sb strings.Builder
	empty := 0
	for i, pc := range p.tiles {
		if i%8 == 0 && i != 0 {
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte('/')
		}
		if pc.IsNone() {
			empty++
			continue
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
			empty = 0
		}
		sb.WriteRune(pc.Char())
	}
	if empty > 0 {
		sb.WriteByte('0' + byte(empty))
	}
	return sb.String()
}

// FEN produces the full six-field FEN string of the position.
func (p *Position) FEN() string {
	var sb strings.Builder

	// 1. Piece placement
	sb.WriteString(p.PlacementFEN())
	sb.WriteByte(' ')

	// 2. Side to move
	if p.turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	if p.castling == CastlingNone {
		sb.WriteByte('-')
	} else {
		if p.castling&CastlingWhiteK != 0 {
			sb.WriteByte('K')
		}
		if p.castling&CastlingWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if p.castling&CastlingBlackK != 0 {
			sb.WriteByte('k')
		}
		if p.castling&CastlingBlackQ != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	// 4. En passant target: the square behind the pawn that just moved
	if p.enPassant != NoSquare {
		pc, _ := p.Tile(p.enPassant)
		sb.WriteString(p.enPassant.Offset(0, -pawnDir(pc.Color)).String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	// 5. Halfmove clock
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')

	// 6. Fullmove number
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	return sb.String()
}
