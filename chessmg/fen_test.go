package chessmg_test

import (
	"errors"
	"strings"
	"testing"

	mg "chess-rules/chessmg"
)

func mustParse(t testing.TB, fen string) *mg.Position {
	t.Helper()
	p, err := mg.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return p
}

func TestPlacementRoundTrip(t *testing.T) {
	placements := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1",
		"5bnr/pp1ppppp/nbrp4/1k3QN1/2B1q3/6N1/PPPRPPPP/R1B1K3",
		"8/8/8/8/8/8/8/8",
		"7k/8/8/8/8/8/8/K7",
	}
	for _, placement := range placements {
		p := mustParse(t, placement+" w - -")
		if got := p.PlacementFEN(); got != placement {
			t.Errorf("PlacementFEN: got %q want %q", got, placement)
		}
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		mg.FENStartPos,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	}
	for _, fen := range fens {
		p := mustParse(t, fen)
		if got := p.FEN(); got != fen {
			t.Errorf("FEN round trip: got %q want %q", got, fen)
		}
	}
}

func TestParseFENDefaultsCounters(t *testing.T) {
	p := mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	if p.HalfmoveClock() != 0 || p.FullmoveNumber() != 1 {
		t.Fatalf("counters: got %d %d want 0 1", p.HalfmoveClock(), p.FullmoveNumber())
	}
	if p.FEN() != mg.FENStartPos {
		t.Fatalf("FEN: got %q want %q", p.FEN(), mg.FENStartPos)
	}
}

// Rank 0 is the top row: a8 is (0,0), h1 is (7,7), and the en passant
// field names the square behind the pawn while the position holds the pawn.
func TestRankConvention(t *testing.T) {
	if sq := mg.MustSquare("a8"); sq != mg.Sq(0, 0) {
		t.Fatalf("a8: got %+v", sq)
	}
	if sq := mg.MustSquare("h1"); sq != mg.Sq(7, 7) {
		t.Fatalf("h1: got %+v", sq)
	}
	p := mustParse(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	if pc, ok := p.Tile(mg.Sq(0, 0)); !ok || pc != (mg.Piece{Type: mg.King, Color: mg.Black}) {
		t.Fatalf("tile (0,0): got %v want black king", pc)
	}
	if pc, ok := p.Tile(mg.Sq(7, 7)); !ok || pc != (mg.Piece{Type: mg.King, Color: mg.White}) {
		t.Fatalf("tile (7,7): got %v want white king", pc)
	}
	ep, ok := p.EnPassant()
	if !ok || ep != mg.MustSquare("d5") || ep != mg.Sq(3, 3) {
		t.Fatalf("en passant: got %v want d5", ep)
	}
	if !strings.Contains(p.FEN(), " d6 ") {
		t.Fatalf("FEN should name d6 as target: %q", p.FEN())
	}
}

func TestParseFENErrors(t *testing.T) {
	const rest = " w KQkq - 0 1"
	tests := []struct {
		name string
		fen  string
		want error
	}{
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP" + rest, mg.ErrWrongSlashCount},
		{"nine ranks", "rnbqkbnr/pppppppp/8/8/8/8/8/PPPPPPPP/RNBQKBNR" + rest, mg.ErrWrongSlashCount},
		{"short rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN" + rest, mg.ErrWrongTileCount},
		{"long rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNRR" + rest, mg.ErrWrongTileCount},
		{"digit overflow", "rnbqkbnr/pppppppp/71p/8/8/8/PPPPPPPP/RNBQKBNR" + rest, mg.ErrWrongTileCount},
		{"empty rank", "rnbqkbnr/pppppppp//8/8/8/PPPPPPPP/RNBQKBNR" + rest, mg.ErrWrongTileCount},
		{"unknown piece", "rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR" + rest, mg.ErrUnknownCharacter},
		{"digit nine", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR" + rest, mg.ErrUnknownCharacter},
		{"three fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq", mg.ErrWrongFieldCount},
		{"seven fields", mg.FENStartPos + " 7", mg.ErrWrongFieldCount},
		{"bad turn", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", mg.ErrUnknownTurn},
		{"repeated castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KKq - 0 1", mg.ErrRepeatedCastling},
		{"long castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkqK - 0 1", mg.ErrCastlingLength},
		{"castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KX - 0 1", mg.ErrUnknownCharacter},
		{"ep malformed", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", mg.ErrInvalidEnPassant},
		{"ep own pawn", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e3 0 1", mg.ErrInvalidEnPassant},
		{"ep no pawn", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq d6 0 1", mg.ErrInvalidEnPassant},
		{"ep off board", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq a1 0 1", mg.ErrInvalidEnPassant},
		{"halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1", mg.ErrInvalidHalfmove},
		{"fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", mg.ErrInvalidFullmove},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mg.ParseFEN(tc.fen)
			if !errors.Is(err, tc.want) {
				t.Fatalf("ParseFEN(%q): got %v want %v", tc.fen, err, tc.want)
			}
		})
	}
}

func TestBoardDump(t *testing.T) {
	p := mg.StartPos()
	want := strings.Join([]string{
		"rnbqkbnr",
		"pppppppp",
		"--------",
		"--------",
		"--------",
		"--------",
		"PPPPPPPP",
		"RNBQKBNR",
	}, "\n")
	if got := p.String(); got != want {
		t.Fatalf("String:\n%s\nwant:\n%s", got, want)
	}
}
