package chessmg_test

import (
	"testing"

	mg "chess-rules/chessmg"
)

func TestFoolsMate(t *testing.T) {
	p := mustParse(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if !p.IsCheck() {
		t.Fatal("white should be in check")
	}
	if !p.IsCheckmate() {
		t.Fatal("white should be checkmated")
	}
	if p.IsStalemate() {
		t.Fatal("checkmate is not stalemate")
	}
	if p.Outcome() != mg.Checkmate {
		t.Fatalf("outcome: got %v want checkmate", p.Outcome())
	}
	if moves := p.AllLegalMoves(); moves != nil {
		t.Fatalf("legal moves: got %v want none", moves)
	}
}

func TestStalemate(t *testing.T) {
	p := mustParse(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if p.IsCheck() {
		t.Fatal("black should not be in check")
	}
	if !p.IsStalemate() || p.IsCheckmate() {
		t.Fatalf("stalemate %v checkmate %v, want true false", p.IsStalemate(), p.IsCheckmate())
	}
	if p.Outcome() != mg.Stalemate {
		t.Fatalf("outcome: got %v want stalemate", p.Outcome())
	}
}

func TestMateInOne(t *testing.T) {
	p := mustParse(t, "7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1")
	if p.Outcome() != mg.Ongoing {
		t.Fatalf("outcome before: got %v want ongoing", p.Outcome())
	}
	play(t, p, "g6g7")
	if !p.IsCheckmate() {
		t.Fatalf("Qxg7 should mate:\n%s", p)
	}
}

func TestCheckWithEscape(t *testing.T) {
	p := mustParse(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	if !p.IsCheck() {
		t.Fatal("white should be in check")
	}
	if p.IsCheckmate() || p.IsStalemate() {
		t.Fatal("king can take the rook")
	}
	moves := p.AllLegalMoves()
	if !hasMove(moves, "e1e2") {
		t.Fatalf("Kxe2 missing from %v", moves)
	}
	for _, m := range moves {
		if m.String() == "e1f2" || m.String() == "e1d2" {
			t.Fatalf("%s steps onto the rook's rank", m)
		}
	}
}

func TestDrawBy50(t *testing.T) {
	p := mustParse(t, "4k3/8/8/8/8/8/8/4K2R w K - 99 80")
	if p.IsDrawBy50() {
		t.Fatal("99 half-moves is not yet a draw")
	}
	play(t, p, "h1h2")
	if !p.IsDrawBy50() {
		t.Fatalf("halfmove %d should be a draw", p.HalfmoveClock())
	}
	if p.Outcome() != mg.Ongoing {
		t.Fatal("the clock does not end the game by itself")
	}
}
