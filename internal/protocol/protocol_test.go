package protocol

import (
	"bytes"
	"strings"
	"testing"

	mg "chess-rules/chessmg"
)

func run(t *testing.T, script ...string) (string, *Session) {
	t.Helper()
	var out bytes.Buffer
	s := NewSession(&out)
	for _, line := range script {
		if !s.Handle(line) {
			break
		}
	}
	return out.String(), s
}

func TestHandshake(t *testing.T) {
	var out bytes.Buffer
	if err := Loop(strings.NewReader("uci\nisready\nquit\nisready\n"), &out); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "uciok\n") {
		t.Fatalf("missing uciok in %q", got)
	}
	if strings.Count(got, "readyok") != 1 {
		t.Fatalf("commands after quit were handled: %q", got)
	}
}

func TestPositionWithMoves(t *testing.T) {
	_, s := run(t, "position startpos moves e2e4 e7e5 g1f3")
	p := s.Position()
	want := "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"
	if got := p.FEN(); got != want {
		t.Fatalf("FEN: got %q want %q", got, want)
	}
}

func TestPositionFEN(t *testing.T) {
	fen := "k7/8/8/3pP3/8/8/8/7K w - d6 0 2"
	_, s := run(t, "position fen "+fen+" moves e5d6")
	p := s.Position()
	if got := p.PlacementFEN(); got != "k7/8/3P4/8/8/8/8/7K" {
		t.Fatalf("placement: got %q", got)
	}
}

func TestPositionErrorsKeepCurrent(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"position", "Malformed position"},
		{"position fen", "Invalid fen"},
		{"position fen 8/8 w - -", "invalid FEN"},
		{"position somewhere", "Invalid position subcommand"},
		{"position startpos moves e2e5", "illegal move"},
		{"position startpos e2e4", "Expected moves"},
	}
	for _, tc := range tests {
		out, s := run(t, "position startpos moves d2d4", tc.line)
		if !strings.Contains(out, "info string") || !strings.Contains(out, tc.want) {
			t.Errorf("%q: got %q want info string containing %q", tc.line, out, tc.want)
		}
		p := s.Position()
		if !strings.HasPrefix(p.FEN(), "rnbqkbnr/pppppppp/8/8/3P4/") {
			t.Errorf("%q replaced the position: %s", tc.line, p.FEN())
		}
	}
}

func TestLegal(t *testing.T) {
	out, _ := run(t, "legal")
	if n := len(strings.Fields(out)); n != 20 {
		t.Fatalf("legal moves: got %d want 20 (%q)", n, out)
	}
	out, _ = run(t, "position fen 7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", "legal")
	if !strings.Contains(out, "stalemate") {
		t.Fatalf("got %q want stalemate notice", out)
	}
}

func TestDisplay(t *testing.T) {
	out, _ := run(t, "position fen rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", "d")
	for _, want := range []string{"rnb-kbnr\n", "Fen: rnb1kbnr/", "Status: checkmate"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
	out, _ = run(t, "position startpos moves e2e4 f7f6 d2d4 g7g5 d1h5", "d")
	if !strings.Contains(out, "Status: checkmate") {
		t.Fatalf("got %q", out)
	}
	out, _ = run(t, "position startpos moves e2e4 f7f5 d1h5", "d")
	if !strings.Contains(out, "Status: check\n") {
		t.Fatalf("got %q", out)
	}
}

func TestGoPerft(t *testing.T) {
	out, _ := run(t, "go perft 2")
	if !strings.Contains(out, "Nodes searched: 400\n") {
		t.Fatalf("got %q", out)
	}
	lines := strings.Split(out, "\n")
	if lines[0] != "a2a3: 20" {
		t.Fatalf("first divide line: got %q want a2a3: 20", lines[0])
	}
	for _, bad := range []string{"go", "go depth 3", "go perft x", "go perft 0"} {
		out, _ := run(t, bad)
		if !strings.HasPrefix(out, "info string") {
			t.Errorf("%q: got %q", bad, out)
		}
	}
}

func TestUnknownAndNewGame(t *testing.T) {
	out, s := run(t, "position startpos moves e2e4", "frobnicate", "ucinewgame")
	if !strings.Contains(out, "info string Unknown command frobnicate") {
		t.Fatalf("got %q", out)
	}
	p := s.Position()
	if p.FEN() != mg.FENStartPos {
		t.Fatalf("ucinewgame: got %q", p.FEN())
	}
}
