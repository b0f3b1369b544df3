// Package protocol implements a UCI-flavoured text loop over chessmg. It
// keeps a current position and answers rules queries; there is no search.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	mg "chess-rules/chessmg"
	"chess-rules/internal/perftsuite"
)

// Session holds the position the commands operate on.
type Session struct {
	pos mg.Position
	out io.Writer
}

// NewSession starts at the initial position and writes replies to out.
func NewSession(out io.Writer) *Session {
	return &Session{pos: mg.StartPos(), out: out}
}

// Position returns a copy of the current position.
func (s *Session) Position() mg.Position { return s.pos }

// Loop reads commands from in until quit or end of input.
func Loop(in io.Reader, out io.Writer) error {
	s := NewSession(out)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if !s.Handle(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// Handle executes one command line. It returns false after quit.
func (s *Session) Handle(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 { // ignore blank lines
		return true
	}
	switch strings.ToLower(tokens[0]) {
	case "uci":
		s.println("id name chess-rules")
		s.println("id author chess-rules authors")
		s.println("uciok")
	case "isready":
		s.println("readyok")
	case "ucinewgame":
		s.pos = mg.StartPos()
	case "position":
		s.position(tokens[1:])
	case "legal":
		s.legal()
	case "d":
		s.display()
	case "go":
		s.goCmd(tokens[1:])
	case "quit":
		return false
	default:
		s.println("info string Unknown command", tokens[0])
	}
	return true
}

func (s *Session) println(a ...any) { fmt.Fprintln(s.out, a...) }

// position handles "position startpos|fen <fen> [moves m1 m2 ...]". The
// current position is only replaced when the whole command succeeds.
func (s *Session) position(args []string) {
	if len(args) == 0 {
		s.println("info string Malformed position command")
		return
	}
	var (
		pos  mg.Position
		rest []string
	)
	switch strings.ToLower(args[0]) {
	case "startpos":
		pos = mg.StartPos()
		rest = args[1:]
	case "fen":
		i := 1
		for i < len(args) && strings.ToLower(args[i]) != "moves" {
			i++
		}
		if i == 1 {
			s.println("info string Invalid fen position")
			return
		}
		p, err := mg.ParseFEN(strings.Join(args[1:i], " "))
		if err != nil {
			s.println("info string", err)
			return
		}
		pos = *p
		rest = args[i:]
	default:
		s.println("info string Invalid position subcommand")
		return
	}

	if len(rest) > 0 {
		if strings.ToLower(rest[0]) != "moves" {
			s.println("info string Expected moves, got", rest[0])
			return
		}
		for _, text := range rest[1:] { // for each move
			m, err := pos.MoveFromText(text)
			if err != nil {
				s.println("info string", err)
				return
			}
			if err := pos.ApplyMove(m); err != nil {
				s.println("info string", err)
				return
			}
		}
	}
	s.pos = pos
}

func (s *Session) legal() {
	var texts []string
	for _, m := range s.pos.AllLegalMoves() {
		texts = append(texts, m.String())
	}
	if len(texts) == 0 {
		s.println("info string No legal moves:", s.pos.Outcome())
		return
	}
	s.println(strings.Join(texts, " "))
}

func (s *Session) display() {
	s.println(s.pos.String())
	s.println("Fen:", s.pos.FEN())
	status := s.pos.Outcome().String()
	if s.pos.IsCheck() && status == "ongoing" {
		status = "check"
	}
	s.println("Status:", status)
}

// goCmd supports "go perft N", printing a sorted divide and the total.
func (s *Session) goCmd(args []string) {
	if len(args) < 2 || strings.ToLower(args[0]) != "perft" {
		s.println("info string Only go perft <depth> is supported")
		return
	}
	depth, err := strconv.Atoi(args[1])
	if err != nil || depth < 1 {
		s.println("info string Malformed go command option; could not convert depth")
		return
	}
	start := time.Now()
	div := mg.DivideByText(mg.PerftDivide(&s.pos, depth))
	for _, m := range perftsuite.SortedMoves(div) {
		fmt.Fprintf(s.out, "%s: %d\n", m, div[m])
	}
	s.println()
	s.println("Nodes searched:", perftsuite.Total(div))
	s.println("info string time", time.Since(start).Round(time.Millisecond))
}
