// Package perftsuite loads perft suites from TOML and runs them against one
// or more move generators.
package perftsuite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	mg "chess-rules/chessmg"
	"chess-rules/internal/reference"
)

var (
	ErrEmptySuite    = errors.New("perft suite has no positions")
	ErrInvalidSuite  = errors.New("invalid perft suite")
	ErrNodesMismatch = errors.New("perft node count mismatch")
)

// Suite is the decoded form of a suite file:
//
//	reference = ["dragontooth"]
//
//	[[position]]
//	name = "initial"
//	fen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
//	nodes = [20, 400, 8902]
type Suite struct {
	Reference []string   `toml:"reference"`
	Positions []Position `toml:"position"`
}

// Position is one suite entry. Nodes[i] is the expected perft at depth i+1.
type Position struct {
	Name     string   `toml:"name"`
	FEN      string   `toml:"fen"`
	Nodes    []uint64 `toml:"nodes"`
	MaxDepth int      `toml:"max_depth"`
}

// Load decodes and validates the suite file at path.
func Load(path string) (*Suite, error) {
	var s Suite
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSuite, path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

// Parse decodes and validates a suite held in memory.
func Parse(data string) (*Suite, error) {
	var s Suite
	if _, err := toml.Decode(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSuite, err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Suite) validate() error {
	if len(s.Positions) == 0 {
		return ErrEmptySuite
	}
	seen := make(map[string]bool, len(s.Positions))
	for i, p := range s.Positions {
		if p.Name == "" {
			return fmt.Errorf("%w: position %d has no name", ErrInvalidSuite, i)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate position %q", ErrInvalidSuite, p.Name)
		}
		seen[p.Name] = true
		if len(p.Nodes) == 0 {
			return fmt.Errorf("%w: position %q lists no node counts", ErrInvalidSuite, p.Name)
		}
		if _, err := mg.ParseFEN(p.FEN); err != nil {
			return fmt.Errorf("%w: position %q: %w", ErrInvalidSuite, p.Name, err)
		}
	}
	for _, name := range s.Reference {
		if _, err := reference.ByName(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSuite, err)
		}
	}
	return nil
}

// Engines resolves the suite's reference list. chessmg always runs first.
func (s *Suite) Engines() []reference.Engine {
	engines := []reference.Engine{reference.Local{}}
	for _, name := range s.Reference {
		if name == "chessmg" {
			continue
		}
		e, err := reference.ByName(name)
		if err != nil {
			continue
		}
		engines = append(engines, e)
	}
	return engines
}

// depthLimit caps a position's depth by its own max_depth and the run limit.
// A limit <= 0 means no cap.
func (p Position) depthLimit(limit int) int {
	d := len(p.Nodes)
	if p.MaxDepth > 0 && p.MaxDepth < d {
		d = p.MaxDepth
	}
	if limit > 0 && limit < d {
		d = limit
	}
	return d
}

// Result records one (position, engine, depth) run.
type Result struct {
	Position string
	Engine   string
	Depth    int
	Want     uint64
	Got      uint64
	Elapsed  time.Duration
}

// OK reports whether the engine matched the expected count.
func (r Result) OK() bool { return r.Got == r.Want }

func (r Result) String() string {
	status := "ok"
	if !r.OK() {
		status = "MISMATCH"
	}
	return fmt.Sprintf("%-12s %-12s depth %d: got %d want %d (%s) %s",
		r.Position, r.Engine, r.Depth, r.Got, r.Want, r.Elapsed.Round(time.Millisecond), status)
}

// Run executes every position of s on each engine, depth by depth up to
// maxDepth (<= 0 runs every listed depth). It stops early when ctx is done.
// The returned error wraps ErrNodesMismatch if any count differed.
func Run(ctx context.Context, s *Suite, engines []reference.Engine, maxDepth int) ([]Result, error) {
	var (
		results    []Result
		mismatches int
	)
	for _, p := range s.Positions {
		for depth := 1; depth <= p.depthLimit(maxDepth); depth++ {
			for _, e := range engines {
				if err := ctx.Err(); err != nil {
					return results, err
				}
				start := time.Now()
				got, err := e.Perft(p.FEN, depth)
				if err != nil {
					return results, fmt.Errorf("%s on %q: %w", e.Name(), p.Name, err)
				}
				r := Result{
					Position: p.Name,
					Engine:   e.Name(),
					Depth:    depth,
					Want:     p.Nodes[depth-1],
					Got:      got,
					Elapsed:  time.Since(start),
				}
				if !r.OK() {
					mismatches++
				}
				results = append(results, r)
			}
		}
	}
	if mismatches > 0 {
		return results, fmt.Errorf("%w: %d of %d runs", ErrNodesMismatch, mismatches, len(results))
	}
	return results, nil
}
