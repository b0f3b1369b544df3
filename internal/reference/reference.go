// Package reference runs perft on independent move generators so chessmg
// counts can be cross-checked node for node.
package reference

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	mg "chess-rules/chessmg"
)

// ErrUnknownEngine is returned by ByName for a name no adapter answers to.
var ErrUnknownEngine = errors.New("unknown reference engine")

// Engine counts perft nodes for a FEN. Divide keys root moves by coordinate
// notation.
type Engine interface {
	Name() string
	Perft(fen string, depth int) (uint64, error)
	Divide(fen string, depth int) (map[string]uint64, error)
}

var engines = map[string]Engine{
	"chessmg":     Local{},
	"dragontooth": Dragontooth{},
	"goose":       Goose{},
}

// ByName returns the engine registered under name.
func ByName(name string) (Engine, error) {
	e, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownEngine, name, Names())
	}
	return e, nil
}

// Names lists the registered engines in sorted order.
func Names() []string {
	names := maps.Keys(engines)
	slices.Sort(names)
	return names
}

// normalize validates fen with chessmg and returns it with all six fields.
// Third-party parsers index the trailing counters unconditionally.
func normalize(fen string) (string, error) {
	p, err := mg.ParseFEN(fen)
	if err != nil {
		return "", err
	}
	return p.FEN(), nil
}

// Local is chessmg itself, registered so suites can treat every engine alike.
type Local struct{}

func (Local) Name() string { return "chessmg" }

func (Local) Perft(fen string, depth int) (uint64, error) {
	p, err := mg.ParseFEN(fen)
	if err != nil {
		return 0, err
	}
	return mg.Perft(p, depth), nil
}

func (Local) Divide(fen string, depth int) (map[string]uint64, error) {
	p, err := mg.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return mg.DivideByText(mg.PerftDivide(p, depth)), nil
}
