package reference

import (
	"fmt"

	goose "github.com/Oliverans/GooseEngineMG/goosemg"
)

// Goose adapts the goosemg generator published as GooseEngineMG.
type Goose struct{}

func (Goose) Name() string { return "goose" }

func (Goose) Perft(fen string, depth int) (uint64, error) {
	b, err := gooseBoard(fen)
	if err != nil {
		return 0, err
	}
	return goose.Perft(b, depth), nil
}

func (Goose) Divide(fen string, depth int) (map[string]uint64, error) {
	b, err := gooseBoard(fen)
	if err != nil {
		return nil, err
	}
	out := make(map[string]uint64)
	if depth <= 0 {
		return out, nil
	}
	for m, n := range goose.PerftDivide(b, depth) {
		out[m.String()] += n
	}
	return out, nil
}

func gooseBoard(fen string) (*goose.Board, error) {
	full, err := normalize(fen)
	if err != nil {
		return nil, err
	}
	b, err := goose.ParseFEN(full)
	if err != nil {
		return nil, fmt.Errorf("goose: %w", err)
	}
	return b, nil
}
