package reference

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
)

// Dragontooth adapts github.com/dylhunn/dragontoothmg, a bitboard generator.
type Dragontooth struct{}

func (Dragontooth) Name() string { return "dragontooth" }

func (d Dragontooth) Perft(fen string, depth int) (uint64, error) {
	b, err := d.board(fen)
	if err != nil {
		return 0, err
	}
	return dragontoothPerft(&b, depth), nil
}

func (d Dragontooth) Divide(fen string, depth int) (map[string]uint64, error) {
	b, err := d.board(fen)
	if err != nil {
		return nil, err
	}
	out := make(map[string]uint64)
	if depth <= 0 {
		return out, nil
	}
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		out[m.String()] = dragontoothPerft(&b, depth-1)
		unapply()
	}
	return out, nil
}

// board parses fen, turning a parser panic into an error.
func (Dragontooth) board(fen string) (b dragontoothmg.Board, err error) {
	full, err := normalize(fen)
	if err != nil {
		return b, err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dragontooth: parse %q: %v", full, r)
		}
	}()
	return dragontoothmg.ParseFen(full), nil
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}
