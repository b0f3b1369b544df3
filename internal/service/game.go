package service

import (
	"log"
	"sync"

	mg "chess-rules/chessmg"
	"chess-rules/internal/ws"
)

// Conn is the write side of a subscriber, satisfied by *websocket.Conn.
type Conn interface {
	WriteJSON(v interface{}) error
}

// GameState is what clients see of a game.
type GameState struct {
	ID         string   `json:"id"`
	FEN        string   `json:"fen"`
	Turn       string   `json:"turn"`
	Status     string   `json:"status"`
	Check      bool     `json:"check"`
	DrawBy50   bool     `json:"drawBy50"`
	LegalMoves []string `json:"legalMoves"`
	History    []string `json:"history"`
}

// Game is one session: a position, the moves that led to it and the
// connections watching it.
type Game struct {
	ID      string
	start   string
	pos     mg.Position
	history []string
	conns   map[string]Conn
	mu      sync.Mutex
}

func newGame(id string, pos *mg.Position) *Game {
	return &Game{
		ID:    id,
		start: pos.FEN(),
		pos:   *pos,
		conns: make(map[string]Conn),
	}
}

// state must be called with g.mu held.
func (g *Game) state() GameState {
	st := describe(&g.pos)
	st.ID = g.ID
	st.History = append([]string{}, g.history...)
	return st
}

// describe summarizes a position without any session data.
func describe(p *mg.Position) GameState {
	moves := p.AllLegalMoves()
	legal := make([]string, 0, len(moves))
	for _, m := range moves {
		legal = append(legal, m.String())
	}
	status := mg.Ongoing.String()
	if len(moves) == 0 {
		status = p.Outcome().String()
	}
	return GameState{
		FEN:        p.FEN(),
		Turn:       p.SideToMove().String(),
		Status:     status,
		Check:      p.IsCheck(),
		DrawBy50:   p.IsDrawBy50(),
		LegalMoves: legal,
	}
}

// play applies a move given in coordinate notation. Must be called with g.mu held.
func (g *Game) play(text string) error {
	if !g.pos.HasLegalMoves() {
		return ErrGameOver
	}
	m, err := g.pos.MoveFromText(text)
	if err != nil {
		return err
	}
	if err := g.pos.ApplyMove(m); err != nil {
		return err
	}
	g.history = append(g.history, m.String())
	return nil
}

// broadcast pushes the current state to every connection, dropping the
// ones that fail. Must be called with g.mu held.
func (g *Game) broadcast() {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, g.state())
	if err != nil {
		log.Printf("game %s: marshal state: %v", g.ID, err)
		return
	}
	for id, c := range g.conns {
		if err := c.WriteJSON(msg); err != nil {
			log.Printf("game %s: dropping connection %s: %v", g.ID, id, err)
			delete(g.conns, id)
		}
	}
}
