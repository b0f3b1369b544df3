package service

import (
	"errors"
	"fmt"
	"log"
	"sync"

	mg "chess-rules/chessmg"
	"chess-rules/internal/ws"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
	ErrGameOver     = errors.New("game is over")
	ErrTooManyGames = errors.New("too many games")
)

// GameManager owns the live games. The map is guarded by mu; each game
// guards its own position and connections.
type GameManager struct {
	games    map[string]*Game
	maxGames int
	mu       sync.RWMutex
}

// NewGameManager creates an empty manager. maxGames <= 0 means no limit.
func NewGameManager(maxGames int) *GameManager {
	return &GameManager{
		games:    make(map[string]*Game),
		maxGames: maxGames,
	}
}

func (gm *GameManager) CreateGame(gameID string, pos *mg.Position) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return fmt.Errorf("%w: %s", ErrGameExists, gameID)
	}
	if gm.maxGames > 0 && len(gm.games) >= gm.maxGames {
		return fmt.Errorf("%w: limit is %d", ErrTooManyGames, gm.maxGames)
	}
	gm.games[gameID] = newGame(gameID, pos)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return game, nil
}

func (gm *GameManager) DeleteGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; !exists {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	delete(gm.games, gameID)
	return nil
}

// Count returns the number of live games.
func (gm *GameManager) Count() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}

func (gm *GameManager) GetGameState(gameID string) (GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return GameState{}, err
	}
	game.mu.Lock()
	defer game.mu.Unlock()
	return game.state(), nil
}

// MakeMove plays text in the game and pushes the new state to subscribers.
func (gm *GameManager) MakeMove(gameID string, text string) (GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return GameState{}, err
	}
	game.mu.Lock()
	defer game.mu.Unlock()

	if err := game.play(text); err != nil {
		return GameState{}, err
	}
	game.broadcast()
	return game.state(), nil
}

// StartFEN returns the position the game began from.
func (gm *GameManager) StartFEN(gameID string) (string, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.start, nil
}

// RegisterConnection subscribes conn to the game and sends it the current state.
func (gm *GameManager) RegisterConnection(gameID string, connID string, conn Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	game.mu.Lock()
	defer game.mu.Unlock()

	if _, ok := game.conns[connID]; ok {
		log.Printf("game %s: replacing connection %s", gameID, connID)
	}
	msg, err := ws.NewMessage(ws.MessageTypeGameState, game.state())
	if err != nil {
		return err
	}
	if err := conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("send initial state: %w", err)
	}
	game.conns[connID] = conn
	return nil
}

func (gm *GameManager) UnregisterConnection(gameID string, connID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.mu.Lock()
	defer game.mu.Unlock()
	delete(game.conns, connID)
}
