package service

import (
	"fmt"

	"github.com/google/uuid"

	mg "chess-rules/chessmg"
)

// GameService is the API the controllers use: it picks ids and starting
// positions and offers stateless position queries.
type GameService struct {
	gameManager *GameManager
	startFEN    string
}

// NewGameService returns a service whose new games start from startFEN, or
// from the initial position when it is empty.
func NewGameService(gameManager *GameManager, startFEN string) *GameService {
	if startFEN == "" {
		startFEN = mg.FENStartPos
	}
	return &GameService{gameManager: gameManager, startFEN: startFEN}
}

// CreateGame starts a game from fen, or from the service default when fen
// is empty, and returns its id.
func (gs *GameService) CreateGame(fen string) (string, GameState, error) {
	if fen == "" {
		fen = gs.startFEN
	}
	pos, err := mg.ParseFEN(fen)
	if err != nil {
		return "", GameState{}, err
	}

	gameID := uuid.New().String()
	if err := gs.gameManager.CreateGame(gameID, pos); err != nil {
		return "", GameState{}, fmt.Errorf("failed to create game: %w", err)
	}
	state, err := gs.gameManager.GetGameState(gameID)
	return gameID, state, err
}

// GameExists reports whether gameID names a live game.
func (gs *GameService) GameExists(gameID string) bool {
	_, err := gs.gameManager.GetGame(gameID)
	return err == nil
}

func (gs *GameService) GetGameState(gameID string) (GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) HandleMove(gameID string, move string) (GameState, error) {
	return gs.gameManager.MakeMove(gameID, move)
}

func (gs *GameService) DeleteGame(gameID string) error {
	return gs.gameManager.DeleteGame(gameID)
}

func (gs *GameService) RegisterConnection(gameID string, connID string, conn Conn) error {
	return gs.gameManager.RegisterConnection(gameID, connID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, connID string) {
	gs.gameManager.UnregisterConnection(gameID, connID)
}

// Analyze describes a position given as FEN without creating a game.
func (gs *GameService) Analyze(fen string) (GameState, error) {
	pos, err := mg.ParseFEN(fen)
	if err != nil {
		return GameState{}, err
	}
	return describe(pos), nil
}

// Perft counts leaf nodes of fen to depth, split by root move.
func (gs *GameService) Perft(fen string, depth int) (map[string]uint64, error) {
	pos, err := mg.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return mg.DivideByText(mg.PerftDivide(pos, depth)), nil
}
