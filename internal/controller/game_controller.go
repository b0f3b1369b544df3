package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	mg "chess-rules/chessmg"
	"chess-rules/internal/service"
)

// MaxPerftDepth bounds the depth the perft endpoint accepts.
const MaxPerftDepth = 4

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	FEN string `json:"fen"`
}

type moveRequest struct {
	Move string `json:"move"`
}

// statusFor maps service and rules errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrGameOver), errors.Is(err, service.ErrGameExists):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrTooManyGames):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, mg.ErrIllegalMove),
		errors.Is(err, mg.ErrInvalidMoveText),
		isFENError(err):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func isFENError(err error) bool {
	for _, target := range []error{
		mg.ErrWrongSlashCount, mg.ErrWrongTileCount, mg.ErrUnknownCharacter,
		mg.ErrWrongFieldCount, mg.ErrUnknownTurn, mg.ErrRepeatedCastling,
		mg.ErrCastlingLength, mg.ErrInvalidEnPassant, mg.ErrInvalidHalfmove,
		mg.ErrInvalidFullmove,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	gameID, state, err := gc.gameService.CreateGame(req.FEN)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
		"state":   state,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil || req.Move == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "body must be {\"move\": \"<from><to>[promotion]\"}",
		})
	}

	gameState, err := gc.gameService.HandleMove(c.Params("gameId"), req.Move)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(c.Params("gameId")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AnalyzePosition describes ?fen= without creating a game.
func (gc *GameController) AnalyzePosition(c *fiber.Ctx) error {
	fen := c.Query("fen", mg.FENStartPos)
	state, err := gc.gameService.Analyze(fen)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(state)
}

// PerftPosition runs a divide on ?fen= to ?depth=.
func (gc *GameController) PerftPosition(c *fiber.Ctx) error {
	depth := c.QueryInt("depth", 1)
	if depth < 1 || depth > MaxPerftDepth {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "depth must be between 1 and 4",
		})
	}
	fen := c.Query("fen", mg.FENStartPos)
	div, err := gc.gameService.Perft(fen, depth)
	if err != nil {
		return fail(c, err)
	}
	var nodes uint64
	for _, n := range div {
		nodes += n
	}
	return c.JSON(fiber.Map{
		"fen":    fen,
		"depth":  depth,
		"nodes":  nodes,
		"divide": div,
	})
}
