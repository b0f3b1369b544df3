package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"chess-rules/internal/config"
	"chess-rules/internal/middleware"
	"chess-rules/internal/service"
)

// NewApp wires the REST and websocket routes over gameService.
func NewApp(cfg config.ServerConfig, gameService *service.GameService) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "chess-rules"})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService)

	// Set up WebSocket routes
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(gameService.GameExists), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  cfg.ReadBufferSize,
		WriteBufferSize: cfg.WriteBufferSize,
		Origins:         splitOrigins(cfg.AllowOrigins),
	}))

	// Set up REST routes
	api := app.Group("/api")

	games := api.Group("/games")
	games.Post("/", gameController.CreateGame)
	games.Get("/:gameId", gameController.GetGameState)
	games.Delete("/:gameId", gameController.DeleteGame)
	games.Post("/:gameId/moves", gameController.MakeMove)

	positions := api.Group("/positions")
	positions.Get("/", gameController.AnalyzePosition)
	positions.Get("/perft", gameController.PerftPosition)

	return app
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
