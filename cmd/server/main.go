package main

import (
	"fmt"
	"log"
	"os"

	"chess-rules/internal/config"
	"chess-rules/internal/controller"
	"chess-rules/internal/service"
)

func main() {
	cfg, err := config.FromArgs(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Initialize services
	gameManager := service.NewGameManager(cfg.Games.MaxGames)
	gameService := service.NewGameService(gameManager, cfg.Games.StartFEN)

	app := controller.NewApp(cfg.Server, gameService)

	log.Printf("listening on %s", cfg.Server.Addr)
	log.Fatal(app.Listen(cfg.Server.Addr))
}
