package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"

	"github.com/tbeck/clichess/internal/config"
	"github.com/tbeck/clichess/internal/controller"
	"github.com/tbeck/clichess/internal/engine"
	"github.com/tbeck/clichess/internal/middleware"
	"github.com/tbeck/clichess/internal/service"
)

func main() {
	cfg := config.Load()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))
	if cfg.LogRequests {
		app.Use(logger.New())
	}

	gameManager := service.NewGameManager(engine.PieceType(cfg.PromotionDefault))
	gameService := service.NewGameService(gameManager)
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	app.Use(middleware.EnsurePlayerID())

	app.Use("/ws", middleware.WebSocketUpgrade())
	app.Get("/ws/game/:gameId", websocket.New(wsController.HandleConnection))
	app.Get("/ws/matchmaking", websocket.New(wsController.HandleMatchmaking))

	api := app.Group("/api")
	game := api.Group("/game")
	game.Post("/matchmaking/join", gameController.JoinMatchmaking)
	game.Post("/create", gameController.CreateGame)
	game.Post("/join/:gameId", gameController.JoinGame)
	game.Get("/:gameId", gameController.GetGameState)
	game.Get("/:gameId/moves", gameController.GetLegalMoves)

	log.Fatal(app.Listen(cfg.Addr))
}
