package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tbeck/clichess/internal/engine"
	"github.com/tbeck/clichess/internal/model"
	"github.com/tbeck/clichess/internal/service"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)
	player := model.Player{ID: playerID, Name: c.Query("name", playerID)}

	color, err := gc.gameService.JoinGame(gameID, player)
	if err != nil {
		return statusForError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return statusForError(c, err)
	}
	return c.JSON(gameState)
}

// GetLegalMoves lists the rule-legal destinations for the piece on the
// square named by the "from" query parameter.
func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	from, ok := engine.ParseSquare(c.Query("from"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "from must be a square like e2",
		})
	}

	moves, err := gc.gameService.LegalMoves(gameID, from)
	if err != nil {
		return statusForError(c, err)
	}
	return c.JSON(fiber.Map{
		"from":  from,
		"moves": moves,
	})
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)
	player := model.Player{ID: playerID, Name: c.Query("name", playerID)}

	if err := gc.gameService.JoinMatchmaking(player); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to join matchmaking",
		})
	}
	return c.JSON(fiber.Map{
		"status": "queued",
	})
}

// statusForError maps service and engine rejections onto HTTP codes:
// unknown games are 404, rule and seating rejections are 400, the rest
// are 500.
func statusForError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrGameFull),
		errors.Is(err, service.ErrNotSeated),
		errors.Is(err, engine.ErrGameOver),
		errors.Is(err, engine.ErrOutOfBounds),
		errors.Is(err, engine.ErrNoPieceAtSquare),
		errors.Is(err, engine.ErrNotYourTurn),
		errors.Is(err, engine.ErrIllegalMove),
		errors.Is(err, engine.ErrExposesKing),
		errors.Is(err, engine.ErrCastleNotAllowed):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
