package service

import (
	"fmt"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/tbeck/clichess/internal/engine"
	"github.com/tbeck/clichess/internal/model"
)

// GameService is the thin facade controllers talk to.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) JoinGame(gameID string, player model.Player) (engine.Side, error) {
	return gs.gameManager.AddPlayerToGame(gameID, player)
}

func (gs *GameService) GetGameState(gameID string) (RoomState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) HandleMove(gameID, playerID string, mv engine.Move) error {
	return gs.gameManager.MakeMove(gameID, playerID, mv)
}

func (gs *GameService) HandleCastle(gameID, playerID string, kingside bool) error {
	return gs.gameManager.Castle(gameID, playerID, kingside)
}

func (gs *GameService) HandleResign(gameID, playerID string) error {
	return gs.gameManager.Resign(gameID, playerID)
}

func (gs *GameService) LegalMoves(gameID string, from engine.Position) ([]engine.Position, error) {
	return gs.gameManager.LegalMoves(gameID, from)
}

func (gs *GameService) JoinMatchmaking(player model.Player) error {
	return gs.gameManager.JoinMatchmaking(player)
}

func (gs *GameService) RegisterConnection(gameID, playerID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, playerID string) {
	gs.gameManager.UnregisterConnection(gameID, playerID)
}

func (gs *GameService) RegisterMatchmakingChannel(playerID string, ch chan string) {
	gs.gameManager.RegisterMatchmakingChannel(playerID, ch)
}

func (gs *GameService) UnregisterMatchmakingChannel(playerID string) {
	gs.gameManager.UnregisterMatchmakingChannel(playerID)
}
