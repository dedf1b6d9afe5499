package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/websocket/v2"
	"github.com/tbeck/clichess/internal/engine"
	"github.com/tbeck/clichess/internal/service"
	"github.com/tbeck/clichess/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Printf("failed to register connection: %v", err)
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse error: %v", err)
			continue
		}
		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			wsc.sendError(c, err)
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID)
}

// HandleMatchmaking parks a queued player's connection until the
// manager pairs them, then delivers the match event and closes.
func (wsc *WebSocketController) HandleMatchmaking(c *websocket.Conn) {
	playerID := c.Locals("playerID").(string)

	events := make(chan string, 1)
	wsc.gameService.RegisterMatchmakingChannel(playerID, events)
	defer wsc.gameService.UnregisterMatchmakingChannel(playerID)

	event, ok := <-events
	if !ok {
		// Replaced by a newer connection.
		c.Close()
		return
	}

	err := c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeMatchFound,
		Payload: json.RawMessage(event),
	})
	if err != nil {
		log.Printf("send match event to player %s: %v", playerID, err)
	}
	c.Close()
}

// Handle different types of incoming messages
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var payload ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return err
		}
		return wsc.gameService.HandleMove(gameID, playerID, engine.Move{
			From:      payload.From,
			To:        payload.To,
			Promotion: payload.Promotion,
		})

	case ws.MessageTypeCastle:
		var payload ws.CastlePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return err
		}
		return wsc.gameService.HandleCastle(gameID, playerID, payload.Kingside)

	case ws.MessageTypeResign:
		return wsc.gameService.HandleResign(gameID, playerID)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

// sendError reports a rejection back over the socket without tearing
// the connection down: an illegal move is a reply, not a failure.
func (wsc *WebSocketController) sendError(c *websocket.Conn, err error) {
	payload, merr := json.Marshal(ws.ErrorPayload{Reason: err.Error()})
	if merr != nil {
		return
	}
	c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: json.RawMessage(payload),
	})
}
