package ws

import (
	"encoding/json"

	"github.com/tbeck/clichess/internal/engine"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMove       MessageType = "move"
	MessageTypeCastle     MessageType = "castle"
	MessageTypeResign     MessageType = "resign"
	MessageTypeGameState  MessageType = "gameState"
	MessageTypeMatchFound MessageType = "matchFound"
	MessageTypeError      MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MovePayload carries an ordinary move submission.
type MovePayload struct {
	From      engine.Position  `json:"from"`
	To        engine.Position  `json:"to"`
	Promotion engine.PieceType `json:"promotion,omitempty"`
}

// CastlePayload carries a castling request for the side to move.
type CastlePayload struct {
	Kingside bool `json:"kingside"`
}

// ErrorPayload carries a rejection reason back to the client.
type ErrorPayload struct {
	Reason string `json:"reason"`
}
