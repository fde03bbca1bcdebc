package server

import (
	"encoding/json"
	"fmt"
)

// MessageType names a WebSocket message.
type MessageType string

const (
	MessageTypeGameState   MessageType = "gameState"
	MessageTypeHighlight   MessageType = "highlight"
	MessageTypeMoveApplied MessageType = "moveApplied"
	MessageTypeError       MessageType = "error"

	// Sent by clients.
	MessageTypeSelect MessageType = "select"
	MessageTypeMove   MessageType = "move"
)

// Message is the envelope of every WebSocket frame.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// SelectPayload asks for a piece's moves and takes.
type SelectPayload struct {
	PieceID string `json:"pieceId"`
}

// MovePayload asks for a piece to move.
type MovePayload struct {
	PieceID string `json:"pieceId"`
	To      string `json:"to"`
}

// ErrorPayload carries an error message.
type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage encodes payload into a message of type t.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("encode %s payload: %w", t, err)
	}
	return Message{Type: t, Payload: raw}, nil
}

func errorMessage(err error) Message {
	raw, _ := json.Marshal(ErrorPayload{Error: err.Error()})
	return Message{Type: MessageTypeError, Payload: raw}
}
