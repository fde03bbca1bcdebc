package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/engine"
)

// requireUpgrade rejects plain HTTP requests to WebSocket routes.
func (s *Server) requireUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

func (s *Server) handleSocket(c *websocket.Conn) {
	gameID := c.Params("gameId")
	session, err := s.games.Get(gameID)
	if err != nil {
		_ = c.WriteJSON(errorMessage(err))
		_ = c.Close()
		return
	}

	id := session.Hub.Add(c)
	log.Printf("game %s: connection %s opened", gameID, id)
	defer func() {
		session.Hub.Remove(id)
		log.Printf("game %s: connection %s closed", gameID, id)
	}()

	if msg, err := NewMessage(MessageTypeGameState, session.State()); err == nil {
		if err := session.Hub.Send(id, msg); err != nil {
			return
		}
	}

	for {
		messageType, raw, err := c.ReadMessage()
		if err != nil {
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			_ = session.Hub.Send(id, errorMessage(fmt.Errorf("decode message: %w", err)))
			continue
		}
		if err := handleMessage(session, msg); err != nil {
			_ = session.Hub.Send(id, errorMessage(err))
		}
	}
}

// handleMessage runs one client request. Results reach the client through
// the session's broadcasts; only failures are returned.
func handleMessage(session *Session, msg Message) error {
	switch msg.Type {
	case MessageTypeSelect:
		var p SelectPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return fmt.Errorf("decode select: %w", err)
		}
		_, err := session.Resolve(p.PieceID)
		return err

	case MessageTypeMove:
		var p MovePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return fmt.Errorf("decode move: %w", err)
		}
		to, err := chess.ParseCoordinate(p.To)
		if err != nil {
			return err
		}
		outcome, err := session.Move(p.PieceID, to)
		if err != nil {
			return err
		}
		if outcome.Kind == engine.Rejected {
			return fmt.Errorf("move rejected: %s", outcome)
		}
		return nil

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
