package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"chess-rules/internal/service"
	"chess-rules/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// lockedConn serializes writes: the service pushes states while this
// controller may be writing an error frame.
type lockedConn struct {
	mu   sync.Mutex
	conn service.Conn
}

func (l *lockedConn) WriteJSON(v interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.conn.WriteJSON(v)
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	connID := uuid.New().String()
	out := &lockedConn{conn: c}

	if err := wsc.gameService.RegisterConnection(gameID, connID, out); err != nil {
		log.Printf("Failed to register connection: %v", err)
		c.Close()
		return
	}
	log.Printf("game %s: connection %s opened", gameID, connID)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("read error: %v", err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse error: %v", err)
			wsc.sendError(out, fmt.Errorf("malformed message: %w", err))
			continue
		}
		if err := wsc.handleMessage(gameID, msg); err != nil {
			log.Printf("handle error: %v", err)
			wsc.sendError(out, err)
		}
	}

	wsc.gameService.UnregisterConnection(gameID, connID)
	log.Printf("game %s: connection %s closed", gameID, connID)
}

// handleMessage dispatches one decoded frame. State pushes happen in the
// service once a move lands.
func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		_, err := wsc.gameService.HandleMove(gameID, move.Move)
		return err
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(c service.Conn, err error) {
	msg, merr := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()})
	if merr != nil {
		log.Printf("marshal error frame: %v", merr)
		return
	}
	if werr := c.WriteJSON(msg); werr != nil {
		log.Printf("write error frame: %v", werr)
	}
}
