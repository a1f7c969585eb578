package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

type gameManager interface {
	CreateSession(ctx context.Context) (*entity.Game, error)
	GetSession(ctx context.Context, id int64) (*entity.Game, error)
	MakeMove(ctx context.Context, id int64, row, col int) (*entity.Game, error)
	ListMoves(ctx context.Context, id int64) ([]entity.Move, error)
}

type handlerFunc func(ctx context.Context, payload json.RawMessage) (any, error)

type Server struct {
	logger   *slog.Logger
	games    gameManager
	upgrader websocket.Upgrader
	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, games gameManager) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		games:  games,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers["game:new"] = server.handleNewGame
	server.handlers["game:state"] = server.handleGameState
	server.handlers["game:move"] = server.handleMove
	server.handlers["game:moves"] = server.handleMoves

	return server
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConnection(ctx, w, r)
	})

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveConnection - upgrades the connection and serves its message loop.
func (that *Server) serveConnection(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveConnection")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	log.Info("WebSocket connection established")

	if err = that.handleMessages(ctx, conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		var message Message
		if err := conn.ReadJSON(&message); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			if err := conn.WriteJSON(Response{Action: message.Action, Error: "unknown action"}); err != nil {
				return fmt.Errorf("failed to send response: %w", err)
			}
			continue
		}

		response := Response{Action: message.Action}

		payload, err := handler(ctx, message.Payload)
		if err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
			response.Error = err.Error()
		} else {
			response.Payload = payload
		}

		if err = conn.WriteJSON(response); err != nil {
			return fmt.Errorf("failed to send response: %w", err)
		}
	}
}
