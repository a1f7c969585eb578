package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

type gameManager interface {
	CreateSession(ctx context.Context) (*entity.Game, error)
	ListSessions(ctx context.Context) ([]entity.Summary, error)
	MakeMove(ctx context.Context, id int64, row, col int) (*entity.Game, error)
	ListMoves(ctx context.Context, id int64) ([]entity.Move, error)
}

type Server struct {
	logger *slog.Logger
	games  gameManager
}

func New(logger *slog.Logger, games gameManager) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		games:  games,
	}
}

func (that *Server) Start(port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /games", that.handleCreateGame)
	mux.HandleFunc("GET /games", that.handleListGames)
	mux.HandleFunc("POST /games/{id}/moves", that.handleMakeMove)
	mux.HandleFunc("GET /games/{id}/moves", that.handleListMoves)
	mux.HandleFunc("/ping", pingHandler)

	return mux
}
