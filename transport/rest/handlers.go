package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository"
)

type moveRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type moveResponse struct {
	MoveNumber int       `json:"move_number"`
	Player     string    `json:"player"`
	X          int       `json:"x"`
	Y          int       `json:"y"`
	Timestamp  time.Time `json:"timestamp"`
}

type gameStateResponse struct {
	GameID int64                                      `json:"game_id"`
	Board  [entity.BoardSize][entity.BoardSize]string `json:"board"`
	Status string                                     `json:"status"`
	Winner string                                     `json:"winner,omitempty"`
	Moves  []moveResponse                             `json:"moves"`
}

type gameSummaryResponse struct {
	GameID    int64     `json:"game_id"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.CreateSession(r.Context())
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, toGameState(game))
}

func (that *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	summaries, err := that.games.ListSessions(r.Context())
	if err != nil {
		that.writeError(w, err)
		return
	}

	response := make([]gameSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, gameSummaryResponse{
			GameID:    summary.ID,
			CreatedAt: summary.CreatedAt,
			Status:    summary.Status,
		})
	}

	that.writeJSON(w, http.StatusOK, response)
}

func (that *Server) handleMakeMove(w http.ResponseWriter, r *http.Request) {
	id, err := parseGameID(r)
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid game id"})
		return
	}

	var request moveRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	game, err := that.games.MakeMove(r.Context(), id, request.X, request.Y)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, toGameState(game))
}

func (that *Server) handleListMoves(w http.ResponseWriter, r *http.Request) {
	id, err := parseGameID(r)
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid game id"})
		return
	}

	moves, err := that.games.ListMoves(r.Context(), id)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, toMoves(moves))
}

func parseGameID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func toGameState(game *entity.Game) gameStateResponse {
	return gameStateResponse{
		GameID: game.ID,
		Board:  game.Board,
		Status: game.Status,
		Winner: game.Winner,
		Moves:  toMoves(game.Moves),
	}
}

func toMoves(moves []entity.Move) []moveResponse {
	response := make([]moveResponse, 0, len(moves))
	for _, move := range moves {
		response = append(response, moveResponse{
			MoveNumber: move.Number,
			Player:     move.Player,
			X:          move.Row,
			Y:          move.Col,
			Timestamp:  move.Timestamp,
		})
	}

	return response
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

// writeError - maps the error taxonomy onto HTTP statuses: unknown game is
// 404, rejected moves are 400, everything else is 500.
func (that *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrGameNotFound):
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: "game not found"})
	case errors.Is(err, apperror.ErrInvalidCoordinate),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameFinished):
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		that.logger.Error("request failed", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
