package websocket

import (
	"encoding/json"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Response struct {
	Action  string `json:"action"`
	Payload any    `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

type gameRequest struct {
	GameID int64 `json:"game_id"`
}

type moveRequest struct {
	GameID int64 `json:"game_id"`
	X      int   `json:"x"`
	Y      int   `json:"y"`
}

type moveInfo struct {
	MoveNumber int       `json:"move_number"`
	Player     string    `json:"player"`
	X          int       `json:"x"`
	Y          int       `json:"y"`
	Timestamp  time.Time `json:"timestamp"`
}

type gameResponse struct {
	GameID int64                                      `json:"game_id"`
	Board  [entity.BoardSize][entity.BoardSize]string `json:"board"`
	Status string                                     `json:"status"`
	Winner string                                     `json:"winner,omitempty"`
	Moves  []moveInfo                                 `json:"moves"`
}

func toGameResponse(game *entity.Game) gameResponse {
	return gameResponse{
		GameID: game.ID,
		Board:  game.Board,
		Status: game.Status,
		Winner: game.Winner,
		Moves:  toMoveInfos(game.Moves),
	}
}

func toMoveInfos(moves []entity.Move) []moveInfo {
	infos := make([]moveInfo, 0, len(moves))
	for _, move := range moves {
		infos = append(infos, moveInfo{
			MoveNumber: move.Number,
			Player:     move.Player,
			X:          move.Row,
			Y:          move.Col,
			Timestamp:  move.Timestamp,
		})
	}

	return infos
}
