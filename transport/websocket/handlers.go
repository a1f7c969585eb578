package websocket

import (
	"context"
	"encoding/json"
	"fmt"
)

func (that *Server) handleNewGame(ctx context.Context, _ json.RawMessage) (any, error) {
	game, err := that.games.CreateSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("Created new game", "gameID", game.ID)

	return toGameResponse(game), nil
}

func (that *Server) handleGameState(ctx context.Context, payload json.RawMessage) (any, error) {
	var request gameRequest
	if err := json.Unmarshal(payload, &request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game request: %w", err)
	}

	game, err := that.games.GetSession(ctx, request.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return toGameResponse(game), nil
}

func (that *Server) handleMove(ctx context.Context, payload json.RawMessage) (any, error) {
	var request moveRequest
	if err := json.Unmarshal(payload, &request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal move request: %w", err)
	}

	game, err := that.games.MakeMove(ctx, request.GameID, request.X, request.Y)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	return toGameResponse(game), nil
}

func (that *Server) handleMoves(ctx context.Context, payload json.RawMessage) (any, error) {
	var request gameRequest
	if err := json.Unmarshal(payload, &request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game request: %w", err)
	}

	moves, err := that.games.ListMoves(ctx, request.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}

	return toMoveInfos(moves), nil
}
