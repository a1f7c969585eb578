package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

const (
	gameKeyPrefix = "game:"
	lastIDKey     = "games:last_id"
)

type redisSessions struct {
	client *redis.Client
}

// NewRedisRepository - registry backed by Redis; the contract matches the
// in-memory registry, with identifiers allocated via INCR.
func NewRedisRepository(client *redis.Client) SessionRepository {
	return &redisSessions{
		client: client,
	}
}

func (that *redisSessions) NextID(ctx context.Context) (int64, error) {
	id, err := that.client.Incr(ctx, lastIDKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate game id: %w", err)
	}

	return id, nil
}

func (that *redisSessions) Save(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKey(game.ID), gameJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *redisSessions) GetByID(ctx context.Context, id int64) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var game entity.Game
	if err = json.Unmarshal([]byte(response), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

func (that *redisSessions) List(ctx context.Context) ([]*entity.Game, error) {
	keys, err := that.client.Keys(ctx, gameKeyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list game keys: %w", err)
	}

	games := make([]*entity.Game, 0, len(keys))

	for _, key := range keys {
		response, err := that.client.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to get game %s: %w", key, err)
		}

		var game entity.Game
		if err = json.Unmarshal([]byte(response), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game %s: %w", key, err)
		}

		games = append(games, &game)
	}

	return games, nil
}

func gameKey(id int64) string {
	return gameKeyPrefix + strconv.FormatInt(id, 10)
}
