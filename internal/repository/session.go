package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

// SessionRepository - the session registry. Identifiers start at 1, are
// strictly increasing and never reused.
type SessionRepository interface {
	NextID(ctx context.Context) (int64, error)
	Save(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id int64) (*entity.Game, error)
	List(ctx context.Context) ([]*entity.Game, error)
}

type memorySessions struct {
	mu     sync.RWMutex
	lastID int64
	games  map[int64]*entity.Game
}

// NewMemoryRepository - in-memory registry; sessions live for the lifetime
// of the process.
func NewMemoryRepository() SessionRepository {
	return &memorySessions{
		games: make(map[int64]*entity.Game),
	}
}

func (that *memorySessions) NextID(_ context.Context) (int64, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.lastID++

	return that.lastID, nil
}

// Save - stores a copy, so later mutations of the argument are not visible
// until the next Save.
func (that *memorySessions) Save(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = game.Clone()

	return nil
}

func (that *memorySessions) GetByID(_ context.Context, id int64) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}

	return game.Clone(), nil
}

func (that *memorySessions) List(_ context.Context) ([]*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	games := make([]*entity.Game, 0, len(that.games))
	for _, game := range that.games {
		games = append(games, game.Clone())
	}

	return games, nil
}
