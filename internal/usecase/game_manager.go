package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/coder/quartz"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
)

type sessionRepo interface {
	NextID(ctx context.Context) (int64, error)
	Save(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id int64) (*entity.Game, error)
	List(ctx context.Context) ([]*entity.Game, error)
}

// GameManager - the operations exposed to the transport layers. Moves for
// one game id are serialized through a per-id mutex; different ids proceed
// in parallel.
type GameManager struct {
	logger   *slog.Logger
	sessions sessionRepo
	bot      tictactoe.MoveSelector
	clock    quartz.Clock

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewGameManager(logger *slog.Logger, sessions sessionRepo, bot tictactoe.MoveSelector, clock quartz.Clock) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game-manager"),
		sessions: sessions,
		bot:      bot,
		clock:    clock,
		locks:    make(map[int64]*sync.Mutex),
	}
}

// CreateSession - allocates the next identifier and stores a fresh game.
func (that *GameManager) CreateSession(ctx context.Context) (*entity.Game, error) {
	id, err := that.sessions.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate game id: %w", err)
	}

	game := entity.NewGame(id, that.clock.Now().UTC())

	if err = that.sessions.Save(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save new game: %w", err)
	}

	that.logger.Info("created game", "gameID", game.ID)

	return game, nil
}

// GetSession - looks up one game by id.
func (that *GameManager) GetSession(ctx context.Context, id int64) (*entity.Game, error) {
	game, err := that.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// ListSessions - summaries of all games, ordered by creation time ascending.
func (that *GameManager) ListSessions(ctx context.Context) ([]entity.Summary, error) {
	games, err := that.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	sort.Slice(games, func(i, j int) bool {
		if games[i].CreatedAt.Equal(games[j].CreatedAt) {
			return games[i].ID < games[j].ID
		}
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})

	summaries := make([]entity.Summary, 0, len(games))
	for _, game := range games {
		summaries = append(summaries, game.Summary())
	}

	return summaries, nil
}

// MakeMove - one full round against the computer: the human move, then the
// computer's reply unless the human move ended the game.
func (that *GameManager) MakeMove(ctx context.Context, id int64, row, col int) (*entity.Game, error) {
	lock := that.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	game, err := that.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = tictactoe.PlayRound(game, that.bot, row, col, that.clock.Now().UTC()); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.sessions.Save(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		that.logger.Info("game finished", "gameID", game.ID, "status", game.Status)
	}

	return game, nil
}

// ListMoves - the game's move log, ordered by move number ascending.
func (that *GameManager) ListMoves(ctx context.Context, id int64) ([]entity.Move, error) {
	game, err := that.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	moves := make([]entity.Move, len(game.Moves))
	copy(moves, game.Moves)

	sort.Slice(moves, func(i, j int) bool {
		return moves[i].Number < moves[j].Number
	})

	return moves, nil
}

func (that *GameManager) lockFor(id int64) *sync.Mutex {
	that.mu.Lock()
	defer that.mu.Unlock()

	lock, ok := that.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		that.locks[id] = lock
	}

	return lock
}
