package tictactoe

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

// MoveSelector - chooses the computer's next cell. Implementations are only
// consulted while the board still has empty cells.
type MoveSelector interface {
	SelectMove(game *entity.Game) (row, col int)
}

// ApplyHumanMove - validates and applies one human move: places the mark,
// appends the move record and recomputes the game status. A failed
// validation leaves the game untouched.
func ApplyHumanMove(game *entity.Game, row, col int, now time.Time) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !entity.InRange(row, col) {
		return fmt.Errorf("%w: got (%d, %d)", apperror.ErrInvalidCoordinate, row, col)
	}

	if game.IsOccupied(row, col) {
		return fmt.Errorf("%w: cell (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	applyMove(game, row, col, entity.MarkHuman, entity.PlayerHuman, now)

	return nil
}

// ApplyComputerMove - asks the selector for a cell and applies the
// computer's move. No-op when the board is full.
func ApplyComputerMove(game *entity.Game, selector MoveSelector, now time.Time) {
	if len(game.EmptyCells()) == 0 {
		return
	}

	row, col := selector.SelectMove(game)
	applyMove(game, row, col, entity.MarkComputer, entity.PlayerComputer, now)
}

// PlayRound - one full round: the human move followed, if the game is still
// in progress, by the computer's reply.
func PlayRound(game *entity.Game, selector MoveSelector, row, col int, now time.Time) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := ApplyHumanMove(game, row, col, now); err != nil {
		return err
	}

	if game.IsFinished() {
		return nil
	}

	ApplyComputerMove(game, selector, now)

	return nil
}

// applyMove - board mutation and move-log append happen together, followed
// by the status recomputation.
func applyMove(game *entity.Game, row, col int, mark, player string, now time.Time) {
	game.PlaceMark(row, col, mark)

	game.Moves = append(game.Moves, entity.Move{
		Number:    len(game.Moves) + 1,
		Player:    player,
		Row:       row,
		Col:       col,
		Timestamp: now,
	})

	game.UpdatedAt = now
	game.UpdateGameState()
}
