package tictactoe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

// fixedSelector - deterministic MoveSelector that plays a scripted sequence
// of cells; running past the script fails the test via the slice bounds.
type fixedSelector struct {
	cells []entity.Cell
	next  int
}

func (that *fixedSelector) SelectMove(_ *entity.Game) (int, int) {
	cell := that.cells[that.next]
	that.next++
	return cell.Row, cell.Col
}

var testTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestApplyHumanMove(t *testing.T) {
	t.Run("Rejects coordinates outside the board", func(t *testing.T) {
		// Given: a fresh game
		game := entity.NewGame(1, testTime)

		// When: playing outside the board
		for _, cell := range []entity.Cell{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 3, Col: 3}} {
			err := ApplyHumanMove(game, cell.Row, cell.Col, testTime)

			// Then: the move is rejected and nothing changed
			require.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
		}

		assert.Empty(t, game.Moves)
		assert.Len(t, game.EmptyCells(), 9)
	})

	t.Run("Rejects an occupied cell without mutating the board", func(t *testing.T) {
		// Given: a game where (1, 1) is already taken
		game := entity.NewGame(1, testTime)
		require.NoError(t, ApplyHumanMove(game, 1, 1, testTime))

		// When: the human plays (1, 1) again
		err := ApplyHumanMove(game, 1, 1, testTime)

		// Then: the move is rejected and the log is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Len(t, game.Moves, 1)
		assert.Equal(t, entity.MarkHuman, game.Board[1][1])
	})

	t.Run("Rejects moves on a finished game", func(t *testing.T) {
		// Given: a finished game
		game := entity.NewGame(1, testTime)
		game.Status = entity.StatusDraw

		// When: the human tries to move anyway
		err := ApplyHumanMove(game, 0, 0, testTime)

		// Then: the move is rejected
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Empty(t, game.Moves)
	})

	t.Run("Applies the move and records it", func(t *testing.T) {
		// Given: a fresh game
		game := entity.NewGame(1, testTime)
		moveTime := testTime.Add(time.Minute)

		// When: the human plays (0, 2)
		err := ApplyHumanMove(game, 0, 2, moveTime)

		// Then: the mark is placed, the move logged and the timestamps set
		require.NoError(t, err)
		assert.Equal(t, entity.MarkHuman, game.Board[0][2])
		require.Len(t, game.Moves, 1)
		assert.Equal(t, entity.Move{Number: 1, Player: entity.PlayerHuman, Row: 0, Col: 2, Timestamp: moveTime}, game.Moves[0])
		assert.Equal(t, moveTime, game.UpdatedAt)
		assert.Equal(t, entity.StatusInProgress, game.Status)
	})
}

func TestApplyComputerMove(t *testing.T) {
	t.Run("Plays the selected cell", func(t *testing.T) {
		// Given: a fresh game and a selector scripted to play (1, 1)
		game := entity.NewGame(1, testTime)
		selector := &fixedSelector{cells: []entity.Cell{{Row: 1, Col: 1}}}

		// When: the computer moves
		ApplyComputerMove(game, selector, testTime)

		// Then: the computer mark lands on the selected cell
		assert.Equal(t, entity.MarkComputer, game.Board[1][1])
		require.Len(t, game.Moves, 1)
		assert.Equal(t, entity.PlayerComputer, game.Moves[0].Player)
	})

	t.Run("Is a no-op on a full board", func(t *testing.T) {
		// Given: a full drawn board and a selector that must not be consulted
		game := entity.NewGame(1, testTime)
		game.Board = [entity.BoardSize][entity.BoardSize]string{
			{entity.MarkHuman, entity.MarkComputer, entity.MarkHuman},
			{entity.MarkHuman, entity.MarkComputer, entity.MarkComputer},
			{entity.MarkComputer, entity.MarkHuman, entity.MarkHuman},
		}
		game.UpdateGameState()
		selector := &fixedSelector{}

		// When: the computer is asked to move
		ApplyComputerMove(game, selector, testTime)

		// Then: nothing happened
		assert.Empty(t, game.Moves)
		assert.Equal(t, 0, selector.next)
	})
}

func TestPlayRound(t *testing.T) {
	t.Run("One round is a human move followed by a computer move", func(t *testing.T) {
		// Given: a fresh game and a selector scripted to answer (1, 1)
		game := entity.NewGame(1, testTime)
		selector := &fixedSelector{cells: []entity.Cell{{Row: 1, Col: 1}}}

		// When: playing one round at (0, 0)
		err := PlayRound(game, selector, 0, 0, testTime)

		// Then: two moves were applied, numbered densely and alternating
		require.NoError(t, err)
		require.Len(t, game.Moves, 2)
		assert.Equal(t, 1, game.Moves[0].Number)
		assert.Equal(t, entity.PlayerHuman, game.Moves[0].Player)
		assert.Equal(t, 2, game.Moves[1].Number)
		assert.Equal(t, entity.PlayerComputer, game.Moves[1].Player)
		assert.Equal(t, entity.StatusInProgress, game.Status)
	})

	t.Run("Propagates human move failures unchanged", func(t *testing.T) {
		// Given: a fresh game
		game := entity.NewGame(1, testTime)
		selector := &fixedSelector{}

		// When: playing an out-of-range round
		err := PlayRound(game, selector, 5, 5, testTime)

		// Then: the validation error comes through and no computer move ran
		require.ErrorIs(t, err, apperror.ErrInvalidCoordinate)
		assert.Empty(t, game.Moves)
		assert.Equal(t, 0, selector.next)
	})

	t.Run("A winning human move ends the round without a computer reply", func(t *testing.T) {
		// Given: a game where the human already holds (0,0) and (0,1)
		game := entity.NewGame(1, testTime)
		selector := &fixedSelector{cells: []entity.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}}}
		require.NoError(t, PlayRound(game, selector, 0, 0, testTime))
		require.NoError(t, PlayRound(game, selector, 0, 1, testTime))

		// When: the human completes the top row
		err := PlayRound(game, selector, 0, 2, testTime)

		// Then: the game is won with exactly five moves, the last one human
		require.NoError(t, err)
		assert.Equal(t, entity.StatusHumanWon, game.Status)
		assert.Equal(t, entity.PlayerHuman, game.Winner)
		require.Len(t, game.Moves, 5)
		assert.Equal(t, entity.PlayerHuman, game.Moves[4].Player)
	})

	t.Run("Rejects rounds on a finished game and keeps the board intact", func(t *testing.T) {
		// Given: a game the human already won
		game := entity.NewGame(1, testTime)
		selector := &fixedSelector{cells: []entity.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}}}
		require.NoError(t, PlayRound(game, selector, 0, 0, testTime))
		require.NoError(t, PlayRound(game, selector, 0, 1, testTime))
		require.NoError(t, PlayRound(game, selector, 0, 2, testTime))
		boardBefore := game.Board

		// When: playing another round
		err := PlayRound(game, selector, 2, 2, testTime)

		// Then: the round is rejected and the board unchanged
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, boardBefore, game.Board)
		assert.Len(t, game.Moves, 5)
	})

	t.Run("A full game without a line ends in a draw with nine moves", func(t *testing.T) {
		// Given: scripted computer replies that never complete a line
		game := entity.NewGame(1, testTime)
		selector := &fixedSelector{cells: []entity.Cell{
			{Row: 0, Col: 1},
			{Row: 1, Col: 1},
			{Row: 1, Col: 2},
			{Row: 2, Col: 0},
		}}

		// When: the human fills the remaining cells round by round
		require.NoError(t, PlayRound(game, selector, 0, 0, testTime))
		require.NoError(t, PlayRound(game, selector, 0, 2, testTime))
		require.NoError(t, PlayRound(game, selector, 1, 0, testTime))
		require.NoError(t, PlayRound(game, selector, 2, 1, testTime))
		require.NoError(t, PlayRound(game, selector, 2, 2, testTime))

		// Then: the game is drawn with a full move log alternating players
		assert.Equal(t, entity.StatusDraw, game.Status)
		assert.Empty(t, game.Winner)
		require.Len(t, game.Moves, 9)
		for i, move := range game.Moves {
			assert.Equal(t, i+1, move.Number)
			if i%2 == 0 {
				assert.Equal(t, entity.PlayerHuman, move.Player)
			} else {
				assert.Equal(t, entity.PlayerComputer, move.Player)
			}
		}
	})
}
