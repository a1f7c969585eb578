package service

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

// BotService - the computer opponent. It picks uniformly at random among
// the empty cells; it does not try to play well.
type BotService interface {
	SelectMove(game *entity.Game) (row, col int)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

func (that *botService) SelectMove(game *entity.Game) (int, int) {
	availableCells := game.EmptyCells()

	chosen := availableCells[rand.Intn(len(availableCells))] //nolint: gosec // it's ok

	return chosen.Row, chosen.Col
}
