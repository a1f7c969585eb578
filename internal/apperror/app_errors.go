package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCoordinate = errors.New("coordinates must be between 0 and 2")
)
