package entity

import "time"

const (
	StatusInProgress  = "in_progress"
	StatusHumanWon    = "human_won"
	StatusComputerWon = "computer_won"
	StatusDraw        = "draw"

	PlayerHuman    = "human"
	PlayerComputer = "computer"

	MarkHuman    = "X"
	MarkComputer = "O"

	EmptyCell = ""

	BoardSize = 3
)

// WinLines - the 8 winning combinations: 3 rows, 3 columns, 2 diagonals.
var WinLines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Cell - a board coordinate.
type Cell struct {
	Row int
	Col int
}

// Move - one applied move; records are append-only and never mutated.
type Move struct {
	Number    int       `json:"move_number"`
	Player    string    `json:"player"`
	Row       int       `json:"x"`
	Col       int       `json:"y"`
	Timestamp time.Time `json:"timestamp"`
}

type Game struct {
	ID        int64                        `json:"id"`
	Board     [BoardSize][BoardSize]string `json:"board"`
	Moves     []Move                       `json:"moves"`
	Status    string                       `json:"status"`
	Winner    string                       `json:"winner,omitempty"`
	CreatedAt time.Time                    `json:"created_at"`
	UpdatedAt time.Time                    `json:"updated_at"`
}

func NewGame(id int64, now time.Time) *Game {
	return &Game{
		ID:        id,
		Status:    StatusInProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// InRange - reports whether the coordinates lie on the board.
func InRange(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func (that *Game) IsOccupied(row, col int) bool {
	return that.Board[row][col] != EmptyCell
}

// PlaceMark - sets the cell to the given mark. Callers must have checked
// that the cell is empty; an occupied cell never reverts.
func (that *Game) PlaceMark(row, col int, mark string) {
	that.Board[row][col] = mark
}

// EmptyCells - all empty cells in row-major order.
func (that *Game) EmptyCells() []Cell {
	cells := make([]Cell, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if that.Board[row][col] == EmptyCell {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

// HasLine - reports whether any winning line is fully held by the mark.
func (that *Game) HasLine(mark string) bool {
	for _, line := range WinLines {
		a := that.Board[line[0][0]][line[0][1]]
		b := that.Board[line[1][0]][line[1][1]]
		c := that.Board[line[2][0]][line[2][1]]
		if a == mark && b == mark && c == mark {
			return true
		}
	}
	return false
}

// UpdateGameState - recomputes status and winner from the board. The human
// line is checked before the computer line, then a full board is a draw.
func (that *Game) UpdateGameState() {
	switch {
	case that.HasLine(MarkHuman):
		that.Status = StatusHumanWon
		that.Winner = PlayerHuman
	case that.HasLine(MarkComputer):
		that.Status = StatusComputerWon
		that.Winner = PlayerComputer
	case len(that.EmptyCells()) == 0:
		that.Status = StatusDraw
		that.Winner = ""
	default:
		that.Status = StatusInProgress
		that.Winner = ""
	}
}

func (that *Game) IsFinished() bool {
	return that.Status != StatusInProgress
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

// Clone - deep copy; the move log is copied so the original stays isolated.
func (that *Game) Clone() *Game {
	clone := *that
	clone.Moves = make([]Move, len(that.Moves))
	copy(clone.Moves, that.Moves)
	return &clone
}

// Summary - the listing view: identifier, creation time and status only.
type Summary struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `json:"status"`
}

func (that *Game) Summary() Summary {
	return Summary{
		ID:        that.ID,
		CreatedAt: that.CreatedAt,
		Status:    that.Status,
	}
}
