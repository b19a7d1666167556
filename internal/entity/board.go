package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Mark is the content of a single cell.
type Mark uint8

const (
	EmptyCell Mark = iota
	MarkX
	MarkO
)

// BoardSize is the number of cells on the board.
const BoardSize = 9

// WinCombos lists every winning line: diagonals first, then rows, then columns.
var WinCombos = [...][3]int{
	{0, 4, 8},
	{2, 4, 6},
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
}

// Board is the 3x3 grid in row-major order (index = row*3 + col).
// It is a value type: assigning a Board copies every cell.
type Board [BoardSize]Mark

func NewBoard() Board {
	return Board{}
}

// Cells - returns a copy of all marks, for rendering.
func (that Board) Cells() [BoardSize]Mark {
	return that
}

func (that Board) Cell(index int) (Mark, error) {
	if index < 0 || index >= BoardSize {
		return EmptyCell, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	return that[index], nil
}

// EmptyCells - returns the indexes of unclaimed cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, mark := range that {
		if mark == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// Outcome - evaluates the board. The result is never cached.
func (that Board) Outcome() Outcome {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return Win(a)
		}
	}

	// the game will continue until all the squares are full
	for _, mark := range that {
		if mark == EmptyCell {
			return InProgress()
		}
	}

	return Draw()
}

// PlayerToMove - X moves first, so X is to move whenever the counts are equal.
func (that Board) PlayerToMove() Mark {
	var xCount, oCount int
	for _, mark := range that {
		switch mark {
		case MarkX:
			xCount++
		case MarkO:
			oCount++
		}
	}

	if xCount == oCount {
		return MarkX
	}

	return MarkO
}

// ApplyMove - claims the cell for the player to move. The board is left untouched on error.
func (that *Board) ApplyMove(cell int) error {
	if that.Outcome().IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that[cell] = that.PlayerToMove()

	return nil
}
