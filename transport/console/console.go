package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	rowNames    = "ABC"
	columnNames = "123"
)

var markSymbols = map[entity.Mark]string{
	entity.EmptyCell: ".",
	entity.MarkX:     "X",
	entity.MarkO:     "O",
}

// Console reads moves from in and writes the board and messages to out.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Symbol - returns the printable symbol of a mark.
func Symbol(mark entity.Mark) string {
	return markSymbols[mark]
}

// ParseCell - converts a cell name such as "B2" (row letter, column digit) to a board index.
func ParseCell(input string) (int, error) {
	name := strings.ToUpper(strings.TrimSpace(input))
	if len(name) != 2 {
		return 0, fmt.Errorf("%w: %q is not a cell name like B2", apperror.ErrInvalidInput, input)
	}

	row := strings.IndexByte(rowNames, name[0])
	col := strings.IndexByte(columnNames, name[1])
	if row < 0 || col < 0 {
		return 0, fmt.Errorf("%w: %q is outside A1..C3", apperror.ErrInvalidInput, input)
	}

	return row*len(columnNames) + col, nil
}

// CellName - is the inverse of ParseCell.
func CellName(cell int) string {
	if cell < 0 || cell >= entity.BoardSize {
		return "??"
	}

	return string([]byte{rowNames[cell/len(columnNames)], columnNames[cell%len(columnNames)]})
}

func (that *Console) Render(board entity.Board) {
	var sb strings.Builder

	sb.WriteString("\n  ")
	for i := 0; i < len(columnNames); i++ {
		sb.WriteByte(' ')
		sb.WriteByte(columnNames[i])
	}
	sb.WriteByte('\n')

	cells := board.Cells()
	for row := 0; row < len(rowNames); row++ {
		sb.WriteByte(rowNames[row])
		sb.WriteByte(' ')
		for col := 0; col < len(columnNames); col++ {
			sb.WriteByte(' ')
			sb.WriteString(Symbol(cells[row*len(columnNames)+col]))
		}
		sb.WriteByte('\n')
	}

	fmt.Fprint(that.out, sb.String())
}

// ReadMove - prompts the player and reads one cell name per line.
func (that *Console) ReadMove(ctx context.Context, mark entity.Mark) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	fmt.Fprintf(that.out, "%s to move (e.g. B2): ", Symbol(mark))

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return 0, fmt.Errorf("failed to read move: %w", err)
		}

		return 0, io.EOF
	}

	return ParseCell(that.in.Text())
}

func (that *Console) ReportBotMove(mark entity.Mark, cell int) {
	fmt.Fprintf(that.out, "%s plays %s\n", Symbol(mark), CellName(cell))
}

func (that *Console) ReportError(err error) {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		fmt.Fprintln(that.out, "That cell is already taken, try another one.")
	case errors.Is(err, apperror.ErrInvalidInput), errors.Is(err, apperror.ErrInvalidCell):
		fmt.Fprintln(that.out, "Enter a row letter A-C followed by a column digit 1-3, e.g. B2.")
	default:
		fmt.Fprintf(that.out, "Error: %v\n", err)
	}
}

func (that *Console) ReportOutcome(outcome entity.Outcome) {
	switch {
	case outcome.IsDraw():
		fmt.Fprintln(that.out, "It's a draw!")
	case outcome.IsFinished():
		fmt.Fprintf(that.out, "%s wins!\n", Symbol(outcome.Winner()))
	}
}
