package console

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"A1", 0},
		{"a3", 2},
		{"B2", 4},
		{" c1\n", 6},
		{"C3", 8},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cell, err := ParseCell(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, cell)
		})
	}

	for _, input := range []string{"", "B", "B22", "D1", "A0", "A4", "1A", "??"} {
		t.Run("Invalid "+input, func(t *testing.T) {
			_, err := ParseCell(input)

			require.ErrorIs(t, err, apperror.ErrInvalidInput)
		})
	}
}

func TestCellName(t *testing.T) {
	for cell := 0; cell < entity.BoardSize; cell++ {
		parsed, err := ParseCell(CellName(cell))

		require.NoError(t, err)
		assert.Equal(t, cell, parsed)
	}

	assert.Equal(t, "??", CellName(9))
}

func TestConsole_Render(t *testing.T) {
	// Given: a board with one mark of each side
	var out bytes.Buffer
	board := entity.NewBoard()
	board[0] = entity.MarkX
	board[5] = entity.MarkO

	// When: rendering it
	New(strings.NewReader(""), &out).Render(board)

	// Then: rows are labelled A-C and columns 1-3
	expected := "\n" +
		"   1 2 3\n" +
		"A  X . .\n" +
		"B  . . O\n" +
		"C  . . .\n"
	assert.Equal(t, expected, out.String())
}

func TestConsole_ReadMove(t *testing.T) {
	t.Run("Reads one move per line", func(t *testing.T) {
		var out bytes.Buffer
		con := New(strings.NewReader("b2\nZ9\n"), &out)

		cell, err := con.ReadMove(context.Background(), entity.MarkX)
		require.NoError(t, err)
		assert.Equal(t, 4, cell)
		assert.Equal(t, "X to move (e.g. B2): ", out.String())

		_, err = con.ReadMove(context.Background(), entity.MarkO)
		require.ErrorIs(t, err, apperror.ErrInvalidInput)
	})

	t.Run("Returns io.EOF when input ends", func(t *testing.T) {
		con := New(strings.NewReader(""), io.Discard)

		_, err := con.ReadMove(context.Background(), entity.MarkX)

		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Stops on a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New(strings.NewReader("A1\n"), io.Discard).ReadMove(ctx, entity.MarkX)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestConsole_Reports(t *testing.T) {
	var out bytes.Buffer
	con := New(strings.NewReader(""), &out)

	con.ReportBotMove(entity.MarkO, 4)
	con.ReportError(fmt.Errorf("%w: cell 4", apperror.ErrCellOccupied))
	con.ReportOutcome(entity.Win(entity.MarkX))
	con.ReportOutcome(entity.Draw())

	assert.Equal(t, "O plays B2\n"+
		"That cell is already taken, try another one.\n"+
		"X wins!\n"+
		"It's a draw!\n", out.String())
}
