package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBot() BotService {
	return NewBotService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Takes the winning cell", func(t *testing.T) {
		// Given: X holds cells 0 and 1, O holds 3 and 4
		board := entity.Board{
			entity.MarkX, entity.MarkX, entity.EmptyCell,
			entity.MarkO, entity.MarkO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		// When: the bot makes a turn
		cell, err := newTestBot().MakeTurn(&board)

		// Then: X completes the top row and wins
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
		assert.Equal(t, entity.Win(entity.MarkX), board.Outcome())
	})

	t.Run("Plays for the side to move", func(t *testing.T) {
		// Given: X opened in the corner
		board := entity.NewBoard()
		require.NoError(t, board.ApplyMove(0))

		// When: the bot answers
		cell, err := newTestBot().MakeTurn(&board)

		// Then: O takes the centre
		require.NoError(t, err)
		assert.Equal(t, 4, cell)
		assert.Equal(t, entity.MarkO, board[4])
		assert.Equal(t, entity.MarkX, board.PlayerToMove())
	})

	t.Run("Returns ErrNoAvailableMoves on a finished board", func(t *testing.T) {
		// Given: a drawn board
		board := entity.Board{
			entity.MarkX, entity.MarkO, entity.MarkX,
			entity.MarkX, entity.MarkO, entity.MarkO,
			entity.MarkO, entity.MarkX, entity.MarkX,
		}
		before := board

		// When: the bot is asked to move
		cell, err := newTestBot().MakeTurn(&board)

		// Then: nothing is played
		require.ErrorIs(t, err, ErrNoAvailableMoves)
		assert.Equal(t, tictactoe.NoMove, cell)
		assert.Equal(t, before, board)
	})
}
