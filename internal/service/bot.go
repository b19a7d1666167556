package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(board *entity.Board) (int, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn - plays the optimal move for the player to move and returns the claimed cell.
func (that *botService) MakeTurn(board *entity.Board) (int, error) {
	mover := board.PlayerToMove()

	cell, score := tictactoe.BestMove(*board)
	if cell == tictactoe.NoMove {
		return tictactoe.NoMove, ErrNoAvailableMoves
	}

	if err := board.ApplyMove(cell); err != nil {
		return tictactoe.NoMove, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot made turn", "mover", mover, "cell", cell, "score", score)

	return cell, nil
}
