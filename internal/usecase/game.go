package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type moveReader interface {
	ReadMove(ctx context.Context, mark entity.Mark) (int, error)
}

type gameView interface {
	Render(board entity.Board)
	ReportBotMove(mark entity.Mark, cell int)
	ReportError(err error)
	ReportOutcome(outcome entity.Outcome)
}

type botService interface {
	MakeTurn(board *entity.Board) (int, error)
}

type GameUseCase struct {
	logger  *slog.Logger
	bot     botService
	reader  moveReader
	view    gameView
	botMark entity.Mark
}

// NewGameUseCase - botMark is the mark played by the bot; EmptyCell means two human players.
func NewGameUseCase(logger *slog.Logger, bot botService, reader moveReader, view gameView, botMark entity.Mark) *GameUseCase {
	return &GameUseCase{
		logger:  logger,
		bot:     bot,
		reader:  reader,
		view:    view,
		botMark: botMark,
	}
}

// Play - runs one game from the empty board until it is won or drawn.
func (that *GameUseCase) Play(ctx context.Context) (entity.Outcome, error) {
	log := that.logger.With("method", "Play", "gameID", uuid.NewString())
	log.Info("game started", "botMark", that.botMark)

	board := entity.NewBoard()

	for {
		that.view.Render(board)

		outcome := board.Outcome()
		if outcome.IsFinished() {
			that.view.ReportOutcome(outcome)
			log.Info("game finished", "winner", outcome.Winner(), "draw", outcome.IsDraw())

			return outcome, nil
		}

		if err := ctx.Err(); err != nil {
			return outcome, fmt.Errorf("game interrupted: %w", err)
		}

		if err := that.makeTurn(ctx, &board); err != nil {
			return board.Outcome(), err
		}
	}
}

func (that *GameUseCase) makeTurn(ctx context.Context, board *entity.Board) error {
	mover := board.PlayerToMove()

	if mover == that.botMark {
		cell, err := that.bot.MakeTurn(board)
		if err != nil {
			return fmt.Errorf("failed to make bot turn: %w", err)
		}

		that.view.ReportBotMove(mover, cell)

		return nil
	}

	for {
		cell, err := that.reader.ReadMove(ctx, mover)
		if err == nil {
			err = board.ApplyMove(cell)
		}

		switch {
		case err == nil:
			return nil
		case isRecoverable(err):
			that.view.ReportError(err)
		default:
			return fmt.Errorf("failed to make turn: %w", err)
		}
	}
}

// isRecoverable reports errors after which the player is asked again.
func isRecoverable(err error) bool {
	return errors.Is(err, apperror.ErrInvalidInput) ||
		errors.Is(err, apperror.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrCellOccupied)
}
