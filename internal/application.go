package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-cli/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	botMark, err := conf.BotMark()
	if err != nil {
		return fmt.Errorf("invalid bot option: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	con := console.New(os.Stdin, os.Stdout)
	botService := service.NewBotService(logger)
	gameUseCase := usecase.NewGameUseCase(logger, botService, con, con, botMark)

	// the console blocks on stdin, so the game runs beside the signal wait
	gameErrCh := make(chan error, 1)
	go func() {
		_, playErr := gameUseCase.Play(ctx)
		gameErrCh <- playErr
	}()

	select {
	case err = <-gameErrCh:
		if err != nil {
			return fmt.Errorf("game error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
