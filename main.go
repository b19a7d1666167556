package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	app "github.com/rocketscienceinc/tictactoe-cli/internal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

// main - is the entry point of the application. It parses flags, initializes the configuration and logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	cliApp := &cli.App{
		Name:        "tictactoe",
		Usage:       "play tic-tac-toe in the terminal against a perfect-play bot",
		Description: config.Usage(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yml",
				Usage:   "path to the YAML config file; environment variables are used when it is missing",
			},
			&cli.StringFlag{
				Name:  "bot",
				Usage: "mark played by the bot: x, o or none (overrides the config)",
			},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func run(c *cli.Context) error {
	conf := initConfig(c.String("config"))
	if c.IsSet("bot") {
		conf.Bot = c.String("bot")
	}

	logger := initLogger(conf)

	return app.RunApp(logger, conf)
}

// initialize config.
func initConfig(path string) *config.Config {
	if filepath.IsAbs(path) {
		return config.MustLoad(path)
	}

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, path))
}

// initialize logger. Stdout carries the board, so logs go to stderr.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
