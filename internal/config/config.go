package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	BotX    = "x"
	BotO    = "o"
	BotNone = "none"
)

var ErrUnknownBotOption = errors.New("unknown bot option")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn" env-description:"debug, info, warn or error"`
	Bot      string `yaml:"bot" env:"TICTACTOE_BOT" env-default:"o" env-description:"mark played by the bot: x, o or none"`
}

// MustLoad - load all configurations in config.yml file, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("unable to stat config file: %w", err)
		}

		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// BotMark - returns the mark controlled by the bot, or EmptyCell when both players are human.
func (that *Config) BotMark() (entity.Mark, error) {
	switch strings.ToLower(strings.TrimSpace(that.Bot)) {
	case BotX:
		return entity.MarkX, nil
	case BotO:
		return entity.MarkO, nil
	case BotNone:
		return entity.EmptyCell, nil
	default:
		return entity.EmptyCell, fmt.Errorf("%w: %q", ErrUnknownBotOption, that.Bot)
	}
}

// Usage - describes the environment variables understood by Load.
func Usage() string {
	header := "Environment variables:"

	description, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return header
	}

	return description
}
