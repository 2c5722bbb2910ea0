package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board    Board  `yaml:"board"`
	Match    Match  `yaml:"match"`
}

type Board struct {
	Size              int   `yaml:"size" env:"BOARD_SIZE" env-default:"10"`
	AllowTouching     bool  `yaml:"allow-touching" env:"BOARD_ALLOW_TOUCHING"`
	PlacementAttempts int   `yaml:"placement-attempts" env:"BOARD_PLACEMENT_ATTEMPTS" env-default:"1000"`
	Fleet             []int `yaml:"fleet" env:"BOARD_FLEET" env-default:"3,3,3,4,4,4"`
}

type Match struct {
	FirstPlayer  string        `yaml:"first-player" env:"MATCH_FIRST_PLAYER" env-default:"Player"`
	SecondPlayer string        `yaml:"second-player" env:"MATCH_SECOND_PLAYER" env-default:"Computer"`
	TurnDelay    time.Duration `yaml:"turn-delay" env:"MATCH_TURN_DELAY" env-default:"0s"`
	Seed         int64         `yaml:"seed" env:"MATCH_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("unable to use config file: %w", err))
	}

	return config
}

func (that *Config) Validate() error {
	if _, err := that.SlogLevel(); err != nil {
		return err
	}

	if that.Board.Size < 1 {
		return fmt.Errorf("%w: board size %d", ErrInvalidConfig, that.Board.Size)
	}

	if that.Board.PlacementAttempts < 0 {
		return fmt.Errorf("%w: placement attempts %d", ErrInvalidConfig, that.Board.PlacementAttempts)
	}

	if len(that.Board.Fleet) == 0 {
		return fmt.Errorf("%w: fleet is empty", ErrInvalidConfig)
	}

	cells := 0
	for _, length := range that.Board.Fleet {
		if length <= 0 {
			return fmt.Errorf("%w: vessel length %d", ErrInvalidConfig, length)
		}

		cells += length
	}

	if cells > that.Board.Size*that.Board.Size {
		return fmt.Errorf("%w: fleet needs %d cells on a %dx%d board", ErrInvalidConfig, cells, that.Board.Size, that.Board.Size)
	}

	return nil
}

// SlogLevel parses LogLevel: debug, info, warn or error.
func (that *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(that.LogLevel)); err != nil {
		return level, fmt.Errorf("%w: log level %q", ErrInvalidConfig, that.LogLevel)
	}

	return level, nil
}

// RandomSeed returns the configured seed, or a time based one when it is zero.
func (that *Match) RandomSeed() int64 {
	if that.Seed != 0 {
		return that.Seed
	}

	return time.Now().UnixNano()
}
