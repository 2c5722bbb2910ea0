package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file with custom values
		path := writeConfig(t, `
log-level: debug
board:
  size: 8
  allow-touching: true
  placement-attempts: 50
  fleet: [2, 3]
match:
  first-player: Alice
  second-player: Bot
  turn-delay: 500ms
  seed: 42
`)

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: the values match the file
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 8, conf.Board.Size)
		assert.True(t, conf.Board.AllowTouching)
		assert.Equal(t, 50, conf.Board.PlacementAttempts)
		assert.Equal(t, []int{2, 3}, conf.Board.Fleet)
		assert.Equal(t, "Alice", conf.Match.FirstPlayer)
		assert.Equal(t, "Bot", conf.Match.SecondPlayer)
		assert.Equal(t, 500*time.Millisecond, conf.Match.TurnDelay)
		assert.Equal(t, int64(42), conf.Match.RandomSeed())
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: info\n")

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: the defaults describe the classic game
		assert.Equal(t, 10, conf.Board.Size)
		assert.False(t, conf.Board.AllowTouching)
		assert.Equal(t, 1000, conf.Board.PlacementAttempts)
		assert.Equal(t, []int{3, 3, 3, 4, 4, 4}, conf.Board.Fleet)
		assert.Equal(t, "Player", conf.Match.FirstPlayer)
		assert.Equal(t, "Computer", conf.Match.SecondPlayer)
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			LogLevel: "info",
			Board:    Board{Size: 10, PlacementAttempts: 1000, Fleet: []int{3, 4}},
		}
	}

	t.Run("Accepts a valid config", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("Rejects invalid boards and fleets", func(t *testing.T) {
		cases := map[string]func(*Config){
			"unknown log level":  func(c *Config) { c.LogLevel = "verbose" },
			"zero size":          func(c *Config) { c.Board.Size = 0 },
			"negative attempts":  func(c *Config) { c.Board.PlacementAttempts = -1 },
			"empty fleet":        func(c *Config) { c.Board.Fleet = nil },
			"zero length vessel": func(c *Config) { c.Board.Fleet = []int{3, 0} },
			"fleet too large":    func(c *Config) { c.Board.Size = 2; c.Board.Fleet = []int{3, 2} },
		}

		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				// Given: a config broken in one way
				conf := valid()
				mutate(conf)

				// When: it is validated
				err := conf.Validate()

				// Then: ErrInvalidConfig is returned
				require.ErrorIs(t, err, ErrInvalidConfig)
			})
		}
	})
}

func TestConfig_SlogLevel(t *testing.T) {
	t.Run("Maps level names", func(t *testing.T) {
		cases := map[string]slog.Level{
			"debug": slog.LevelDebug,
			"info":  slog.LevelInfo,
			"warn":  slog.LevelWarn,
			"error": slog.LevelError,
		}

		for name, expected := range cases {
			// When: the level is parsed
			level, err := (&Config{LogLevel: name}).SlogLevel()

			// Then: it matches the slog level
			require.NoError(t, err)
			assert.Equal(t, expected, level)
		}
	})

	t.Run("Rejects unknown names", func(t *testing.T) {
		// When: an unknown level is parsed
		_, err := (&Config{LogLevel: "loud"}).SlogLevel()

		// Then: ErrInvalidConfig is returned
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}
