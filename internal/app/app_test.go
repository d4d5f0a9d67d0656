package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/minesweeper/internal/config"
	"github.com/mitchelldurbincs/minesweeper/internal/game"
	"github.com/mitchelldurbincs/minesweeper/internal/testutil"
)

func testConfig() *config.Config {
	return &config.Config{
		Game:    config.GameConfig{Preset: "custom", Width: 5, Height: 4, Mines: 3, Seed: 42},
		Logging: config.LoggingConfig{Level: "info", Format: "json"},
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(testConfig(), &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("k", "v").Msg("shown")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "exactly one JSON line")
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "v", entry["k"])
	assert.Contains(t, entry, "time")
}

func TestNewLoggerConsoleVerbose(t *testing.T) {
	cfg := testConfig()
	cfg.Logging.Format = "console"
	cfg.Development.VerboseLogging = true

	var buf bytes.Buffer
	logger := NewLogger(cfg, &buf)
	logger.Debug().Msg("visible in verbose mode")

	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	assert.Contains(t, buf.String(), "visible in verbose mode")
}

func TestNewSamplerSeeded(t *testing.T) {
	a, b := NewSampler(7), NewSampler(7)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.NotNil(t, NewSampler(0))
}

func TestNew(t *testing.T) {
	a, err := New(testConfig(), testutil.NopLogger())
	require.NoError(t, err)

	assert.Equal(t, game.Preset{Name: "custom", Width: 5, Height: 4, Mines: 3}, a.Preset)
	assert.Equal(t, 5, a.Session.Width())
	assert.Equal(t, 4, a.Session.Height())
	assert.Equal(t, 3, a.Session.MinesRemaining())

	_, err = a.Session.Reveal(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, a.Stats.ForShape(game.Shape{Width: 5, Height: 4, Mines: 3}).Played)
}

func TestNewSameSeedSameBoard(t *testing.T) {
	first, err := New(testConfig(), testutil.NopLogger())
	require.NoError(t, err)
	second, err := New(testConfig(), testutil.NopLogger())
	require.NoError(t, err)

	_, err = first.Session.Reveal(2, 2)
	require.NoError(t, err)
	_, err = second.Session.Reveal(2, 2)
	require.NoError(t, err)

	assert.Equal(t, first.Session.Board().C, second.Session.Board().C)
}

func TestNewRejectsUnknownPreset(t *testing.T) {
	cfg := testConfig()
	cfg.Game.Preset = "nightmare"

	_, err := New(cfg, testutil.NopLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrUnknownPreset)
}

func TestNewHonoursLoggingLevel(t *testing.T) {
	global := log.Logger
	defer func() { log.Logger = global }()
	var globalBuf bytes.Buffer
	log.Logger = zerolog.New(&globalBuf)

	var buf bytes.Buffer
	a, err := New(testConfig(), NewLogger(testConfig(), &buf))
	require.NoError(t, err)

	_, err = a.Session.Reveal(0, 0)
	require.NoError(t, err)
	_, err = a.Session.ToggleFlag(4, 3)
	require.NoError(t, err)

	assert.Empty(t, globalBuf.String(), "nothing goes through the global logger")
	assert.Contains(t, buf.String(), "Session ready")
	assert.NotContains(t, buf.String(), `"level":"debug"`)
	assert.NotContains(t, buf.String(), "event_bus")
}
