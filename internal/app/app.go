// Package app wires configuration into a ready-to-play session. Both
// binaries under cmd/ start here.
package app

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/minesweeper/internal/config"
	"github.com/mitchelldurbincs/minesweeper/internal/game"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/minesweeper/internal/game/mapgen"
)

// App is a session together with the subscribers listening to it
type App struct {
	Session *game.Session
	Bus     *events.EventBus
	Stats   *game.Stats
	Preset  game.Preset
	Logger  zerolog.Logger
}

// NewLogger builds the process logger from the logging section. JSON output
// is used when logging.format is json, a console writer otherwise.
func NewLogger(cfg *config.Config, out io.Writer) zerolog.Logger {
	var logger zerolog.Logger
	if cfg.Logging.Format == "json" {
		logger = zerolog.New(out)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}
	return logger.Level(cfg.LogLevel()).With().Timestamp().Logger()
}

// NewSampler returns a sampler seeded from game.seed, or from the operating
// system when the seed is zero.
func NewSampler(seed int64) mapgen.Sampler {
	if seed == 0 {
		return mapgen.NewUniformSampler(mapgen.NewCryptoSource())
	}
	return mapgen.NewUniformSampler(mapgen.NewSeededSource(seed))
}

// New resolves the configured preset and builds the session, its bus, the
// statistics subscriber and an event logger.
func New(cfg *config.Config, logger zerolog.Logger) (*App, error) {
	preset, err := game.ResolvePreset(cfg.Game.Preset, cfg.Game.Width, cfg.Game.Height, cfg.Game.Mines)
	if err != nil {
		return nil, fmt.Errorf("resolving preset: %w", err)
	}

	bus := events.NewEventBus(logger)
	stats := game.NewStats("stats")
	bus.Subscribe(stats)

	eventLog := subscribers.NewLoggerSubscriber("event-log", logger, zerolog.DebugLevel)
	eventLog.SetDevMode(cfg.Development.VerboseLogging)
	bus.Subscribe(eventLog)

	session, err := game.NewSession(game.SessionConfig{
		Width:   preset.Width,
		Height:  preset.Height,
		Mines:   preset.Mines,
		Sampler: NewSampler(cfg.Game.Seed),
		Bus:     bus,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	logger.Info().
		Str("preset", preset.String()).
		Str("game_id", session.ID()).
		Msg("Session ready")

	return &App{Session: session, Bus: bus, Stats: stats, Preset: preset, Logger: logger}, nil
}
