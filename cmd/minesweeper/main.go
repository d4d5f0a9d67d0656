package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/minesweeper/internal/app"
	"github.com/mitchelldurbincs/minesweeper/internal/config"
	"github.com/mitchelldurbincs/minesweeper/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", os.Getenv("MSW_ENV"), "Environment overlay (loads config.<env>.yaml)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}
	cfg := config.Get()

	logger := app.NewLogger(cfg, os.Stderr)
	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create session")
	}

	uiGame, err := ui.NewUIGame(a.Session, uiOptions(cfg), logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create window")
	}

	config.WatchConfig(func(c *config.Config) {
		logger.Info().Msg("Config reloaded")
		uiGame.Reconfigure(uiOptions(c))
	}, func(err error) {
		logger.Warn().Err(err).Msg("Ignoring invalid config change")
	})

	ebiten.SetWindowSize(uiGame.WindowSize())
	ebiten.SetWindowTitle(uiOptions(cfg).Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(uiGame); err != nil {
		logger.Fatal().Err(err).Msg("Game loop failed")
	}

	totals := a.Stats.Totals()
	logger.Info().
		Int("played", totals.Played).
		Int("won", totals.Won).
		Int("lost", totals.Lost).
		Msg("Goodbye")
}

func uiOptions(cfg *config.Config) ui.Options {
	return ui.Options{
		Title:        cfg.UI.Window.Title,
		TileSize:     cfg.UI.Game.TileSize,
		Margin:       cfg.UI.Game.Margin,
		HeaderHeight: cfg.UI.Game.HeaderHeight,
		ShowMines:    cfg.Development.ShowMines,
	}
}
