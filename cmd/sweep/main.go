package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/minesweeper/internal/app"
	"github.com/mitchelldurbincs/minesweeper/internal/config"
	"github.com/mitchelldurbincs/minesweeper/internal/shell"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", os.Getenv("MSW_ENV"), "Environment overlay (loads config.<env>.yaml)")
	noColor := flag.Bool("no-color", false, "Disable ANSI colors")
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

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Terminal.Prompt,
		HistoryFile:     cfg.Terminal.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to start line editor")
	}
	defer rl.Close()

	sh := shell.New(a.Session, a.Stats, !*noColor, logger)
	fmt.Fprint(rl.Stdout(), a.Session.Render(!*noColor))

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				break
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Error().Err(err).Msg("Reading input")
			break
		}

		out, err := sh.Execute(line)
		if errors.Is(err, shell.ErrQuit) {
			break
		}
		if err != nil {
			fmt.Fprintf(rl.Stderr(), "error: %v\n", err)
			continue
		}
		fmt.Fprint(rl.Stdout(), out)
	}
}
