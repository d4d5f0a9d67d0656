package game

import (
	"errors"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

// Session-level errors. The board errors are re-exported so callers only need
// this package for errors.Is checks.
var (
	ErrInvalidCoordinates = core.ErrInvalidCoordinates
	ErrInvalidDimensions  = core.ErrInvalidDimensions
	ErrInvalidMineCount   = core.ErrInvalidMineCount
	ErrUnknownPreset      = errors.New("unknown difficulty preset")
	ErrUnknownAction      = errors.New("unknown action")
)
