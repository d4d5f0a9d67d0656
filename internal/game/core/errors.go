package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidDimensions  = errors.New("invalid board dimensions")
	ErrInvalidMineCount   = errors.New("invalid mine count")
	ErrInvalidSnapshot    = errors.New("invalid board snapshot")
	ErrGameOver           = errors.New("game is over")
)

// WrapActionError annotates err with the action that produced it.
func WrapActionError(action Action, err error) error {
	if err == nil {
		return nil
	}
	switch a := action.(type) {
	case *RevealAction:
		return fmt.Errorf("reveal %s: %w", NewCoordinate(a.X, a.Y), err)
	case *FlagAction:
		return fmt.Errorf("flag %s: %w", NewCoordinate(a.X, a.Y), err)
	default:
		return fmt.Errorf("action: %w", err)
	}
}
