package events

import (
	"time"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeGameWon         = "game.won"
	TypeGameLost        = "game.lost"
	TypeGameReset       = "game.reset"
	TypeCellsOpened     = "cells.opened"
	TypeFlagToggled     = "flag.toggled"
	TypeActionRejected  = "action.rejected"
	TypeStateTransition = "state.transition"
)

func newBase(eventType, gameID string) BaseEvent {
	return BaseEvent{
		EventType: eventType,
		Time:      time.Now(),
		Game:      gameID,
	}
}

// GameStartedEvent is published when the first reveal lays the mines
type GameStartedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Width    int             `json:"width"`
	Height   int             `json:"height"`
	Mines    int             `json:"mines"`
	Start    core.Coordinate `json:"start"`
}

func (e *GameStartedEvent) Move() int { return e.Metadata.Move }

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, width, height, mines int, start core.Coordinate) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBase(TypeGameStarted, gameID),
		Metadata:  EventMetadata{Move: 1},
		Width:     width,
		Height:    height,
		Mines:     mines,
		Start:     start,
	}
}

// GameWonEvent is published when the last safe cell is opened
type GameWonEvent struct {
	BaseEvent
	Metadata EventMetadata
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Mines    int           `json:"mines"`
	Duration time.Duration `json:"duration"`
}

func (e *GameWonEvent) Move() int { return e.Metadata.Move }

// NewGameWonEvent creates a new GameWonEvent
func NewGameWonEvent(gameID string, width, height, mines int, duration time.Duration, move int) *GameWonEvent {
	return &GameWonEvent{
		BaseEvent: newBase(TypeGameWon, gameID),
		Metadata:  EventMetadata{Move: move},
		Width:     width,
		Height:    height,
		Mines:     mines,
		Duration:  duration,
	}
}

// GameLostEvent is published when a mine is opened
type GameLostEvent struct {
	BaseEvent
	Metadata EventMetadata
	At       core.Coordinate `json:"at"`
	Width    int             `json:"width"`
	Height   int             `json:"height"`
	Mines    int             `json:"mines"`
	Duration time.Duration   `json:"duration"`
}

func (e *GameLostEvent) Move() int { return e.Metadata.Move }

// NewGameLostEvent creates a new GameLostEvent
func NewGameLostEvent(gameID string, at core.Coordinate, width, height, mines int, duration time.Duration, move int) *GameLostEvent {
	return &GameLostEvent{
		BaseEvent: newBase(TypeGameLost, gameID),
		Metadata:  EventMetadata{Move: move},
		At:        at,
		Width:     width,
		Height:    height,
		Mines:     mines,
		Duration:  duration,
	}
}

// GameResetEvent is published when the board is cleared, including on resize
type GameResetEvent struct {
	BaseEvent
	Width  int `json:"width"`
	Height int `json:"height"`
	Mines  int `json:"mines"`
}

// NewGameResetEvent creates a new GameResetEvent
func NewGameResetEvent(gameID string, width, height, mines int) *GameResetEvent {
	return &GameResetEvent{
		BaseEvent: newBase(TypeGameReset, gameID),
		Width:     width,
		Height:    height,
		Mines:     mines,
	}
}

// CellsOpenedEvent is published after a successful reveal
type CellsOpenedEvent struct {
	BaseEvent
	Metadata EventMetadata
	At       core.Coordinate `json:"at"`
	Opened   int             `json:"opened"`
}

func (e *CellsOpenedEvent) Move() int { return e.Metadata.Move }

// NewCellsOpenedEvent creates a new CellsOpenedEvent
func NewCellsOpenedEvent(gameID string, at core.Coordinate, opened, move int) *CellsOpenedEvent {
	return &CellsOpenedEvent{
		BaseEvent: newBase(TypeCellsOpened, gameID),
		Metadata:  EventMetadata{Move: move},
		At:        at,
		Opened:    opened,
	}
}

// FlagToggledEvent is published when a flag is placed or removed
type FlagToggledEvent struct {
	BaseEvent
	Metadata       EventMetadata
	At             core.Coordinate `json:"at"`
	Placed         bool            `json:"placed"`
	MinesRemaining int             `json:"mines_remaining"`
}

func (e *FlagToggledEvent) Move() int { return e.Metadata.Move }

// NewFlagToggledEvent creates a new FlagToggledEvent
func NewFlagToggledEvent(gameID string, at core.Coordinate, placed bool, minesRemaining, move int) *FlagToggledEvent {
	return &FlagToggledEvent{
		BaseEvent:      newBase(TypeFlagToggled, gameID),
		Metadata:       EventMetadata{Move: move},
		At:             at,
		Placed:         placed,
		MinesRemaining: minesRemaining,
	}
}

// ActionRejectedEvent is published when an action is refused outright
type ActionRejectedEvent struct {
	BaseEvent
	Action core.ActionType `json:"action"`
	At     core.Coordinate `json:"at"`
	Reason string          `json:"reason"`
}

// NewActionRejectedEvent creates a new ActionRejectedEvent
func NewActionRejectedEvent(gameID string, action core.Action, reason string) *ActionRejectedEvent {
	return &ActionRejectedEvent{
		BaseEvent: newBase(TypeActionRejected, gameID),
		Action:    action.GetType(),
		At:        action.Target(),
		Reason:    reason,
	}
}

// StateTransitionEvent is published when the session changes phase
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string `json:"from_phase"`
	ToPhase   string `json:"to_phase"`
	Reason    string `json:"reason"`
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
