package states

import (
	"errors"
	"time"
)

var errNotStarted = errors.New("game has no start time")

// NotStartedState is a fresh board waiting for its first reveal
type NotStartedState struct{}

func NewNotStartedState() State {
	return &NotStartedState{}
}

func (s *NotStartedState) Phase() Phase {
	return PhaseNotStarted
}

func (s *NotStartedState) Enter(ctx *SessionContext) error {
	ctx.clearTimer()
	ctx.Logger.Debug().Msg("Entering NotStarted state")
	return nil
}

func (s *NotStartedState) Exit(ctx *SessionContext) error {
	ctx.Logger.Debug().Msg("Exiting NotStarted state")
	return nil
}

func (s *NotStartedState) Validate(ctx *SessionContext) error {
	return nil
}

// RunningState is active play with the timer running
type RunningState struct{}

func NewRunningState() State {
	return &RunningState{}
}

func (s *RunningState) Phase() Phase {
	return PhaseRunning
}

func (s *RunningState) Enter(ctx *SessionContext) error {
	ctx.StartTime = ctx.now()
	ctx.EndTime = time.Time{}
	ctx.Logger.Info().
		Time("start_time", ctx.StartTime).
		Msg("Game started")
	return nil
}

func (s *RunningState) Exit(ctx *SessionContext) error {
	ctx.Logger.Debug().
		Dur("elapsed", ctx.Elapsed()).
		Msg("Exiting running state")
	return nil
}

func (s *RunningState) Validate(ctx *SessionContext) error {
	return nil
}

// WonState is a decided game where every safe cell was opened
type WonState struct{}

func NewWonState() State {
	return &WonState{}
}

func (s *WonState) Phase() Phase {
	return PhaseWon
}

func (s *WonState) Enter(ctx *SessionContext) error {
	ctx.EndTime = ctx.now()
	ctx.Logger.Info().
		Dur("game_duration", ctx.Elapsed()).
		Msg("Game won")
	return nil
}

func (s *WonState) Exit(ctx *SessionContext) error {
	ctx.Logger.Debug().Msg("Exiting won state")
	return nil
}

func (s *WonState) Validate(ctx *SessionContext) error {
	if ctx.StartTime.IsZero() {
		return errNotStarted
	}
	return nil
}

// LostState is a decided game where a mine was opened
type LostState struct{}

func NewLostState() State {
	return &LostState{}
}

func (s *LostState) Phase() Phase {
	return PhaseLost
}

func (s *LostState) Enter(ctx *SessionContext) error {
	ctx.EndTime = ctx.now()
	ctx.Logger.Info().
		Dur("game_duration", ctx.Elapsed()).
		Msg("Game lost")
	return nil
}

func (s *LostState) Exit(ctx *SessionContext) error {
	ctx.Logger.Debug().Msg("Exiting lost state")
	return nil
}

func (s *LostState) Validate(ctx *SessionContext) error {
	if ctx.StartTime.IsZero() {
		return errNotStarted
	}
	return nil
}
