package states

import (
	"time"

	"github.com/rs/zerolog"
)

// SessionContext carries the per-session data the phase hooks read and write
type SessionContext struct {
	// GameID uniquely identifies the session
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// Clock returns the current time; defaults to time.Now
	Clock func() time.Time

	// StartTime is when the first reveal happened (PhaseRunning entered)
	StartTime time.Time

	// EndTime is when the game was decided (PhaseWon or PhaseLost entered)
	EndTime time.Time

	// LastReason is the reason given for the most recent transition
	LastReason string
}

// NewSessionContext creates a new session context
func NewSessionContext(gameID string, clock func() time.Time, logger zerolog.Logger) *SessionContext {
	if clock == nil {
		clock = time.Now
	}
	return &SessionContext{
		GameID: gameID,
		Clock:  clock,
		Logger: logger.With().Str("game_id", gameID).Logger(),
	}
}

func (sc *SessionContext) now() time.Time {
	if sc.Clock == nil {
		return time.Now()
	}
	return sc.Clock()
}

// Elapsed returns the playing time: zero before the first reveal, frozen
// once the game is decided
func (sc *SessionContext) Elapsed() time.Duration {
	if sc.StartTime.IsZero() {
		return 0
	}
	end := sc.EndTime
	if end.IsZero() {
		end = sc.now()
	}
	if end.Before(sc.StartTime) {
		return 0
	}
	return end.Sub(sc.StartTime)
}

// clearTimer forgets start and end times
func (sc *SessionContext) clearTimer() {
	sc.StartTime = time.Time{}
	sc.EndTime = time.Time{}
}
