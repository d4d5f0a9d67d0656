package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
	"github.com/mitchelldurbincs/minesweeper/internal/game/mapgen"
	"github.com/mitchelldurbincs/minesweeper/internal/game/states"
)

// Status is the lifecycle phase of a session
type Status = states.Phase

const (
	StatusNotStarted = states.PhaseNotStarted
	StatusRunning    = states.PhaseRunning
	StatusWon        = states.PhaseWon
	StatusLost       = states.PhaseLost
)

// SessionConfig holds everything needed to build a session. Only the
// dimensions are required.
type SessionConfig struct {
	Width  int
	Height int
	Mines  int

	// ID names the session in logs and events; a UUID when empty.
	ID string
	// Sampler drives mine placement; an OS-seeded sampler when nil.
	Sampler mapgen.Sampler
	// Bus receives session events; a private bus when nil.
	Bus *events.EventBus
	// Clock is used for the game timer; time.Now when nil.
	Clock  func() time.Time
	Logger zerolog.Logger
}

// Session is one game of minesweeper. It owns its board and keeps the flag
// counter and status consistent with the cells. Not safe for concurrent use.
type Session struct {
	id        string
	board     *core.Board
	mines     int
	flagged   int
	moves     int
	pressed   bool
	generator *mapgen.Generator
	machine   *states.StateMachine
	bus       *events.EventBus
	logger    zerolog.Logger
}

// NewSession creates a session with an empty board. Mines are laid on the
// first reveal. A mine count above the board's capacity is clamped.
func NewSession(cfg SessionConfig) (*Session, error) {
	if err := ValidateDimensions(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	if cfg.Mines < 0 {
		return nil, fmt.Errorf("%d: %w", cfg.Mines, ErrInvalidMineCount)
	}

	id := cfg.ID
	if id == "" {
		id = uuid.NewString()
	}
	bus := cfg.Bus
	if bus == nil {
		bus = events.NewEventBus(cfg.Logger)
	}
	logger := cfg.Logger.With().Str("component", "Session").Str("game_id", id).Logger()

	ctx := states.NewSessionContext(id, cfg.Clock, cfg.Logger)
	s := &Session{
		id:        id,
		board:     core.NewBoard(cfg.Width, cfg.Height),
		mines:     clampMines(cfg.Width, cfg.Height, cfg.Mines),
		generator: mapgen.NewGenerator(cfg.Sampler, cfg.Logger),
		machine:   states.NewStateMachine(ctx, bus),
		bus:       bus,
		logger:    logger,
	}

	logger.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("mines", s.mines).
		Msg("Session created")

	return s, nil
}

func clampMines(w, h, mines int) int {
	if limit := mapgen.MaxMines(w, h); mines > limit {
		return limit
	}
	return mines
}

// Apply dispatches a reveal or flag action. Out-of-range targets are errors;
// actions on a finished game are ignored.
func (s *Session) Apply(action core.Action) error {
	switch a := action.(type) {
	case *core.RevealAction:
		_, err := s.Reveal(a.X, a.Y)
		return err
	case *core.FlagAction:
		_, err := s.ToggleFlag(a.X, a.Y)
		return err
	default:
		return core.WrapActionError(action, ErrUnknownAction)
	}
}

// Reveal opens the cell at (x, y). The first reveal lays the mines around a
// safe opening and starts the timer.
func (s *Session) Reveal(x, y int) (core.RevealOutcome, error) {
	action := &core.RevealAction{X: x, Y: y}
	if err := s.admit(action); err != nil {
		return core.RevealOutcome{}, err
	}
	if !s.Status().CanReceiveActions() {
		return core.RevealOutcome{Result: core.OpenNoop}, nil
	}

	s.Release()
	if !s.board.GetCell(x, y).IsClosed() {
		return core.RevealOutcome{Result: core.OpenNoop}, nil
	}

	if s.Status() == StatusNotStarted {
		if err := s.start(x, y); err != nil {
			return core.RevealOutcome{}, core.WrapActionError(action, err)
		}
	}

	outcome := s.board.Open(x, y)
	if outcome.Result == core.OpenNoop {
		return outcome, nil
	}
	s.moves++
	at := core.NewCoordinate(x, y)

	if outcome.Result == core.OpenMistake {
		s.board.RevealMines()
		if err := s.finish(StatusLost, "mine opened"); err != nil {
			return outcome, core.WrapActionError(action, err)
		}
		s.bus.Publish(events.NewGameLostEvent(s.id, at, s.board.W, s.board.H, s.mines, s.Elapsed(), s.moves))
		return outcome, nil
	}

	s.logger.Debug().
		Str("at", at.String()).
		Int("opened", outcome.Opened).
		Msg("Cells opened")
	s.bus.Publish(events.NewCellsOpenedEvent(s.id, at, outcome.Opened, s.moves))

	if s.board.IsWon() {
		s.board.FlagAllMines()
		s.flagged = s.board.FlaggedCount()
		if err := s.finish(StatusWon, "all safe cells open"); err != nil {
			return outcome, core.WrapActionError(action, err)
		}
		s.bus.Publish(events.NewGameWonEvent(s.id, s.board.W, s.board.H, s.mines, s.Elapsed(), s.moves))
	}

	return outcome, nil
}

// start lays the mines around (x, y) and moves the session to Running.
func (s *Session) start(x, y int) error {
	placed, err := s.generator.Place(s.board, x, y, s.mines)
	if err != nil {
		return err
	}
	s.mines = placed
	if err := s.machine.TransitionTo(StatusRunning, "first reveal"); err != nil {
		s.logger.Error().Err(err).Msg("Failed to start session")
		return err
	}
	s.bus.Publish(events.NewGameStartedEvent(s.id, s.board.W, s.board.H, s.mines, core.NewCoordinate(x, y)))
	return nil
}

func (s *Session) finish(status Status, reason string) error {
	if err := s.machine.TransitionTo(status, reason); err != nil {
		s.logger.Error().Err(err).Str("status", status.String()).Msg("Failed to end session")
		return err
	}
	return nil
}

// ToggleFlag places or removes a flag. Flags may be placed before the first
// reveal. Open cells and finished games reject the toggle.
func (s *Session) ToggleFlag(x, y int) (core.FlagResult, error) {
	action := &core.FlagAction{X: x, Y: y}
	if err := s.admit(action); err != nil {
		return core.FlagRejected, err
	}
	if !s.Status().CanReceiveActions() {
		return core.FlagRejected, nil
	}

	s.Release()
	result := s.board.ToggleFlag(x, y)
	switch result {
	case core.FlagPlaced:
		s.flagged++
	case core.FlagRemoved:
		s.flagged--
	default:
		return result, nil
	}
	s.moves++

	s.bus.Publish(events.NewFlagToggledEvent(s.id, core.NewCoordinate(x, y), result == core.FlagPlaced, s.MinesRemaining(), s.moves))
	return result, nil
}

// admit rejects out-of-range actions and reports ignored ones on the bus.
func (s *Session) admit(action core.Action) error {
	if err := action.Validate(s.board); err != nil {
		s.bus.Publish(events.NewActionRejectedEvent(s.id, action, err.Error()))
		return core.WrapActionError(action, err)
	}
	if !s.Status().CanReceiveActions() {
		s.bus.Publish(events.NewActionRejectedEvent(s.id, action, core.ErrGameOver.Error()))
	}
	return nil
}

// Press shows the pointer-down preview on (x, y), replacing any earlier one.
// Only closed cells of a live game can be pressed.
func (s *Session) Press(x, y int) bool {
	s.Release()
	if !s.Status().CanReceiveActions() {
		return false
	}
	s.pressed = s.board.Press(x, y)
	return s.pressed
}

// Release drops the pointer-down preview without opening anything.
func (s *Session) Release() {
	if s.pressed {
		s.board.ClearPressed()
		s.pressed = false
	}
}

// Reset starts a new game on a fresh board of the same size.
func (s *Session) Reset() {
	s.board = core.NewBoard(s.board.W, s.board.H)
	s.clearCounters()
	if s.Status() != StatusNotStarted {
		if err := s.machine.TransitionTo(StatusNotStarted, "reset"); err != nil {
			s.logger.Error().Err(err).Msg("Failed to reset session")
		}
	}
	s.bus.Publish(events.NewGameResetEvent(s.id, s.board.W, s.board.H, s.mines))
}

// Resize replaces the board with an empty one of the given shape and resets
// the game. The session is left untouched when the shape is rejected.
func (s *Session) Resize(width, height, mines int) error {
	if err := ValidateDimensions(width, height); err != nil {
		return err
	}
	if mines < 0 {
		return fmt.Errorf("%d: %w", mines, ErrInvalidMineCount)
	}

	s.board = core.NewBoard(width, height)
	s.mines = clampMines(width, height, mines)
	s.clearCounters()
	if err := s.machine.Reset("resize"); err != nil {
		s.logger.Error().Err(err).Msg("Failed to reset session after resize")
		return err
	}

	s.logger.Info().
		Int("width", width).
		Int("height", height).
		Int("mines", s.mines).
		Msg("Session resized")
	s.bus.Publish(events.NewGameResetEvent(s.id, width, height, s.mines))
	return nil
}

func (s *Session) clearCounters() {
	s.flagged = 0
	s.moves = 0
	s.pressed = false
}

// Cell returns a copy of the cell at (x, y).
func (s *Session) Cell(x, y int) (core.Cell, error) {
	c := s.board.GetCell(x, y)
	if c == nil {
		return core.Cell{}, fmt.Errorf("%s: %w", core.NewCoordinate(x, y), ErrInvalidCoordinates)
	}
	return *c, nil
}

func (s *Session) ID() string     { return s.id }
func (s *Session) Width() int     { return s.board.W }
func (s *Session) Height() int    { return s.board.H }
func (s *Session) Mines() int     { return s.mines }
func (s *Session) Moves() int     { return s.moves }
func (s *Session) Status() Status { return s.machine.CurrentPhase() }

// MinesRemaining is the mine counter shown to the player. Over-flagging
// drives it negative.
func (s *Session) MinesRemaining() int {
	return s.mines - s.flagged
}

// Elapsed is the time since the first reveal, frozen once the game is decided.
func (s *Session) Elapsed() time.Duration {
	return s.machine.Elapsed()
}

// ElapsedSeconds is the whole seconds shown on the timer display.
func (s *Session) ElapsedSeconds() int {
	return int(s.Elapsed() / time.Second)
}

// Board returns a copy of the board for read-only use.
func (s *Session) Board() *core.Board {
	return s.board.Clone()
}

// ForEachCell calls fn for every cell in row-major order without copying
// the board. fn must not keep the pointer.
func (s *Session) ForEachCell(fn func(x, y int, c *core.Cell)) {
	for i := range s.board.C {
		x, y := s.board.XY(i)
		fn(x, y, &s.board.C[i])
	}
}

// Events returns the bus the session publishes to.
func (s *Session) Events() *events.EventBus {
	return s.bus
}

// History returns the session's lifecycle transitions since the last resize.
func (s *Session) History() []states.Transition {
	return s.machine.GetHistory()
}
