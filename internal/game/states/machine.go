package states

import (
	"fmt"
	"sync"
	"time"

	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
)

// State represents a session phase with lifecycle callbacks
type State interface {
	// Phase returns the Phase this state represents
	Phase() Phase

	// Enter is called when transitioning into this state
	Enter(ctx *SessionContext) error

	// Exit is called when transitioning out of this state
	Exit(ctx *SessionContext) error

	// Validate checks if the state can be entered given the context
	Validate(ctx *SessionContext) error
}

// Transition represents a state transition in the history
type Transition struct {
	From      Phase
	To        Phase
	Timestamp time.Time
	Reason    string
}

// StateMachine manages session phase transitions and history
type StateMachine struct {
	mu             sync.RWMutex
	currentPhase   Phase
	states         map[Phase]State
	context        *SessionContext
	history        []Transition
	maxHistorySize int
	publisher      events.Publisher
}

// NewStateMachine creates a state machine in PhaseNotStarted. publisher may be nil.
func NewStateMachine(ctx *SessionContext, publisher events.Publisher) *StateMachine {
	sm := &StateMachine{
		currentPhase:   PhaseNotStarted,
		states:         make(map[Phase]State),
		context:        ctx,
		history:        make([]Transition, 0, 16),
		maxHistorySize: 256,
		publisher:      publisher,
	}

	sm.RegisterState(NewNotStartedState())
	sm.RegisterState(NewRunningState())
	sm.RegisterState(NewWonState())
	sm.RegisterState(NewLostState())

	return sm
}

// RegisterState registers a state implementation, replacing any existing one
// for the same phase
func (sm *StateMachine) RegisterState(state State) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.states[state.Phase()] = state
}

// CurrentPhase returns the current session phase
func (sm *StateMachine) CurrentPhase() Phase {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase
}

// TransitionTo attempts to transition to the specified phase. Subscribers are
// notified after the machine's lock is released, so they may query it.
func (sm *StateMachine) TransitionTo(targetPhase Phase, reason string) error {
	previousPhase, err := sm.transition(targetPhase, reason)
	if err != nil {
		return err
	}

	if sm.publisher != nil {
		sm.publisher.Publish(events.NewStateTransitionEvent(
			sm.context.GameID,
			previousPhase.String(),
			targetPhase.String(),
			reason,
		))
	}

	sm.context.Logger.Debug().
		Str("from_phase", previousPhase.String()).
		Str("to_phase", targetPhase.String()).
		Str("reason", reason).
		Msg("State transition completed")

	return nil
}

func (sm *StateMachine) transition(targetPhase Phase, reason string) (Phase, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.currentPhase.CanTransitionTo(targetPhase) {
		return sm.currentPhase, fmt.Errorf("invalid transition from %s to %s", sm.currentPhase, targetPhase)
	}

	currentState, hasCurrentState := sm.states[sm.currentPhase]
	targetState, hasTargetState := sm.states[targetPhase]

	if !hasTargetState {
		return sm.currentPhase, fmt.Errorf("no state implementation for phase %s", targetPhase)
	}

	if err := targetState.Validate(sm.context); err != nil {
		return sm.currentPhase, fmt.Errorf("target state validation failed: %w", err)
	}

	if hasCurrentState {
		if err := currentState.Exit(sm.context); err != nil {
			sm.context.Logger.Error().
				Err(err).
				Str("from_phase", sm.currentPhase.String()).
				Str("to_phase", targetPhase.String()).
				Msg("Error exiting state")
			// Continue with transition despite exit error
		}
	}

	previousPhase := sm.currentPhase
	sm.currentPhase = targetPhase

	if err := targetState.Enter(sm.context); err != nil {
		sm.currentPhase = previousPhase
		return previousPhase, fmt.Errorf("failed to enter state %s: %w", targetPhase, err)
	}

	sm.context.LastReason = reason
	sm.addToHistory(Transition{
		From:      previousPhase,
		To:        targetPhase,
		Timestamp: sm.context.now(),
		Reason:    reason,
	})

	return previousPhase, nil
}

// addToHistory adds a transition to the history, maintaining max size
func (sm *StateMachine) addToHistory(transition Transition) {
	sm.history = append(sm.history, transition)

	if len(sm.history) > sm.maxHistorySize {
		sm.history = sm.history[len(sm.history)-sm.maxHistorySize:]
	}
}

// GetHistory returns a copy of the transition history
func (sm *StateMachine) GetHistory() []Transition {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	history := make([]Transition, len(sm.history))
	copy(history, sm.history)
	return history
}

// GetContext returns the session context
func (sm *StateMachine) GetContext() *SessionContext {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.context
}

// Elapsed returns the session's playing time
func (sm *StateMachine) Elapsed() time.Duration {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.context.Elapsed()
}

// CanTransitionTo checks if a transition to the target phase is allowed
func (sm *StateMachine) CanTransitionTo(targetPhase Phase) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase.CanTransitionTo(targetPhase)
}

// Reset clears the history and returns the machine to PhaseNotStarted. From
// any other phase this is a normal transition and is published as one.
func (sm *StateMachine) Reset(reason string) error {
	sm.mu.Lock()
	sm.history = sm.history[:0]
	phase := sm.currentPhase
	if phase == PhaseNotStarted {
		sm.context.clearTimer()
	}
	sm.mu.Unlock()

	if phase == PhaseNotStarted {
		return nil
	}
	return sm.TransitionTo(PhaseNotStarted, reason)
}
