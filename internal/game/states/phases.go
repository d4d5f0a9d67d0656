package states

import "fmt"

// Phase is the lifecycle phase of a minesweeper session
type Phase int

const (
	// PhaseNotStarted - Board is empty, no mines laid, timer stopped
	PhaseNotStarted Phase = iota

	// PhaseRunning - Mines laid by the first reveal, timer running
	PhaseRunning

	// PhaseWon - Every safe cell is open
	PhaseWon

	// PhaseLost - A mine was opened
	PhaseLost
)

// String returns the string representation of a Phase
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhaseWon:
		return "Won"
	case PhaseLost:
		return "Lost"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// IsTerminal returns true once the game has been decided
func (p Phase) IsTerminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// CanReceiveActions returns true if reveals and flags are processed in this phase
func (p Phase) CanReceiveActions() bool {
	return p == PhaseNotStarted || p == PhaseRunning
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p Phase) AllowedTransitions() []Phase {
	switch p {
	case PhaseNotStarted:
		return []Phase{PhaseRunning}
	case PhaseRunning:
		return []Phase{PhaseWon, PhaseLost, PhaseNotStarted}
	case PhaseWon, PhaseLost:
		return []Phase{PhaseNotStarted}
	default:
		return []Phase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p Phase) CanTransitionTo(target Phase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a Phase
func ParsePhase(s string) (Phase, error) {
	switch s {
	case "NotStarted":
		return PhaseNotStarted, nil
	case "Running":
		return PhaseRunning, nil
	case "Won":
		return PhaseWon, nil
	case "Lost":
		return PhaseLost, nil
	default:
		return PhaseNotStarted, fmt.Errorf("unknown phase %q", s)
	}
}
