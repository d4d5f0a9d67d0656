package core

// ActionType represents the type of action
type ActionType int

const (
	ActionReveal ActionType = iota
	ActionFlag
)

func (t ActionType) String() string {
	switch t {
	case ActionReveal:
		return "reveal"
	case ActionFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Action is a single player input aimed at one cell
type Action interface {
	GetType() ActionType
	Target() Coordinate
	Validate(b *Board) error
}

// RevealAction opens a cell
type RevealAction struct {
	X, Y int
}

func (a *RevealAction) GetType() ActionType { return ActionReveal }
func (a *RevealAction) Target() Coordinate  { return NewCoordinate(a.X, a.Y) }

func (a *RevealAction) Validate(b *Board) error {
	if !b.InBounds(a.X, a.Y) {
		return ErrInvalidCoordinates
	}
	return nil
}

// FlagAction toggles the flag on a cell
type FlagAction struct {
	X, Y int
}

func (a *FlagAction) GetType() ActionType { return ActionFlag }
func (a *FlagAction) Target() Coordinate  { return NewCoordinate(a.X, a.Y) }

func (a *FlagAction) Validate(b *Board) error {
	if !b.InBounds(a.X, a.Y) {
		return ErrInvalidCoordinates
	}
	return nil
}
