package core

import "fmt"

// Visibility is what the player currently sees on a cell.
// The ordinals double as the high nibble of a packed cell byte.
type Visibility uint8

const (
	VisClosed Visibility = iota
	VisOpen
	VisFlagged
	// VisShowMine, VisMistake and VisFlagMistake are end-of-game display states.
	VisShowMine
	VisMistake
	VisFlagMistake
	// VisPressed is the transient preview shown while the pointer is held down.
	VisPressed
)

// MaxAdjacent is the largest possible neighbor mine count.
const MaxAdjacent = 8

// String returns the string representation of a Visibility
func (v Visibility) String() string {
	switch v {
	case VisClosed:
		return "Closed"
	case VisOpen:
		return "Open"
	case VisFlagged:
		return "Flagged"
	case VisShowMine:
		return "ShowMine"
	case VisMistake:
		return "Mistake"
	case VisFlagMistake:
		return "FlagMistake"
	case VisPressed:
		return "Pressed"
	default:
		return fmt.Sprintf("Unknown(%d)", v)
	}
}

// IsTerminal reports whether a cell in this state can never change again
// during the current game.
func (v Visibility) IsTerminal() bool {
	return v == VisOpen || v == VisMistake
}

// Cell is a single square of the minefield.
// Adjacent is written once when mines are generated and is meaningless for mines.
type Cell struct {
	Mine     bool
	Adjacent uint8
	Vis      Visibility
}

func (c *Cell) IsClosed() bool  { return c.Vis == VisClosed || c.Vis == VisPressed }
func (c *Cell) IsOpen() bool    { return c.Vis == VisOpen }
func (c *Cell) IsFlagged() bool { return c.Vis == VisFlagged }
