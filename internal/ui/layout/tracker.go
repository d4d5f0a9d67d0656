package layout

import "image"

// PointerState is one frame of mouse input
type PointerState struct {
	X, Y         int
	LeftDown     bool // held this frame
	LeftReleased bool // released this frame
	RightPressed bool // pressed this frame
}

// IntentKind is what the player asked the session to do
type IntentKind int

const (
	IntentPress IntentKind = iota
	IntentRelease
	IntentReveal
	IntentFlag
	IntentReset
)

func (k IntentKind) String() string {
	switch k {
	case IntentPress:
		return "press"
	case IntentRelease:
		return "release"
	case IntentReveal:
		return "reveal"
	case IntentFlag:
		return "flag"
	case IntentReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Intent is a session call derived from pointer input
type Intent struct {
	Kind IntentKind
	X, Y int
}

// Tracker follows the left button across frames: holding it previews the
// cell under the pointer, releasing it over a cell reveals that cell, and
// releasing it anywhere else drops the preview. A right press flags.
type Tracker struct {
	geom         Geometry
	holding      bool
	heldX, heldY int
	heldOnBoard  bool
}

func NewTracker(geom Geometry) *Tracker {
	return &Tracker{geom: geom}
}

// SetGeometry swaps the layout after a resize and forgets any held button.
func (t *Tracker) SetGeometry(geom Geometry) {
	t.geom = geom
	t.holding = false
	t.heldOnBoard = false
}

// Step consumes one frame of pointer state.
func (t *Tracker) Step(p PointerState) []Intent {
	var intents []Intent
	x, y, onBoard := t.geom.CellAt(p.X, p.Y)

	if p.RightPressed && onBoard && !t.holding {
		intents = append(intents, Intent{Kind: IntentFlag, X: x, Y: y})
	}

	switch {
	case p.LeftReleased:
		switch {
		case onBoard:
			intents = append(intents, Intent{Kind: IntentReveal, X: x, Y: y})
		case t.holding && t.heldOnBoard:
			intents = append(intents, Intent{Kind: IntentRelease})
		}
		if !onBoard && onFace(p.X, p.Y, t.geom) {
			intents = append(intents, Intent{Kind: IntentReset})
		}
		t.holding = false
		t.heldOnBoard = false

	case p.LeftDown:
		moved := !t.holding || onBoard != t.heldOnBoard || (onBoard && (x != t.heldX || y != t.heldY))
		if moved {
			if onBoard {
				intents = append(intents, Intent{Kind: IntentPress, X: x, Y: y})
			} else if t.heldOnBoard {
				intents = append(intents, Intent{Kind: IntentRelease})
			}
		}
		t.holding = true
		t.heldOnBoard = onBoard
		t.heldX, t.heldY = x, y
	}

	return intents
}

func onFace(px, py int, g Geometry) bool {
	return image.Pt(px, py).In(g.FaceRect())
}
