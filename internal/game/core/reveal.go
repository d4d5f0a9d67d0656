package core

// OpenResult is the outcome of opening a single cell
type OpenResult int

const (
	// OpenNoop means nothing changed: the cell was out of bounds, flagged or already shown.
	OpenNoop OpenResult = iota
	OpenSuccess
	// OpenMistake means the cell held a mine.
	OpenMistake
)

func (r OpenResult) String() string {
	switch r {
	case OpenNoop:
		return "noop"
	case OpenSuccess:
		return "success"
	case OpenMistake:
		return "mistake"
	default:
		return "unknown"
	}
}

// RevealOutcome reports what a reveal did. Opened counts cells turned Open,
// including everything uncovered by the flood fill.
type RevealOutcome struct {
	Result OpenResult
	Opened int
}

// FlagResult is the outcome of a flag toggle
type FlagResult int

const (
	FlagRejected FlagResult = iota
	FlagPlaced
	FlagRemoved
)

func (r FlagResult) String() string {
	switch r {
	case FlagPlaced:
		return "placed"
	case FlagRemoved:
		return "removed"
	default:
		return "rejected"
	}
}

// Open reveals the cell at (x, y). A zero cell opens its whole connected zero
// region plus the numbered border around it. The fill runs on an explicit
// index stack so board size never limits call depth.
func (b *Board) Open(x, y int) RevealOutcome {
	start := b.GetCell(x, y)
	if start == nil || !start.IsClosed() {
		return RevealOutcome{Result: OpenNoop}
	}
	if start.Mine {
		start.Vis = VisMistake
		return RevealOutcome{Result: OpenMistake}
	}

	start.Vis = VisOpen
	opened := 1
	stack := []int{b.Idx(x, y)}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.C[idx].Adjacent != 0 {
			continue
		}
		cx, cy := b.XY(idx)
		b.ForEachNeighbor(cx, cy, func(n int) {
			c := &b.C[n]
			// a zero cell has no mine neighbors, so only safe cells are reached here
			if !c.IsClosed() || c.Mine {
				return
			}
			c.Vis = VisOpen
			opened++
			stack = append(stack, n)
		})
	}
	return RevealOutcome{Result: OpenSuccess, Opened: opened}
}

// ToggleFlag flips a closed cell to flagged and back. Anything else is rejected.
func (b *Board) ToggleFlag(x, y int) FlagResult {
	c := b.GetCell(x, y)
	if c == nil {
		return FlagRejected
	}
	switch {
	case c.IsClosed():
		c.Vis = VisFlagged
		return FlagPlaced
	case c.Vis == VisFlagged:
		c.Vis = VisClosed
		return FlagRemoved
	default:
		return FlagRejected
	}
}

// IsWon reports whether every safe cell is open. Mines may be closed or flagged.
func (b *Board) IsWon() bool {
	for i := range b.C {
		if !b.C[i].Mine && b.C[i].Vis != VisOpen {
			return false
		}
	}
	return true
}

// FlagAllMines flags every mine that is not flagged yet and returns how many it flagged.
func (b *Board) FlagAllMines() int {
	n := 0
	for i := range b.C {
		if b.C[i].Mine && b.C[i].Vis != VisFlagged {
			b.C[i].Vis = VisFlagged
			n++
		}
	}
	return n
}

// RevealMines resolves the board for display after a loss. Mines other than the
// one that was hit become ShowMine and wrong flags become FlagMistake.
// Open cells are left alone.
func (b *Board) RevealMines() {
	for i := range b.C {
		c := &b.C[i]
		switch {
		case c.Mine && c.Vis != VisMistake:
			c.Vis = VisShowMine
		case !c.Mine && c.Vis == VisFlagged:
			c.Vis = VisFlagMistake
		}
	}
}

// Press shows the pointer-down preview on a closed cell.
func (b *Board) Press(x, y int) bool {
	c := b.GetCell(x, y)
	if c == nil || c.Vis != VisClosed {
		return false
	}
	c.Vis = VisPressed
	return true
}

// ClearPressed reverts any preview back to closed.
func (b *Board) ClearPressed() {
	for i := range b.C {
		if b.C[i].Vis == VisPressed {
			b.C[i].Vis = VisClosed
		}
	}
}
