package core

import (
	"fmt"

	"github.com/samber/lo"
)

// Board is the minefield. Cells are stored row-major, len(C) == W*H.
type Board struct {
	W, H int
	C    []Cell
}

// NewBoard returns a board with every cell empty and closed.
func NewBoard(w, h int) *Board {
	return &Board{W: w, H: h, C: make([]Cell, w*h)}
}

func (b *Board) Idx(x, y int) int { return NewCoordinate(x, y).ToIndex(b.W) }
func (b *Board) Size() int        { return len(b.C) }

func (b *Board) XY(idx int) (int, int) {
	c := FromIndex(idx, b.W)
	return c.X, c.Y
}

// InBounds checks if coordinates are within board boundaries
func (b *Board) InBounds(x, y int) bool {
	return NewCoordinate(x, y).IsValid(b.W, b.H)
}

// GetCell safely returns a cell pointer if coordinates are valid, nil otherwise
func (b *Board) GetCell(x, y int) *Cell {
	if !b.InBounds(x, y) {
		return nil
	}
	return &b.C[b.Idx(x, y)]
}

// ForEachNeighbor calls fn with the index of every in-bounds cell touching (x, y).
// Each direction is bounds-checked on its own; nothing wraps around an edge.
func (b *Board) ForEachNeighbor(x, y int, fn func(idx int)) {
	at := NewCoordinate(x, y)
	for _, off := range NeighborOffsets {
		if n := at.Add(off); n.IsValid(b.W, b.H) {
			fn(n.ToIndex(b.W))
		}
	}
}

// RecountAdjacent fills Adjacent for every non-mine cell from the current mine layout.
func (b *Board) RecountAdjacent() {
	for i := range b.C {
		if b.C[i].Mine {
			b.C[i].Adjacent = 0
			continue
		}
		x, y := b.XY(i)
		var n uint8
		b.ForEachNeighbor(x, y, func(j int) {
			if b.C[j].Mine {
				n++
			}
		})
		b.C[i].Adjacent = n
	}
}

func (b *Board) MineCount() int {
	return lo.CountBy(b.C, func(c Cell) bool { return c.Mine })
}

func (b *Board) FlaggedCount() int {
	return lo.CountBy(b.C, func(c Cell) bool { return c.Vis == VisFlagged })
}

func (b *Board) OpenCount() int {
	return lo.CountBy(b.C, func(c Cell) bool { return c.Vis == VisOpen })
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	c := &Board{W: b.W, H: b.H, C: make([]Cell, len(b.C))}
	copy(c.C, b.C)
	return c
}

// Snapshot packs every cell into one byte, row-major.
func (b *Board) Snapshot() []byte {
	out := make([]byte, len(b.C))
	for i, c := range b.C {
		out[i] = c.Pack()
	}
	return out
}

// BoardFromSnapshot rebuilds a board from Snapshot output.
func BoardFromSnapshot(w, h int, data []byte) (*Board, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", w, h, ErrInvalidDimensions)
	}
	if len(data) != w*h {
		return nil, fmt.Errorf("have %d cells, want %d: %w", len(data), w*h, ErrInvalidSnapshot)
	}
	b := NewBoard(w, h)
	for i, packed := range data {
		if !validPacked(packed) {
			return nil, fmt.Errorf("cell %d holds 0x%02x: %w", i, packed, ErrInvalidSnapshot)
		}
		b.C[i] = UnpackCell(packed)
	}
	return b, nil
}
