package core

// Packed cell layout, one byte per cell:
//
//	bits 0-3  number: adjacent mine count 0..8, or MineNumber for a mine
//	bits 4-7  visibility ordinal
const (
	numberMask = 0x0F
	visShift   = 4

	// MineNumber is the number nibble stored for a mine cell.
	MineNumber uint8 = 9
)

// EncodeCell packs a number and a visibility into a single byte.
func EncodeCell(number uint8, vis Visibility) byte {
	return (number & numberMask) | byte(vis)<<visShift
}

// CellNumber extracts the number nibble.
func CellNumber(b byte) uint8 { return b & numberMask }

// CellVisibility extracts the visibility nibble.
func CellVisibility(b byte) Visibility { return Visibility(b >> visShift) }

// WithNumber replaces the number nibble, keeping the visibility.
func WithNumber(b byte, number uint8) byte {
	return (b &^ numberMask) | (number & numberMask)
}

// WithVisibility replaces the visibility nibble, keeping the number.
func WithVisibility(b byte, vis Visibility) byte {
	return (b & numberMask) | byte(vis)<<visShift
}

// Pack encodes the cell as a single byte.
func (c Cell) Pack() byte {
	n := c.Adjacent
	if c.Mine {
		n = MineNumber
	}
	return EncodeCell(n, c.Vis)
}

// UnpackCell decodes a byte produced by Cell.Pack.
func UnpackCell(b byte) Cell {
	n := CellNumber(b)
	if n == MineNumber {
		return Cell{Mine: true, Vis: CellVisibility(b)}
	}
	return Cell{Adjacent: n, Vis: CellVisibility(b)}
}

// validPacked reports whether b decodes to a well-formed cell.
func validPacked(b byte) bool {
	n := CellNumber(b)
	return (n <= MaxAdjacent || n == MineNumber) && CellVisibility(b) <= VisPressed
}
