// Package layout maps between screen pixels and board cells and turns raw
// pointer state into session intents. It has no ebiten dependency.
package layout

import "image"

// MinTileSize is the smallest tile Fit will shrink to.
const MinTileSize = 2

// Geometry describes where the header and the board sit on screen
type Geometry struct {
	TileSize     int
	Margin       int
	HeaderHeight int
	Cols, Rows   int
}

// ScreenSize is the logical screen size needed for the whole board.
func (g Geometry) ScreenSize() (int, int) {
	return g.Cols*g.TileSize + 2*g.Margin, g.HeaderHeight + g.Rows*g.TileSize + 2*g.Margin
}

// BoardOrigin is the top-left pixel of cell (0, 0).
func (g Geometry) BoardOrigin() (int, int) {
	return g.Margin, g.Margin + g.HeaderHeight
}

// CellAt returns the cell under pixel (px, py).
func (g Geometry) CellAt(px, py int) (x, y int, ok bool) {
	ox, oy := g.BoardOrigin()
	if px < ox || py < oy || g.TileSize <= 0 {
		return 0, 0, false
	}
	x = (px - ox) / g.TileSize
	y = (py - oy) / g.TileSize
	if x >= g.Cols || y >= g.Rows {
		return 0, 0, false
	}
	return x, y, true
}

// CellRect is the pixel rectangle of cell (x, y).
func (g Geometry) CellRect(x, y int) image.Rectangle {
	ox, oy := g.BoardOrigin()
	min := image.Pt(ox+x*g.TileSize, oy+y*g.TileSize)
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(g.TileSize, g.TileSize))}
}

// FaceRect is the reset button centred in the header.
func (g Geometry) FaceRect() image.Rectangle {
	w, _ := g.ScreenSize()
	size := g.HeaderHeight - g.Margin
	if size < 0 {
		size = 0
	}
	min := image.Pt((w-size)/2, g.Margin/2)
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(size, size))}
}

// Fit shrinks the tile size until the screen fits in maxW x maxH, stopping
// at MinTileSize.
func (g Geometry) Fit(maxW, maxH int) Geometry {
	for g.TileSize > MinTileSize {
		w, h := g.ScreenSize()
		if w <= maxW && h <= maxH {
			break
		}
		g.TileSize--
	}
	return g
}
