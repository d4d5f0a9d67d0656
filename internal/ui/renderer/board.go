package renderer

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/mitchelldurbincs/minesweeper/internal/ui/layout"
)

// -----------------------------------------------------------------------------
// Colour definitions
// -----------------------------------------------------------------------------

// NumberColors is the classic palette for adjacency counts 1..8.
var NumberColors = [core.MaxAdjacent + 1]color.Color{
	nil,
	color.RGBA{0, 0, 255, 255},     // 1 blue
	color.RGBA{0, 128, 0, 255},     // 2 green
	color.RGBA{255, 0, 0, 255},     // 3 red
	color.RGBA{0, 0, 128, 255},     // 4 navy
	color.RGBA{128, 0, 0, 255},     // 5 maroon
	color.RGBA{0, 128, 128, 255},   // 6 teal
	color.RGBA{0, 0, 0, 255},       // 7 black
	color.RGBA{128, 128, 128, 255}, // 8 gray
}

var (
	ClosedColor      = color.RGBA{160, 160, 160, 255}
	OpenColor        = color.RGBA{210, 210, 210, 255}
	GridColor        = color.RGBA{120, 120, 120, 255}
	MistakeColor     = color.RGBA{220, 40, 40, 255}
	MineColor        = color.RGBA{20, 20, 20, 255}
	FlagColor        = color.RGBA{200, 30, 30, 255}
	HintColor        = color.RGBA{110, 60, 60, 255}
	PressedHueShift  = 30
	ClosedBevelShift = 40
)

// -----------------------------------------------------------------------------
// Renderer
// -----------------------------------------------------------------------------

// CellSource is the read-only view of a session the renderer needs.
type CellSource interface {
	ForEachCell(fn func(x, y int, c *core.Cell))
}

type BoardRenderer struct {
	geom        layout.Geometry
	defaultFont font.Face
	showMines   bool
}

// NewBoardRenderer returns a renderer ready to use.
func NewBoardRenderer(geom layout.Geometry, f font.Face) *BoardRenderer {
	return &BoardRenderer{geom: geom, defaultFont: f}
}

// SetGeometry switches to a new layout after a resize.
func (br *BoardRenderer) SetGeometry(geom layout.Geometry) { br.geom = geom }

// SetShowMines draws a hint on closed mine cells. Development only.
func (br *BoardRenderer) SetShowMines(show bool) { br.showMines = show }

// Draw renders every cell on the supplied Ebiten screen.
func (br *BoardRenderer) Draw(screen *ebiten.Image, src CellSource) {
	if src == nil {
		return
	}
	src.ForEachCell(func(x, y int, c *core.Cell) {
		r := br.geom.CellRect(x, y)
		br.drawCell(screen, r.Min.X, r.Min.Y, c)
	})
}

func (br *BoardRenderer) drawCell(screen *ebiten.Image, px, py int, c *core.Cell) {
	size := float32(br.geom.TileSize)
	fx, fy := float32(px), float32(py)

	// -------------------------------------------------------------------------
	// Background pass
	// -------------------------------------------------------------------------
	switch c.Vis {
	case core.VisClosed, core.VisFlagged, core.VisFlagMistake:
		vector.DrawFilledRect(screen, fx, fy, size, size, shiftColor(ClosedColor, ClosedBevelShift), false)
		if size > 2 {
			vector.DrawFilledRect(screen, fx+1, fy+1, size-1, size-1, ClosedColor, false)
		}
	case core.VisPressed:
		vector.DrawFilledRect(screen, fx, fy, size, size, shiftColor(ClosedColor, PressedHueShift), false)
	case core.VisMistake:
		vector.DrawFilledRect(screen, fx, fy, size, size, MistakeColor, false)
	default:
		vector.DrawFilledRect(screen, fx, fy, size, size, OpenColor, false)
	}
	vector.StrokeRect(screen, fx, fy, size, size, 1, GridColor, false)

	// -------------------------------------------------------------------------
	// Symbol pass
	// -------------------------------------------------------------------------
	switch c.Vis {
	case core.VisOpen:
		if c.Adjacent > 0 {
			br.drawLabel(screen, px, py, strconv.Itoa(int(c.Adjacent)), NumberColors[c.Adjacent])
		}
	case core.VisShowMine, core.VisMistake:
		br.drawMine(screen, fx, fy, size, MineColor)
	case core.VisFlagged:
		br.drawFlag(screen, fx, fy, size)
	case core.VisFlagMistake:
		br.drawFlag(screen, fx, fy, size)
		br.drawLabel(screen, px, py, "x", MineColor)
	case core.VisClosed:
		if br.showMines && c.Mine {
			br.drawMine(screen, fx, fy, size, HintColor)
		}
	}
}

func (br *BoardRenderer) drawMine(screen *ebiten.Image, fx, fy, size float32, clr color.Color) {
	vector.DrawFilledCircle(screen, fx+size/2, fy+size/2, size/4, clr, true)
}

func (br *BoardRenderer) drawFlag(screen *ebiten.Image, fx, fy, size float32) {
	m := size / 3
	vector.DrawFilledRect(screen, fx+m, fy+m/2, m, m, FlagColor, false)
	vector.StrokeLine(screen, fx+m, fy+m/2, fx+m, fy+size-m/2, 1, MineColor, false)
}

func (br *BoardRenderer) drawLabel(screen *ebiten.Image, px, py int, label string, clr color.Color) {
	if br.defaultFont == nil || br.geom.TileSize < 10 {
		return
	}
	// text bounds in pixels
	b := text.BoundString(br.defaultFont, label)
	textW := b.Max.X - b.Min.X
	textH := b.Max.Y - b.Min.Y

	x := px + (br.geom.TileSize-textW)/2
	y := py + (br.geom.TileSize+textH)/2
	text.Draw(screen, label, br.defaultFont, x, y, clr)
}

// shiftColor returns a slightly lighter version of c.
func shiftColor(c color.Color, amount int) color.Color {
	r, g, b, a := c.RGBA()
	inc := uint32(amount) << 8 // amount*256

	r = clamp16(r + inc)
	g = clamp16(g + inc)
	b = clamp16(b + inc)
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func clamp16(v uint32) uint32 {
	const max = 0xFFFF
	if v > max {
		return max
	}
	return v
}
