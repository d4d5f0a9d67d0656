package renderer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/minesweeper/internal/ui/layout"
)

var (
	HeaderColor  = color.RGBA{190, 190, 190, 255}
	CounterColor = color.RGBA{220, 0, 0, 255}
	DisplayColor = color.RGBA{0, 0, 0, 255}
	FaceColor    = color.RGBA{250, 220, 40, 255}
)

// Header is what the status strip shows above the board
type Header struct {
	MinesRemaining int
	Seconds        int
	Face           string
}

// DrawHeader renders the mine counter, the reset face and the timer.
func DrawHeader(screen *ebiten.Image, geom layout.Geometry, f font.Face, h Header) {
	w, _ := geom.ScreenSize()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(geom.HeaderHeight), HeaderColor, false)
	if f == nil {
		return
	}

	face := geom.FaceRect()
	vector.DrawFilledRect(screen, float32(face.Min.X), float32(face.Min.Y),
		float32(face.Dx()), float32(face.Dy()), FaceColor, false)
	b := text.BoundString(f, h.Face)
	text.Draw(screen, h.Face, f,
		face.Min.X+(face.Dx()-b.Dx())/2, face.Min.Y+(face.Dy()+b.Dy())/2, DisplayColor)

	baseline := geom.HeaderHeight/2 + f.Metrics().Ascent.Round()/2
	drawCounter(screen, f, counterText(h.MinesRemaining), geom.Margin, baseline)

	timer := counterText(h.Seconds)
	tb := text.BoundString(f, timer)
	drawCounter(screen, f, timer, w-geom.Margin-tb.Dx(), baseline)
}

func drawCounter(screen *ebiten.Image, f font.Face, s string, x, y int) {
	b := text.BoundString(f, s)
	vector.DrawFilledRect(screen, float32(x-2), float32(y+b.Min.Y-2),
		float32(b.Dx()+4), float32(b.Dy()+4), DisplayColor, false)
	text.Draw(screen, s, f, x, y, CounterColor)
}

// counterText formats a three-digit display. Negative counts keep their sign.
func counterText(n int) string {
	switch {
	case n > 999:
		n = 999
	case n < -99:
		n = -99
	}
	if n < 0 {
		return fmt.Sprintf("-%02d", -n)
	}
	return fmt.Sprintf("%03d", n)
}
