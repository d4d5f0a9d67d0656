package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

// This file contains the text rendering of a session, used by the terminal
// client and in logs.

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"

	BgRed = "\033[41m"
)

// Classic palette for the numbers 1..8
var numberColors = [core.MaxAdjacent + 1]string{
	"", ColorBlue, ColorGreen, ColorRed, ColorPurple, ColorYellow, ColorCyan, ColorWhite, ColorGray,
}

// CellSymbol is the single character a cell is drawn with.
func CellSymbol(c core.Cell) byte {
	switch c.Vis {
	case core.VisOpen:
		if c.Adjacent == 0 {
			return '.'
		}
		return '0' + c.Adjacent
	case core.VisFlagged:
		return 'F'
	case core.VisShowMine:
		return '*'
	case core.VisMistake:
		return 'X'
	case core.VisFlagMistake:
		return 'x'
	case core.VisPressed:
		return '_'
	default:
		return '#'
	}
}

// String renders the board as plain text with a status header.
func (s *Session) String() string {
	return s.Render(false)
}

// Render draws the session as text, optionally with ANSI colors.
func (s *Session) Render(color bool) string {
	b := s.board
	width := len(fmt.Sprint(max(b.W, b.H) - 1))

	var sb strings.Builder
	sb.Grow((b.W*(width+1) + width + 2) * (b.H + 3))

	fmt.Fprintf(&sb, "%s  mines:%d  time:%d\n", s.Status(), s.MinesRemaining(), s.ElapsedSeconds())

	// Header row
	sb.WriteString(strings.Repeat(" ", width+1))
	for x := 0; x < b.W; x++ {
		fmt.Fprintf(&sb, "%*d", width+1, x)
	}
	sb.WriteByte('\n')

	for y := 0; y < b.H; y++ {
		fmt.Fprintf(&sb, "%*d ", width, y)
		for x := 0; x < b.W; x++ {
			sb.WriteString(strings.Repeat(" ", width))
			writeCell(&sb, b.C[b.Idx(x, y)], color)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func writeCell(sb *strings.Builder, c core.Cell, color bool) {
	sym := CellSymbol(c)
	if !color {
		sb.WriteByte(sym)
		return
	}

	switch {
	case c.Vis == core.VisOpen && c.Adjacent > 0:
		sb.WriteString(numberColors[c.Adjacent])
	case c.Vis == core.VisOpen:
		sb.WriteString(ColorGray)
	case c.Vis == core.VisMistake:
		sb.WriteString(BgRed)
	case c.Vis == core.VisFlagged || c.Vis == core.VisFlagMistake:
		sb.WriteString(ColorRed)
	default:
		sb.WriteString(ColorWhite)
	}
	sb.WriteByte(sym)
	sb.WriteString(ColorReset)
}
