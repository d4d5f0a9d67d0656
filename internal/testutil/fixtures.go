package testutil

import (
	"strings"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

// BoardFromLayout builds a board from text rows. '*' is a mine, anything else
// is a safe cell. Neighbor counts are filled in and every cell is closed.
func BoardFromLayout(rows ...string) *core.Board {
	b := core.NewBoard(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			if ch == '*' {
				b.C[b.Idx(x, y)].Mine = true
			}
		}
	}
	b.RecountAdjacent()
	return b
}

// MineLayout renders the mine positions of b in BoardFromLayout's format.
func MineLayout(b *core.Board) []string {
	rows := make([]string, b.H)
	for y := 0; y < b.H; y++ {
		var sb strings.Builder
		for x := 0; x < b.W; x++ {
			if b.C[b.Idx(x, y)].Mine {
				sb.WriteByte('*')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}
