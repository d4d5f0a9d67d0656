package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mitchelldurbincs/minesweeper/internal/ui/layout"
)

func IsLeftClickJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func IsRightClickJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
}

func GetCursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// PollPointer samples the mouse for the current frame.
func PollPointer() layout.PointerState {
	x, y := GetCursorPosition()
	return layout.PointerState{
		X:            x,
		Y:            y,
		LeftDown:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		LeftReleased: IsLeftClickJustReleased(),
		RightPressed: IsRightClickJustPressed(),
	}
}
