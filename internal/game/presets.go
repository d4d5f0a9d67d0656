package game

import (
	"fmt"
	"strings"
)

const (
	// MaxDimension is the widest or tallest board a session accepts.
	MaxDimension = 1000
	// MaxCustomMines is the largest mine count offered for custom boards.
	MaxCustomMines = 1000
)

// Preset is a named board shape
type Preset struct {
	Name   string
	Width  int
	Height int
	Mines  int
}

var (
	Beginner     = Preset{Name: "beginner", Width: 9, Height: 9, Mines: 10}
	Intermediate = Preset{Name: "intermediate", Width: 16, Height: 16, Mines: 40}
	Expert       = Preset{Name: "expert", Width: 30, Height: 16, Mines: 99}
)

// Presets lists the built-in difficulties from easiest to hardest.
func Presets() []Preset {
	return []Preset{Beginner, Intermediate, Expert}
}

// PresetByName looks up a built-in difficulty, ignoring case.
func PresetByName(name string) (Preset, error) {
	for _, p := range Presets() {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
}

// Custom builds a preset from user-chosen values after checking them against
// the custom board limits.
func Custom(width, height, mines int) (Preset, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return Preset{}, err
	}
	if mines < 1 || mines > MaxCustomMines {
		return Preset{}, fmt.Errorf("%d not in 1..%d: %w", mines, MaxCustomMines, ErrInvalidMineCount)
	}
	return Preset{Name: "custom", Width: width, Height: height, Mines: mines}, nil
}

// ValidateDimensions checks a board shape against 1..MaxDimension.
func ValidateDimensions(width, height int) error {
	if width < 1 || height < 1 || width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%dx%d not in 1..%d: %w", width, height, MaxDimension, ErrInvalidDimensions)
	}
	return nil
}

func (p Preset) String() string {
	return fmt.Sprintf("%s %dx%d/%d", p.Name, p.Width, p.Height, p.Mines)
}

// ResolvePreset turns a configured difficulty into a board shape. The custom
// name takes its values from width, height and mines.
func ResolvePreset(name string, width, height, mines int) (Preset, error) {
	if strings.EqualFold(name, "custom") {
		return Custom(width, height, mines)
	}
	return PresetByName(name)
}
