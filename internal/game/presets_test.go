package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
)

func TestPresetByName(t *testing.T) {
	tests := []struct {
		name     string
		expected Preset
	}{
		{"beginner", Preset{"beginner", 9, 9, 10}},
		{"Intermediate", Preset{"intermediate", 16, 16, 40}},
		{"EXPERT", Preset{"expert", 30, 16, 99}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := PresetByName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}

	_, err := PresetByName("nightmare")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestCustom(t *testing.T) {
	p, err := Custom(1000, 1000, 1000)
	require.NoError(t, err)
	assert.Equal(t, "custom 1000x1000/1000", p.String())

	_, err = Custom(1001, 10, 10)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = Custom(10, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidMineCount)
	_, err = Custom(10, 10, MaxCustomMines+1)
	assert.ErrorIs(t, err, ErrInvalidMineCount)
}

func TestStats(t *testing.T) {
	st := NewStats("stats")
	assert.Equal(t, "stats", st.ID())
	assert.True(t, st.InterestedIn(events.TypeGameWon))
	assert.False(t, st.InterestedIn(events.TypeCellsOpened))

	start := core.NewCoordinate(0, 0)
	st.HandleEvent(events.NewGameStartedEvent("a", 9, 9, 10, start))
	st.HandleEvent(events.NewGameWonEvent("a", 9, 9, 10, 40*time.Second, 20))
	st.HandleEvent(events.NewGameStartedEvent("b", 9, 9, 10, start))
	st.HandleEvent(events.NewGameWonEvent("b", 9, 9, 10, 25*time.Second, 18))
	st.HandleEvent(events.NewGameStartedEvent("c", 9, 9, 10, start))
	st.HandleEvent(events.NewGameLostEvent("c", start, 9, 9, 10, time.Second, 2))
	st.HandleEvent(events.NewGameStartedEvent("d", 30, 16, 99, start))

	beginner := st.ForShape(Shape{9, 9, 10})
	assert.Equal(t, 3, beginner.Played)
	assert.Equal(t, 2, beginner.Won)
	assert.Equal(t, 1, beginner.Lost)
	assert.Equal(t, 25*time.Second, beginner.BestWin)
	assert.InDelta(t, 2.0/3.0, beginner.WinRate(), 1e-9)

	all := st.All()
	require.Len(t, all, 2)
	assert.Equal(t, 9, all[0].Width, "smallest board first")
	assert.Equal(t, 30, all[1].Width)
	assert.Equal(t, 0.0, all[1].WinRate())

	totals := st.Totals()
	assert.Equal(t, 4, totals.Played)
	assert.Equal(t, 2, totals.Won)
	assert.Equal(t, 1, totals.Lost)

	assert.Equal(t, 0, st.ForShape(Shape{16, 16, 40}).Played)
}

func TestResolvePreset(t *testing.T) {
	p, err := ResolvePreset("expert", 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, Expert, p)

	p, err = ResolvePreset("Custom", 50, 40, 300)
	require.NoError(t, err)
	assert.Equal(t, Preset{"custom", 50, 40, 300}, p)

	_, err = ResolvePreset("custom", 50, 40, 0)
	assert.ErrorIs(t, err, ErrInvalidMineCount)
}
