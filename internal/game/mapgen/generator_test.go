package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/mitchelldurbincs/minesweeper/internal/testutil"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(NewUniformSampler(testutil.NewTestRNG(seed)), testutil.NopLogger())
}

func TestMaxMines(t *testing.T) {
	assert.Equal(t, 80, MaxMines(9, 9))
	assert.Equal(t, 0, MaxMines(1, 1))
	assert.Equal(t, 0, MaxMines(0, 5))
}

func TestPlace_ProtectsStartNeighborhood(t *testing.T) {
	tests := []struct {
		name           string
		w, h, mines    int
		startX, startY int
	}{
		{"beginner centre", 9, 9, 10, 4, 4},
		{"beginner corner", 9, 9, 10, 0, 0},
		{"expert edge", 30, 16, 99, 15, 0},
		{"intermediate far corner", 16, 16, 40, 15, 15},
		{"dense custom", 10, 10, 91, 5, 5},
	}

	for _, tt := range tests {
		for seed := int64(1); seed <= 20; seed++ {
			t.Run(tt.name, func(t *testing.T) {
				b := core.NewBoard(tt.w, tt.h)
				placed, err := newTestGenerator(seed).Place(b, tt.startX, tt.startY, tt.mines)
				require.NoError(t, err)

				assert.Equal(t, tt.mines, placed)
				assert.Equal(t, tt.mines, b.MineCount())
				assert.False(t, b.GetCell(tt.startX, tt.startY).Mine, "start cell must be safe")
				b.ForEachNeighbor(tt.startX, tt.startY, func(idx int) {
					assert.False(t, b.C[idx].Mine, "neighbor %d of start must be safe", idx)
				})
				assert.Equal(t, uint8(0), b.GetCell(tt.startX, tt.startY).Adjacent)
			})
		}
	}
}

func TestPlace_AdjacencyMatchesLayout(t *testing.T) {
	b := core.NewBoard(16, 16)
	_, err := newTestGenerator(7).Place(b, 3, 3, 40)
	require.NoError(t, err)

	for i, c := range b.C {
		if c.Mine {
			continue
		}
		x, y := b.XY(i)
		want := uint8(0)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if n := b.GetCell(x+dx, y+dy); n != nil && n.Mine {
					want++
				}
			}
		}
		assert.Equal(t, want, c.Adjacent, "cell (%d,%d)", x, y)
	}
}

func TestPlace_ClampsMineCount(t *testing.T) {
	tests := []struct {
		name           string
		w, h, mines    int
		startX, startY int
		expected       int
	}{
		{"more mines than cells", 4, 4, 100, 0, 0, 15},
		{"exactly full", 4, 4, 15, 2, 2, 15},
		{"single cell", 1, 1, 5, 0, 0, 0},
		{"single row", 5, 1, 9, 2, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := core.NewBoard(tt.w, tt.h)
			placed, err := newTestGenerator(1).Place(b, tt.startX, tt.startY, tt.mines)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, placed)
			assert.Equal(t, tt.expected, b.MineCount())
			assert.False(t, b.GetCell(tt.startX, tt.startY).Mine, "start cell is always safe")
		})
	}
}

func TestPlace_CrowdedThreeByThree(t *testing.T) {
	// 9 cells, 1 mine, centre start: only 7 neighbors fit in the protected set,
	// so the last neighbor in reading order is the only legal spot.
	sampler := &testutil.FixedSampler{}
	b := core.NewBoard(3, 3)

	placed, err := NewGenerator(sampler, testutil.NopLogger()).Place(b, 1, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, placed)
	assert.Equal(t, []int{1}, sampler.Calls, "one draw over the single eligible cell")
	assert.Equal(t, []string{
		"...",
		"...",
		"..*",
	}, testutil.MineLayout(b))
	assert.Equal(t, uint8(1), b.GetCell(1, 1).Adjacent)
}

func TestPlace_SequentialIndexedSelection(t *testing.T) {
	// 5x3 board, start (0,0): protected = (0,0),(1,0),(0,1),(1,1).
	// Eligible in row-major order: 2,3,4,7,8,9,10,11,12,13,14.
	sampler := &testutil.FixedSampler{Draws: []int{0, 0, 8}}
	b := core.NewBoard(5, 3)

	_, err := NewGenerator(sampler, testutil.NopLogger()).Place(b, 0, 0, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{11, 10, 9}, sampler.Calls, "pool shrinks by one per mine")
	assert.Equal(t, []string{
		"..**.",
		".....",
		"....*",
	}, testutil.MineLayout(b))
}

func TestPlace_Deterministic(t *testing.T) {
	a := core.NewBoard(30, 16)
	b := core.NewBoard(30, 16)

	_, err := newTestGenerator(42).Place(a, 10, 10, 99)
	require.NoError(t, err)
	_, err = newTestGenerator(42).Place(b, 10, 10, 99)
	require.NoError(t, err)

	assert.Equal(t, a.C, b.C, "same seed must give the same layout")
}

func TestPlace_Errors(t *testing.T) {
	g := newTestGenerator(1)

	t.Run("start out of bounds", func(t *testing.T) {
		_, err := g.Place(core.NewBoard(3, 3), 3, 0, 1)
		assert.ErrorIs(t, err, ErrStartOutOfBounds)
	})

	t.Run("negative mines", func(t *testing.T) {
		_, err := g.Place(core.NewBoard(3, 3), 0, 0, -1)
		assert.ErrorIs(t, err, core.ErrInvalidMineCount)
	})

	t.Run("already generated", func(t *testing.T) {
		b := core.NewBoard(5, 5)
		_, err := g.Place(b, 0, 0, 3)
		require.NoError(t, err)
		_, err = g.Place(b, 0, 0, 3)
		assert.ErrorIs(t, err, ErrAlreadyGenerated)
	})

	t.Run("hand-laid board", func(t *testing.T) {
		b := testutil.BoardFromLayout(
			"..*",
			"...",
		)
		_, err := g.Place(b, 0, 0, 1)
		assert.ErrorIs(t, err, ErrAlreadyGenerated)
		assert.Equal(t, []string{"..*", "..."}, testutil.MineLayout(b), "board untouched")
	})
}

func TestPlace_LargeCustomBoard(t *testing.T) {
	b := core.NewBoard(1000, 1000)
	placed, err := newTestGenerator(3).Place(b, 500, 500, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1000, placed)
	assert.Equal(t, 1000, b.MineCount())
}

func TestEligibleSet_MatchesLinearScan(t *testing.T) {
	flags := []bool{true, false, true, true, false, false, true, true, true, false, true}
	set := newEligibleSet(flags)

	rng := testutil.NewTestRNG(9)
	for set.total() > 0 {
		k := rng.Intn(set.total())

		want := -1
		count := k
		for i, ok := range flags {
			if ok {
				if count == 0 {
					want = i
					break
				}
				count--
			}
		}

		got := set.kth(k)
		require.Equal(t, want, got, "k=%d", k)
		set.remove(got)
		flags[got] = false
	}
}
