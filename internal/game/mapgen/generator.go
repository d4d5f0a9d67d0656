package mapgen

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
)

var (
	ErrStartOutOfBounds = errors.New("start cell out of bounds")
	ErrAlreadyGenerated = errors.New("board already has mines")
)

// Generator places mines on a board after the player's first reveal.
type Generator struct {
	sampler Sampler
	logger  zerolog.Logger
}

// NewGenerator creates a generator drawing from sampler. A nil sampler uses
// an OS-seeded source.
func NewGenerator(sampler Sampler, logger zerolog.Logger) *Generator {
	if sampler == nil {
		sampler = NewUniformSampler(NewCryptoSource())
	}
	return &Generator{
		sampler: sampler,
		logger:  logger.With().Str("component", "MineGenerator").Logger(),
	}
}

// MaxMines is the most mines a board of the given size can hold: every cell
// but the one the player opened first.
func MaxMines(w, h int) int {
	if w*h < 1 {
		return 0
	}
	return w*h - 1
}

// Place lays mines on an empty board so that (startX, startY) is safe, then
// fills in neighbor counts. It returns the number of mines placed, which is
// mines clamped to MaxMines.
//
// The start cell's neighbors are kept clear too, in reading order, for as long
// as the board has room; on crowded boards the later neighbors become
// eligible so the requested count can still be met.
func (g *Generator) Place(b *core.Board, startX, startY, mines int) (int, error) {
	if !b.InBounds(startX, startY) {
		return 0, fmt.Errorf("%s on %dx%d board: %w", core.NewCoordinate(startX, startY), b.W, b.H, ErrStartOutOfBounds)
	}
	if b.MineCount() > 0 {
		return 0, ErrAlreadyGenerated
	}
	if mines < 0 {
		return 0, fmt.Errorf("%d: %w", mines, core.ErrInvalidMineCount)
	}
	if limit := MaxMines(b.W, b.H); mines > limit {
		g.logger.Debug().Int("requested", mines).Int("clamped", limit).Msg("Mine count clamped to board size")
		mines = limit
	}

	eligible := make([]bool, b.Size())
	for i := range eligible {
		eligible[i] = true
	}
	eligible[b.Idx(startX, startY)] = false

	spare := b.Size() - 1 - mines
	protected := 0
	b.ForEachNeighbor(startX, startY, func(idx int) {
		if spare > 0 {
			eligible[idx] = false
			protected++
			spare--
		}
	})

	set := newEligibleSet(eligible)
	available := b.Size() - 1 - protected
	for i := 0; i < mines; i++ {
		idx := set.kth(g.sampler.Intn(available))
		b.C[idx].Mine = true
		set.remove(idx)
		available--
	}

	b.RecountAdjacent()

	g.logger.Debug().
		Int("width", b.W).
		Int("height", b.H).
		Int("mines", mines).
		Int("protected_neighbors", protected).
		Str("start", core.NewCoordinate(startX, startY).String()).
		Msg("Mines placed")

	return mines, nil
}
