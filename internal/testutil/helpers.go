package testutil

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// NewTestRNG creates a deterministic random number generator for tests
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// FixedSampler replays a scripted sequence of draws, clamping each to [0, n).
// Once the script runs out it keeps returning 0.
type FixedSampler struct {
	Draws []int
	Calls []int // the n passed to every Intn call
}

func (f *FixedSampler) Intn(n int) int {
	f.Calls = append(f.Calls, n)
	if len(f.Draws) == 0 {
		return 0
	}
	d := f.Draws[0]
	f.Draws = f.Draws[1:]
	if d >= n {
		d = n - 1
	}
	return d
}

// FakeClock is a manually advanced clock for timer tests
type FakeClock struct {
	T time.Time
}

// NewFakeClock starts a clock at a fixed instant
func NewFakeClock() *FakeClock {
	return &FakeClock{T: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *FakeClock) Now() time.Time {
	return c.T
}

func (c *FakeClock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}
