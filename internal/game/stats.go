package game

import (
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
)

// This file contains session statistics, collected from the event bus.

// Shape identifies a board configuration for statistics
type Shape struct {
	Width  int
	Height int
	Mines  int
}

// ShapeStats are the results recorded for one board shape
type ShapeStats struct {
	Shape
	Played  int
	Won     int
	Lost    int
	BestWin time.Duration // zero until the first win
}

// WinRate is the fraction of decided games that were won.
func (s ShapeStats) WinRate() float64 {
	decided := s.Won + s.Lost
	if decided == 0 {
		return 0
	}
	return float64(s.Won) / float64(decided)
}

// Stats is a bus subscriber tallying games per board shape. A game counts as
// played once its mines are laid.
type Stats struct {
	id      string
	mu      sync.RWMutex
	byShape map[Shape]*ShapeStats
}

// NewStats creates an empty statistics subscriber
func NewStats(id string) *Stats {
	return &Stats{
		id:      id,
		byShape: make(map[Shape]*ShapeStats),
	}
}

func (st *Stats) ID() string {
	return st.id
}

func (st *Stats) InterestedIn(eventType string) bool {
	switch eventType {
	case events.TypeGameStarted, events.TypeGameWon, events.TypeGameLost:
		return true
	}
	return false
}

func (st *Stats) HandleEvent(event events.Event) {
	st.mu.Lock()
	defer st.mu.Unlock()

	switch e := event.(type) {
	case *events.GameStartedEvent:
		st.entry(Shape{e.Width, e.Height, e.Mines}).Played++
	case *events.GameWonEvent:
		rec := st.entry(Shape{e.Width, e.Height, e.Mines})
		rec.Won++
		if rec.BestWin == 0 || e.Duration < rec.BestWin {
			rec.BestWin = e.Duration
		}
	case *events.GameLostEvent:
		st.entry(Shape{e.Width, e.Height, e.Mines}).Lost++
	}
}

func (st *Stats) entry(shape Shape) *ShapeStats {
	rec, ok := st.byShape[shape]
	if !ok {
		rec = &ShapeStats{Shape: shape}
		st.byShape[shape] = rec
	}
	return rec
}

// ForShape returns the record for one shape; zero counts if never played.
func (st *Stats) ForShape(shape Shape) ShapeStats {
	st.mu.RLock()
	defer st.mu.RUnlock()

	if rec, ok := st.byShape[shape]; ok {
		return *rec
	}
	return ShapeStats{Shape: shape}
}

// All returns every shape's record, smallest board first.
func (st *Stats) All() []ShapeStats {
	st.mu.RLock()
	defer st.mu.RUnlock()

	all := lo.MapToSlice(st.byShape, func(_ Shape, rec *ShapeStats) ShapeStats { return *rec })
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.Width*a.Height != b.Width*b.Height {
			return a.Width*a.Height < b.Width*b.Height
		}
		if a.Width != b.Width {
			return a.Width < b.Width
		}
		return a.Mines < b.Mines
	})
	return all
}

// Totals sums the records across every shape. BestWin is left zero.
func (st *Stats) Totals() ShapeStats {
	return lo.Reduce(st.All(), func(acc ShapeStats, rec ShapeStats, _ int) ShapeStats {
		acc.Played += rec.Played
		acc.Won += rec.Won
		acc.Lost += rec.Lost
		return acc
	}, ShapeStats{})
}
