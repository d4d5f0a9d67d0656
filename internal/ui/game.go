package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/mitchelldurbincs/minesweeper/internal/game"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
	"github.com/mitchelldurbincs/minesweeper/internal/ui/input"
	"github.com/mitchelldurbincs/minesweeper/internal/ui/layout"
	"github.com/mitchelldurbincs/minesweeper/internal/ui/renderer"
)

// MaxScreenSize bounds the logical screen; bigger boards get smaller tiles.
const MaxScreenSize = 4096

// Options are the window settings taken from configuration
type Options struct {
	Title        string
	TileSize     int
	Margin       int
	HeaderHeight int
	ShowMines    bool
}

// UIGame drives a session from mouse and keyboard input
type UIGame struct {
	session       *game.Session
	geom          layout.Geometry
	tracker       *layout.Tracker
	keys          *input.Handler
	boardRenderer *renderer.BoardRenderer
	defaultFont   font.Face
	opts          Options
	showMines     bool
	logger        zerolog.Logger

	// reconfigure carries option changes from the config watcher goroutine
	reconfigure chan Options
}

// NewUIGame creates a new Ebitengine game instance.
func NewUIGame(session *game.Session, opts Options, logger zerolog.Logger) (*UIGame, error) {
	g := &UIGame{
		session:     session,
		keys:        input.NewHandler(opts.ShowMines),
		defaultFont: basicfont.Face7x13,
		opts:        opts,
		showMines:   opts.ShowMines,
		logger:      logger.With().Str("component", "ui").Logger(),
		reconfigure: make(chan Options, 1),
	}
	g.geom = g.computeGeometry()
	g.tracker = layout.NewTracker(g.geom)
	g.boardRenderer = renderer.NewBoardRenderer(g.geom, g.defaultFont)
	g.boardRenderer.SetShowMines(g.showMines)

	session.Events().SubscribeFunc(g.updateTitle,
		events.TypeGameStarted, events.TypeGameWon, events.TypeGameLost, events.TypeGameReset)
	return g, nil
}

// updateTitle shows the result of the last game in the window title.
// Handlers run inside Update, on the game loop goroutine.
func (g *UIGame) updateTitle(e events.Event) {
	title := g.opts.Title
	switch e := e.(type) {
	case *events.GameWonEvent:
		title = fmt.Sprintf("%s - won in %ds", title, int(e.Duration.Seconds()))
	case *events.GameLostEvent:
		title = fmt.Sprintf("%s - lost at %s", title, e.At)
	}
	ebiten.SetWindowTitle(title)
}

func (g *UIGame) computeGeometry() layout.Geometry {
	return layout.Geometry{
		TileSize:     g.opts.TileSize,
		Margin:       g.opts.Margin,
		HeaderHeight: g.opts.HeaderHeight,
		Cols:         g.session.Width(),
		Rows:         g.session.Height(),
	}.Fit(MaxScreenSize, MaxScreenSize)
}

// WindowSize is the initial window size for the current board.
func (g *UIGame) WindowSize() (int, int) {
	return g.geom.ScreenSize()
}

// Reconfigure queues new options for the next frame. Safe to call from any
// goroutine; a newer call replaces one not yet applied.
func (g *UIGame) Reconfigure(opts Options) {
	select {
	case <-g.reconfigure:
	default:
	}
	g.reconfigure <- opts
}

// Update proceeds the game state.
func (g *UIGame) Update() error {
	select {
	case opts := <-g.reconfigure:
		g.opts = opts
		g.showMines = opts.ShowMines
		g.keys = input.NewHandler(opts.ShowMines)
		g.boardRenderer.SetShowMines(g.showMines)
		ebiten.SetWindowTitle(opts.Title)
		g.relayout()
	default:
	}

	switch g.keys.Update() {
	case input.CommandReset:
		g.session.Reset()
	case input.CommandBeginner:
		g.resize(game.Beginner)
	case input.CommandIntermediate:
		g.resize(game.Intermediate)
	case input.CommandExpert:
		g.resize(game.Expert)
	case input.CommandToggleMines:
		g.showMines = !g.showMines
		g.boardRenderer.SetShowMines(g.showMines)
	}

	for _, intent := range g.tracker.Step(input.PollPointer()) {
		g.apply(intent)
	}
	return nil
}

func (g *UIGame) apply(intent layout.Intent) {
	var err error
	switch intent.Kind {
	case layout.IntentPress:
		g.session.Press(intent.X, intent.Y)
	case layout.IntentRelease:
		g.session.Release()
	case layout.IntentReveal:
		_, err = g.session.Reveal(intent.X, intent.Y)
	case layout.IntentFlag:
		_, err = g.session.ToggleFlag(intent.X, intent.Y)
	case layout.IntentReset:
		g.session.Reset()
	}
	if err != nil {
		g.logger.Warn().Err(err).Str("intent", intent.Kind.String()).Msg("Input rejected")
	}
}

func (g *UIGame) resize(p game.Preset) {
	if err := g.session.Resize(p.Width, p.Height, p.Mines); err != nil {
		g.logger.Error().Err(err).Str("preset", p.Name).Msg("Resize failed")
		return
	}
	g.relayout()
}

func (g *UIGame) relayout() {
	g.geom = g.computeGeometry()
	g.tracker.SetGeometry(g.geom)
	g.boardRenderer.SetGeometry(g.geom)
	ebiten.SetWindowSize(g.geom.ScreenSize())
}

// Draw renders the game screen.
func (g *UIGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 190, G: 190, B: 190, A: 255})

	renderer.DrawHeader(screen, g.geom, g.defaultFont, renderer.Header{
		MinesRemaining: g.session.MinesRemaining(),
		Seconds:        g.session.ElapsedSeconds(),
		Face:           g.face(),
	})
	g.boardRenderer.Draw(screen, g.session)
}

func (g *UIGame) face() string {
	switch g.session.Status() {
	case game.StatusWon:
		return "B)"
	case game.StatusLost:
		return "X("
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return ":o"
	}
	return ":)"
}

// Layout defines the Ebitengine screen size.
func (g *UIGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.geom.ScreenSize()
}
