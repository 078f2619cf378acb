// Package gui runs the artillery duel in a desktop window with ebiten.
package gui

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/artillery-duel/internal/core"
	"github.com/vovakirdan/artillery-duel/internal/match"
	"github.com/vovakirdan/artillery-duel/internal/storage"
)

// button is a clickable menu entry in field pixels.
type button struct {
	label string
	rect  image.Rectangle
}

func (b button) hit(x, y int) bool {
	return image.Pt(x, y).In(b.rect)
}

// Game implements ebiten.Game around a match.
type Game struct {
	cfg    match.Config
	store  *storage.Store
	logger *log.Logger

	match *match.Match
	seed  int64
	keys  *keyboard

	startButton   button
	quitButton    button
	prevMouseLeft bool
	cursor        func() (int, int)
	mouseLeft     func() bool

	paused bool
	saved  bool
	wins   int
	losses int
	status string
}

// Option configures a Game.
type Option func(*Game)

// WithLogger routes match events to logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithStore logs finished matches to store.
func WithStore(store *storage.Store) Option {
	return func(g *Game) { g.store = store }
}

// WithSeed fixes the seed of the first match.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// New creates a window game that opens on the menu.
func New(cfg match.Config, opts ...Option) *Game {
	g := &Game{
		cfg:       cfg,
		logger:    log.New(io.Discard),
		keys:      newKeyboard(nil),
		cursor:    ebiten.CursorPosition,
		mouseLeft: func() bool { return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) },
	}
	for _, opt := range opts {
		opt(g)
	}

	const bw, bh = 160, 36
	cx, cy := cfg.FieldW/2, cfg.FieldH/2
	g.startButton = button{label: "START", rect: image.Rect(cx-bw/2, cy-10, cx+bw/2, cy-10+bh)}
	g.quitButton = button{label: "QUIT", rect: image.Rect(cx-bw/2, cy+40, cx+bw/2, cy+40+bh)}

	g.newMatch()
	return g
}

// newMatch builds a fresh battlefield in the menu phase.
func (g *Game) newMatch() {
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.match = match.NewSeeded(g.cfg, g.seed)
	g.paused = false
	g.saved = false
	g.status = ""
}

func (g *Game) tickRate() int {
	if g.cfg.TickRate <= 0 {
		return 60
	}
	return g.cfg.TickRate
}

// Update advances the game by one tick.
func (g *Game) Update() error {
	g.keys.poll()

	if g.keys.justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	switch g.match.Phase() {
	case match.PhaseMenu:
		return g.updateMenu()
	case match.PhaseOver:
		if g.keys.justPressed(ebiten.KeyR) || g.keys.justPressed(ebiten.KeyEnter) {
			g.rematch()
		}
		if g.keys.justPressed(ebiten.KeyEscape) {
			g.toMenu()
		}
		return nil
	}

	if g.keys.justPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.keys.justPressed(ebiten.KeyEscape) {
		g.toMenu()
		return nil
	}
	if g.paused {
		return nil
	}

	res := g.match.Step(g.keys, 1/float64(g.tickRate()))
	g.handleEvents(res.Events)
	return nil
}

func (g *Game) updateMenu() error {
	mouse := g.mouseLeft()
	clicked := mouse && !g.prevMouseLeft
	g.prevMouseLeft = mouse

	if clicked {
		x, y := g.cursor()
		switch {
		case g.startButton.hit(x, y):
			g.start()
		case g.quitButton.hit(x, y):
			return ebiten.Termination
		}
		return nil
	}

	if g.keys.justPressed(ebiten.KeyEnter) {
		g.start()
	}
	if g.keys.justPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) start() {
	g.match.Start()
	g.logger.Debug("match started", "seed", g.seed)
}

// rematch starts a new battlefield straight away.
func (g *Game) rematch() {
	g.seed = 0
	g.newMatch()
	g.start()
}

// toMenu abandons the current match for a fresh one waiting in the menu.
func (g *Game) toMenu() {
	g.seed = 0
	g.newMatch()
}

func (g *Game) handleEvents(events []match.Event) {
	for _, e := range events {
		switch e.Kind {
		case match.EventTurnStarted:
			if e.Side == core.SidePlayer {
				g.status = "Your turn: hold SPACE to charge, release to fire"
			} else {
				g.status = "CPU is aiming..."
			}

		case match.EventShotFired:
			g.logger.Debug("shot fired", "side", e.Side, "angle", e.Angle, "power", e.Power)

		case match.EventTerrainHit:
			g.logger.Debug("terrain hit", "side", e.Side, "x", e.Pos.X, "y", e.Pos.Y)

		case match.EventShotLeftField:
			g.logger.Debug("shot left field", "side", e.Side)

		case match.EventTurnForfeited:
			g.logger.Info("turn forfeited", "side", e.Side)

		case match.EventMatchOver:
			if e.Result == nil {
				continue
			}
			if e.Result.Winner == core.SidePlayer {
				g.wins++
			} else {
				g.losses++
			}
			g.logger.Info("match over", "winner", e.Result.Winner, "turns", e.Result.Turns, "seed", g.seed)
			g.save(e.Result)
		}
	}
}

// save logs a finished match once.
func (g *Game) save(res *match.MatchResult) {
	if g.saved || g.store == nil {
		return
	}
	g.saved = true

	_, err := g.store.SaveMatch(storage.MatchRecord{
		Seed:           g.seed,
		Winner:         res.Winner.String(),
		Turns:          res.Turns,
		PlayerShots:    res.PlayerShots,
		AdversaryShots: res.AdversaryShots,
		Ticks:          res.Ticks,
		Source:         "gui",
	})
	if err != nil {
		g.logger.Warn("could not save match", "error", err)
	}
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	if g.match.Phase() == match.PhaseMenu {
		g.drawMenu(screen)
		return
	}

	g.match.Draw(vectorRenderer{dst: screen})

	snap := g.match.Snapshot()
	turn := "CPU"
	if snap.Turn == core.SidePlayer {
		turn = "YOU"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  ANGLE %3.0f", turn, snap.Player.Angle), meterX, meterY+meterH+8)
	tally := fmt.Sprintf("W %d  L %d", g.wins, g.losses)
	ebitenutil.DebugPrintAt(screen, tally, g.cfg.FieldW-len(tally)*debugCharW-20, 10)
	if !snap.Charging {
		ebitenutil.DebugPrintAt(screen, g.status, meterX, meterY+meterH+28)
	}

	if g.paused {
		drawPanel(screen, "PAUSED", "P: resume  ESC: menu")
	}

	if res := g.match.Result(); res != nil {
		title := "CPU WINS!"
		if res.Winner == core.SidePlayer {
			title = "DIRECT HIT - YOU WIN!"
		}
		drawPanel(screen, title, fmt.Sprintf("%d turns", res.Turns), "R: rematch  ESC: menu")
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	title := "ARTILLERY DUEL"
	ebitenutil.DebugPrintAt(screen, title, (g.cfg.FieldW-len(title)*debugCharW)/2, g.cfg.FieldH/2-80)
	if g.wins+g.losses > 0 {
		record := fmt.Sprintf("This session: %d won, %d lost", g.wins, g.losses)
		ebitenutil.DebugPrintAt(screen, record, (g.cfg.FieldW-len(record)*debugCharW)/2, g.cfg.FieldH/2-50)
	}

	for _, b := range []button{g.startButton, g.quitButton} {
		r := b.rect
		vector.FillRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), panelColor, false)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, meterFrame, false)
		ebitenutil.DebugPrintAt(screen, b.label, r.Min.X+(r.Dx()-len(b.label)*debugCharW)/2, r.Min.Y+r.Dy()/2-8)
	}

	help := "W/S aim  |  hold SPACE to charge, release to fire  |  P pause"
	ebitenutil.DebugPrintAt(screen, help, (g.cfg.FieldW-len(help)*debugCharW)/2, g.cfg.FieldH-40)
}

// Layout fixes the logical screen to the battlefield size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.FieldW, g.cfg.FieldH
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowTitle("Artillery Duel")
	ebiten.SetWindowSize(g.cfg.FieldW, g.cfg.FieldH)
	ebiten.SetTPS(g.tickRate())
	return ebiten.RunGame(g)
}
