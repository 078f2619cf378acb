// Package artillery adapts the duel to the terminal platform.
// It turns per-tick key actions into match controls, logs match events and
// draws the battlefield into a core.Screen.
package artillery

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/artillery-duel/internal/core"
	"github.com/vovakirdan/artillery-duel/internal/match"
)

// Game runs one duel at a time and keeps a win/loss tally across rematches.
type Game struct {
	cfg     match.Config
	runtime core.RuntimeConfig
	match   *match.Match
	logger  *log.Logger

	charging bool // Terminals report no key release, so Space toggles charging
	paused   bool
	gameOver bool
	winner   core.Side
	wins     int
	losses   int
	status   string
}

// Option configures a Game.
type Option func(*Game)

// WithLogger routes match events to logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// New creates a terminal duel using the given rules.
func New(cfg match.Config, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the identifier used for screenshots and the match log.
func (g *Game) ID() string {
	return "artillery"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Artillery Duel"
}

// Reset starts a fresh match. The tally survives resets.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.match = match.NewSeeded(g.cfg, runtime.Seed)
	g.match.Start()

	g.charging = false
	g.paused = false
	g.gameOver = false
	g.winner = core.SideNone
	g.status = ""

	g.logger.Debug("match reset", "seed", runtime.Seed)
}

// Step advances the duel by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	controls := match.Controls{
		AimUp:   in.Has(core.ActionAimUp),
		AimDown: in.Has(core.ActionAimDown),
	}
	if g.match.Phase() == match.PhasePlayerCharging {
		if in.Has(core.ActionCharge) {
			if g.charging {
				controls.Fire = true
				g.charging = false
			} else {
				g.charging = true
			}
		}
		controls.Charge = g.charging
	} else {
		g.charging = false
	}

	res := g.match.Step(controls, g.runtime.DeltaTime())
	g.handleEvents(res.Events)

	return core.StepResult{State: g.State()}
}

func (g *Game) handleEvents(events []match.Event) {
	for _, e := range events {
		switch e.Kind {
		case match.EventTurnStarted:
			g.logger.Debug("turn started", "side", e.Side)
			if e.Side == core.SidePlayer {
				g.status = "Your turn"
			} else {
				g.status = "CPU is aiming..."
			}

		case match.EventShotFired:
			if e.Side == core.SideAdversary {
				g.logger.Debug("shot fired", "side", e.Side, "angle", e.Angle, "power", e.Power, "profile", e.Profile)
				g.status = fmt.Sprintf("CPU fired at %.0f° power %.0f", e.Angle, e.Power)
			} else {
				g.logger.Debug("shot fired", "side", e.Side, "angle", e.Angle, "power", e.Power)
				g.status = fmt.Sprintf("Fired at %.0f° power %.0f", e.Angle, e.Power)
			}

		case match.EventTerrainHit:
			g.logger.Debug("terrain hit", "side", e.Side, "x", e.Pos.X, "y", e.Pos.Y)

		case match.EventShotLeftField:
			g.logger.Debug("shot left field", "side", e.Side, "x", e.Pos.X, "y", e.Pos.Y)

		case match.EventTurnForfeited:
			g.logger.Info("turn forfeited", "side", e.Side)
			g.status = "Time's up!"

		case match.EventMatchOver:
			g.gameOver = true
			g.charging = false
			if e.Result != nil {
				g.winner = e.Result.Winner
				g.logger.Info("match over",
					"winner", e.Result.Winner,
					"turns", e.Result.Turns,
					"ticks", e.Result.Ticks,
					"seed", g.runtime.Seed)
			}
			if g.winner == core.SidePlayer {
				g.wins++
			} else {
				g.losses++
			}
		}
	}
}

// State returns the session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Wins:     g.wins,
		Losses:   g.losses,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Winner:   g.winner,
	}
}

// Result returns the finished match summary, or nil while playing.
func (g *Game) Result() *match.MatchResult {
	if g.match == nil {
		return nil
	}
	return g.match.Result()
}

// Seed returns the seed of the current match.
func (g *Game) Seed() int64 {
	return g.runtime.Seed
}

// Logger returns the logger match events are written to.
func (g *Game) Logger() *log.Logger {
	return g.logger
}

// Snapshot returns a copy of the running match state.
func (g *Game) Snapshot() match.Snapshot {
	return g.match.Snapshot()
}
