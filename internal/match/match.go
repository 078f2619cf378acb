// Package match implements the turn-based duel between the human side and
// the computer adversary.
//
// A Match owns the terrain, both tanks, the in-flight shell and the
// adversary's shot history. The presentation layer drives it one tick at a
// time through Step and draws it through a Renderer.
package match

import (
	"math/rand"

	"github.com/vovakirdan/artillery-duel/internal/adversary"
	"github.com/vovakirdan/artillery-duel/internal/ballistics"
	"github.com/vovakirdan/artillery-duel/internal/core"
	"github.com/vovakirdan/artillery-duel/internal/terrain"
)

// terrainSeedSalt separates the terrain stream from the match stream.
const terrainSeedSalt = 0x5eed

// Rand is the match random source. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Phase is the externally visible state of a match.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlayerCharging
	PhasePlayerFlying
	PhaseAdversaryDeciding
	PhaseAdversaryFlying
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlayerCharging:
		return "player_charging"
	case PhasePlayerFlying:
		return "player_flying"
	case PhaseAdversaryDeciding:
		return "adversary_deciding"
	case PhaseAdversaryFlying:
		return "adversary_flying"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

type stage int

const (
	stageMenu stage = iota
	stagePlaying
	stageOver
)

// Match is a single duel.
type Match struct {
	cfg        Config
	rng        Rand
	terrainRng terrain.Rand

	field     *terrain.Terrain
	player    Tank
	adversary Tank
	policy    *adversary.Policy
	history   adversary.History
	shell     ballistics.Projectile

	stage          stage
	turn           core.Side
	countdown      int
	power          float64
	powerDirection float64
	charging       bool
	lastPower      float64

	turns          int
	playerShots    int
	adversaryShots int
	ticks          int
	result         *MatchResult

	pending []Event
}

// New creates a match in the menu phase. rng drives placement, first turn and
// adversary decisions; terrainRng drives terrain generation only.
func New(cfg Config, rng Rand, terrainRng terrain.Rand) *Match {
	m := &Match{
		cfg:        cfg,
		rng:        rng,
		terrainRng: terrainRng,
		policy:     adversary.NewPolicy(cfg.Adversary, rng),
	}
	m.initialize()
	return m
}

// NewSeeded creates a match whose every random draw derives from seed.
func NewSeeded(cfg Config, seed int64) *Match {
	return New(cfg,
		rand.New(rand.NewSource(seed)),
		rand.New(rand.NewSource(seed^terrainSeedSalt)))
}

// initialize builds a fresh battlefield and returns to the menu.
func (m *Match) initialize() {
	m.field = terrain.New(m.cfg.FieldW, m.cfg.FieldH, m.cfg.Terrain, m.terrainRng)
	m.field.Generate()

	w := float64(m.cfg.FieldW)
	playerX := m.uniform(m.cfg.SpawnMin, m.cfg.SpawnMax)
	adversaryX := m.uniform(w-m.cfg.SpawnMax, w-m.cfg.SpawnMin)

	m.player = Tank{
		Side: core.SidePlayer,
		Pos:  core.Vec2{X: playerX, Y: m.field.HeightAt(playerX)},
		Size: m.cfg.TankSize,
	}
	m.player.SetAngle(m.cfg.PlayerAngle)

	m.adversary = Tank{
		Side: core.SideAdversary,
		Pos:  core.Vec2{X: adversaryX, Y: m.field.HeightAt(adversaryX)},
		Size: m.cfg.TankSize,
	}
	m.adversary.SetAngle(m.cfg.AdversaryAngle)

	m.shell = ballistics.Projectile{}
	m.history.Reset()

	m.stage = stageMenu
	m.turn = core.SideNone
	m.countdown = m.cfg.TurnTicks
	m.power = 0
	m.powerDirection = 1
	m.charging = false
	m.lastPower = 0

	m.turns = 0
	m.playerShots = 0
	m.adversaryShots = 0
	m.ticks = 0
	m.result = nil
	m.pending = nil
}

// Reset regenerates the terrain, re-places both tanks, clears the shot
// history and returns to the menu phase.
func (m *Match) Reset() {
	m.initialize()
}

// Start leaves the menu and opens the first turn. It has no effect outside
// the menu phase.
func (m *Match) Start() {
	if m.stage != stageMenu {
		return
	}
	m.stage = stagePlaying

	first := core.SidePlayer
	switch m.cfg.First {
	case FirstAdversary:
		first = core.SideAdversary
	case FirstRandom:
		if m.rng.Intn(2) == 1 {
			first = core.SideAdversary
		}
	}
	m.beginTurn(first)
}

// Step advances the match by one tick of dt seconds.
func (m *Match) Step(in Input, dt float64) StepResult {
	if m.stage == stagePlaying {
		m.tick(in, dt)
	}

	res := StepResult{Phase: m.Phase(), Events: m.pending}
	m.pending = nil
	return res
}

func (m *Match) tick(in Input, dt float64) {
	m.ticks++

	if m.turn == core.SidePlayer && !m.shell.InFlight && in != nil {
		m.handlePlayerInput(in)
	}

	if m.shell.InFlight {
		m.shell.Advance(m.cfg.Gravity, dt)
		m.resolveShell()
		if m.stage != stagePlaying {
			return
		}
	}

	if m.turn == core.SideAdversary && !m.shell.InFlight &&
		m.countdown == m.cfg.TurnTicks-m.cfg.DecisionDelay {
		m.adversaryFire()
	}

	// The clock only runs while nothing is in the air
	if !m.shell.InFlight {
		m.countdown--
		if m.countdown <= 0 {
			m.emit(Event{Kind: EventTurnForfeited, Side: m.turn})
			m.nextTurn()
		}
	}
}

func (m *Match) handlePlayerInput(in Input) {
	if in.AimUpPressed() {
		m.player.AdjustAngle(1)
	}
	if in.AimDownPressed() {
		m.player.AdjustAngle(-1)
	}

	if in.FireReleased() {
		m.lastPower = m.power
		m.charging = false
		m.launch(&m.player, m.power, adversary.ProfileNone)
		return
	}

	if !in.ChargeHeld() {
		m.charging = false
		return
	}

	if !m.charging {
		m.charging = true
		m.power = 0
		m.powerDirection = 1
	}
	m.power += m.cfg.PowerSpeed * m.powerDirection
	if m.power >= m.cfg.PowerMax {
		m.power = m.cfg.PowerMax
		m.powerDirection = -1
	} else if m.power <= 0 {
		m.power = 0
		m.powerDirection = 1
	}
}

func (m *Match) adversaryFire() {
	d := m.policy.Decide(m.adversary.Pos, m.player.Pos, &m.history)
	m.adversary.SetAngle(d.Angle)
	m.power = d.Power
	m.launch(&m.adversary, d.Power, d.Profile)
}

func (m *Match) launch(t *Tank, power float64, profile adversary.Profile) {
	m.shell = ballistics.Launch(t.Pos, t.Angle, power, m.cfg.PowerMultiplier, t.Side)
	m.shell.Radius = m.cfg.ProjectileRadius

	if t.Side == core.SidePlayer {
		m.playerShots++
	} else {
		m.adversaryShots++
	}
	m.emit(Event{
		Kind:    EventShotFired,
		Side:    t.Side,
		Pos:     t.Pos,
		Angle:   t.Angle,
		Power:   power,
		Profile: profile,
	})
}

func (m *Match) resolveShell() {
	target := m.tank(m.shell.Owner.Opponent())
	hit := ballistics.Resolve(m.shell, m.field,
		float64(m.cfg.FieldW), float64(m.cfg.FieldH), target.Bounds())

	switch hit {
	case ballistics.CollisionTerrain:
		impact := m.shell.Pos
		if m.shell.Owner == core.SideAdversary {
			m.history.Add(adversary.ShotRecord{
				Angle:    m.adversary.Angle,
				Power:    m.power,
				Impact:   impact,
				WasClose: impact.Dist(m.player.Pos) < m.cfg.CloseRadius,
			})
		}
		m.field.Deform(impact, m.cfg.DeformRadius)
		m.emit(Event{Kind: EventTerrainHit, Side: m.shell.Owner, Pos: impact})
		m.nextTurn()

	case ballistics.CollisionTarget:
		m.finish(m.shell.Owner)

	case ballistics.CollisionOutside:
		m.emit(Event{Kind: EventShotLeftField, Side: m.shell.Owner, Pos: m.shell.Pos})
		m.nextTurn()
	}
}

func (m *Match) finish(winner core.Side) {
	m.shell.InFlight = false
	m.stage = stageOver
	m.result = &MatchResult{
		Winner:         winner,
		Loser:          winner.Opponent(),
		Turns:          m.turns,
		PlayerShots:    m.playerShots,
		AdversaryShots: m.adversaryShots,
		Ticks:          m.ticks,
	}
	m.emit(Event{Kind: EventMatchOver, Side: winner, Pos: m.shell.Pos, Result: m.result})
}

func (m *Match) nextTurn() {
	m.beginTurn(m.turn.Opponent())
}

func (m *Match) beginTurn(side core.Side) {
	m.turn = side
	m.countdown = m.cfg.TurnTicks
	m.power = 0
	m.powerDirection = 1
	m.charging = false
	m.shell.InFlight = false
	m.shell.Owner = core.SideNone
	m.turns++
	m.emit(Event{Kind: EventTurnStarted, Side: side})
}

func (m *Match) emit(e Event) {
	m.pending = append(m.pending, e)
}

func (m *Match) tank(side core.Side) *Tank {
	if side == core.SideAdversary {
		return &m.adversary
	}
	return &m.player
}

func (m *Match) uniform(lo, hi float64) float64 {
	return lo + m.rng.Float64()*(hi-lo)
}

// Phase returns the current phase.
func (m *Match) Phase() Phase {
	switch m.stage {
	case stageMenu:
		return PhaseMenu
	case stageOver:
		return PhaseOver
	}
	if m.turn == core.SidePlayer {
		if m.shell.InFlight {
			return PhasePlayerFlying
		}
		return PhasePlayerCharging
	}
	if m.shell.InFlight {
		return PhaseAdversaryFlying
	}
	return PhaseAdversaryDeciding
}

// Result returns the outcome of a finished match, or nil while it is running.
func (m *Match) Result() *MatchResult {
	return m.result
}

// Terrain returns the battlefield.
func (m *Match) Terrain() *terrain.Terrain {
	return m.field
}

// Config returns the rules this match was created with.
func (m *Match) Config() Config {
	return m.cfg
}
