package match

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/artillery-duel/internal/ballistics"
	"github.com/vovakirdan/artillery-duel/internal/core"
)

const dt = 1.0 / 60.0

func newStarted(t *testing.T, seed int64, first FirstTurn) *Match {
	t.Helper()
	cfg := DefaultConfig()
	cfg.First = first
	m := NewSeeded(cfg, seed)
	m.Start()
	return m
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestNewStartsInMenu(t *testing.T) {
	m := NewSeeded(DefaultConfig(), 1)

	if m.Phase() != PhaseMenu {
		t.Fatalf("Phase() = %v, expected %v", m.Phase(), PhaseMenu)
	}

	// Steps in the menu do nothing
	res := m.Step(Controls{Charge: true}, dt)
	if len(res.Events) != 0 || m.Snapshot().Ticks != 0 {
		t.Errorf("menu step produced %v", res.Events)
	}
}

func TestTankPlacement(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		m := NewSeeded(DefaultConfig(), seed)
		s := m.Snapshot()

		if s.Player.Pos.X < 50 || s.Player.Pos.X > 200 {
			t.Errorf("seed %d: player x = %v, expected within [50, 200]", seed, s.Player.Pos.X)
		}
		if s.Adversary.Pos.X < 600 || s.Adversary.Pos.X > 750 {
			t.Errorf("seed %d: adversary x = %v, expected within [600, 750]", seed, s.Adversary.Pos.X)
		}
		if s.Player.Pos.Y != m.Terrain().HeightAt(s.Player.Pos.X) {
			t.Errorf("seed %d: player not resting on the terrain", seed)
		}
		if s.Player.Angle != 45 || s.Adversary.Angle != 135 {
			t.Errorf("seed %d: start angles = %v/%v, expected 45/135", seed, s.Player.Angle, s.Adversary.Angle)
		}
	}
}

func TestStartOpensFirstTurn(t *testing.T) {
	cfg := DefaultConfig()
	m := NewSeeded(cfg, 1)
	m.Start()

	res := m.Step(nil, dt)
	if !hasEvent(res.Events, EventTurnStarted) {
		t.Error("first step should report the opening turn")
	}
	if res.Phase != PhasePlayerCharging {
		t.Errorf("Phase = %v, expected %v", res.Phase, PhasePlayerCharging)
	}
	if got := m.Snapshot().Countdown; got != cfg.TurnTicks-1 {
		t.Errorf("Countdown = %d, expected %d", got, cfg.TurnTicks-1)
	}
}

func TestRandomFirstTurn(t *testing.T) {
	seen := map[core.Side]bool{}
	for seed := int64(1); seed <= 40; seed++ {
		m := newStarted(t, seed, FirstRandom)
		seen[m.Snapshot().Turn] = true
	}
	if !seen[core.SidePlayer] || !seen[core.SideAdversary] {
		t.Errorf("random first turn never picked both sides: %v", seen)
	}
}

func TestChargeOscillates(t *testing.T) {
	m := newStarted(t, 1, FirstPlayer)
	held := Controls{Charge: true}

	tests := []struct {
		ticks int
		power float64
		dir   float64
	}{
		{1, 1, 1},
		{99, 100, -1}, // total 100
		{50, 50, -1},  // total 150
		{50, 0, 1},    // total 200
		{10, 10, 1},   // total 210
	}

	for _, tc := range tests {
		for i := 0; i < tc.ticks; i++ {
			m.Step(held, dt)
		}
		s := m.Snapshot()
		if s.Power != tc.power || s.PowerDirection != tc.dir {
			t.Fatalf("after %d more ticks power=%v dir=%v, expected %v/%v",
				tc.ticks, s.Power, s.PowerDirection, tc.power, tc.dir)
		}
	}

	// Releasing the charge without firing and pressing again restarts from zero
	m.Step(Controls{}, dt)
	m.Step(held, dt)
	if s := m.Snapshot(); s.Power != 1 {
		t.Errorf("recharge power = %v, expected 1", s.Power)
	}
}

func TestForfeitAfterTurnTicks(t *testing.T) {
	m := newStarted(t, 3, FirstPlayer)
	held := Controls{Charge: true}

	for i := 0; i < 599; i++ {
		res := m.Step(held, dt)
		if hasEvent(res.Events, EventTurnForfeited) {
			t.Fatalf("turn forfeited early at tick %d", i+1)
		}
	}
	if s := m.Snapshot(); s.Power <= 0 || s.Countdown != 1 {
		t.Fatalf("before expiry power=%v countdown=%d", s.Power, s.Countdown)
	}

	res := m.Step(held, dt)
	if !hasEvent(res.Events, EventTurnForfeited) {
		t.Fatal("expected forfeit on tick 600")
	}

	s := m.Snapshot()
	if s.Turn != core.SideAdversary {
		t.Errorf("Turn = %v, expected adversary", s.Turn)
	}
	if s.Power != 0 || s.PowerDirection != 1 || s.Charging {
		t.Errorf("charge not reset: power=%v dir=%v charging=%v", s.Power, s.PowerDirection, s.Charging)
	}
	if s.Countdown != 600 {
		t.Errorf("Countdown = %d, expected 600", s.Countdown)
	}
	if s.Projectile.Owner != core.SideNone {
		t.Errorf("in-flight owner = %v, expected none", s.Projectile.Owner)
	}
}

func TestAdversaryFiresAtDecisionOffset(t *testing.T) {
	m := newStarted(t, 5, FirstAdversary)

	for i := 1; i <= 10; i++ {
		res := m.Step(nil, dt)
		if hasEvent(res.Events, EventShotFired) {
			t.Fatalf("adversary fired early at tick %d", i)
		}
		if res.Phase != PhaseAdversaryDeciding {
			t.Fatalf("tick %d: Phase = %v, expected %v", i, res.Phase, PhaseAdversaryDeciding)
		}
	}

	res := m.Step(nil, dt)
	var shot *Event
	for i := range res.Events {
		if res.Events[i].Kind == EventShotFired {
			shot = &res.Events[i]
		}
	}
	if shot == nil {
		t.Fatal("adversary should fire on tick 11")
	}
	if shot.Side != core.SideAdversary {
		t.Errorf("shot side = %v, expected adversary", shot.Side)
	}
	if res.Phase != PhaseAdversaryFlying {
		t.Errorf("Phase = %v, expected %v", res.Phase, PhaseAdversaryFlying)
	}
	if got := m.Snapshot().Countdown; got != 590 {
		t.Errorf("Countdown = %d, expected 590 frozen during flight", got)
	}
}

func TestPlayerLaunchVelocity(t *testing.T) {
	m := newStarted(t, 7, FirstPlayer)

	for i := 0; i < 50; i++ {
		m.Step(Controls{Charge: true}, dt)
	}
	res := m.Step(Controls{Fire: true}, dt)

	var shot Event
	for _, e := range res.Events {
		if e.Kind == EventShotFired {
			shot = e
		}
	}
	if shot.Side != core.SidePlayer || shot.Power != 50 || shot.Angle != 45 {
		t.Fatalf("ShotFired = %+v, expected player shot at 45° power 50", shot)
	}

	s := m.Snapshot()
	if s.LastPower != 50 {
		t.Errorf("LastPower = %v, expected 50", s.LastPower)
	}

	// The shell has already moved one step in the firing tick
	vx := s.Projectile.Vel.X
	vy := s.Projectile.Vel.Y - ballistics.DefaultGravity*dt
	if math.Abs(vx-530.33) > 0.05 || math.Abs(vy+530.33) > 0.05 {
		t.Errorf("launch velocity = (%.2f, %.2f), expected (530.33, -530.33)", vx, vy)
	}
}

func TestAimClamped(t *testing.T) {
	m := newStarted(t, 1, FirstPlayer)

	for i := 0; i < 200; i++ {
		m.Step(Controls{AimUp: true}, dt)
	}
	if a := m.Snapshot().Player.Angle; a != 180 {
		t.Errorf("Angle after raising = %v, expected 180", a)
	}

	m.Reset()
	m.Start()
	for i := 0; i < 50; i++ {
		m.Step(Controls{AimDown: true}, dt)
	}
	if a := m.Snapshot().Player.Angle; a != 0 {
		t.Errorf("Angle after lowering = %v, expected 0", a)
	}
}

func TestShotIntoOwnGroundDeformsAndPassesTurn(t *testing.T) {
	m := newStarted(t, 11, FirstPlayer)
	x := m.Snapshot().Player.Pos.X
	before := m.Terrain().HeightAt(x)

	// Zero power drops the shell straight onto the shooter's own column
	res := m.Step(Controls{Fire: true}, dt)

	if !hasEvent(res.Events, EventTerrainHit) || !hasEvent(res.Events, EventTurnStarted) {
		t.Fatalf("events = %+v, expected terrain hit and turn change", res.Events)
	}
	if got := m.Terrain().HeightAt(x) - before; math.Abs(got-20) > 1e-9 {
		t.Errorf("crater depth = %v, expected 20", got)
	}

	s := m.Snapshot()
	if s.Turn != core.SideAdversary {
		t.Errorf("Turn = %v, expected adversary", s.Turn)
	}
	if len(s.History) != 0 {
		t.Errorf("player shots must not be recorded, history = %+v", s.History)
	}
}

func TestCountdownFrozenWhileFlying(t *testing.T) {
	m := newStarted(t, 13, FirstPlayer)
	for i := 0; i < 100; i++ {
		// Raise to 90° while charging to full power
		m.Step(Controls{AimUp: i < 45, Charge: true}, dt)
	}
	m.Step(Controls{Fire: true}, dt)

	frozen := m.Snapshot().Countdown
	flying := 0
	for m.Phase() == PhasePlayerFlying {
		m.Step(nil, dt)
		if m.Phase() == PhasePlayerFlying {
			flying++
			if got := m.Snapshot().Countdown; got != frozen {
				t.Fatalf("countdown moved during flight: %d -> %d", frozen, got)
			}
		}
	}
	if flying < 60 {
		t.Errorf("vertical full-power shot flew %d ticks, expected a long flight", flying)
	}
}

func TestAdversaryHistoryTracksTerrainHits(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		m := newStarted(t, seed, FirstAdversary)
		hits := 0

		for i := 0; i < 20000 && m.Phase() != PhaseOver; i++ {
			res := m.Step(nil, dt)
			for _, e := range res.Events {
				if e.Kind == EventTerrainHit && e.Side == core.SideAdversary {
					hits++
				}
			}
			if want := min(hits, 3); len(m.Snapshot().History) != want {
				t.Fatalf("seed %d: history len = %d after %d adversary ground hits", seed, len(m.Snapshot().History), hits)
			}
		}
	}
}

func TestDirectHitEndsMatch(t *testing.T) {
	m := newStarted(t, 17, FirstPlayer)
	target := m.Snapshot().Adversary

	m.shell = ballistics.Projectile{
		Pos:      core.Vec2{X: target.Pos.X, Y: target.Pos.Y - 15},
		Radius:   ballistics.DefaultRadius,
		Owner:    core.SidePlayer,
		InFlight: true,
	}
	m.playerShots = 1

	res := m.Step(nil, dt)
	if res.Phase != PhaseOver {
		t.Fatalf("Phase = %v, expected %v", res.Phase, PhaseOver)
	}

	var over *Event
	for i := range res.Events {
		if res.Events[i].Kind == EventMatchOver {
			over = &res.Events[i]
		}
	}
	if over == nil || over.Result == nil {
		t.Fatal("expected MatchOver event with a result")
	}
	want := MatchResult{Winner: core.SidePlayer, Loser: core.SideAdversary, Turns: 1, PlayerShots: 1, Ticks: 1}
	if *over.Result != want {
		t.Errorf("Result = %+v, expected %+v", *over.Result, want)
	}

	// The finished match stays put until reset
	if res := m.Step(Controls{Fire: true}, dt); len(res.Events) != 0 || res.Phase != PhaseOver {
		t.Errorf("step after match over = %+v", res)
	}

	m.Reset()
	if m.Phase() != PhaseMenu || m.Result() != nil {
		t.Errorf("Reset() left phase %v result %v", m.Phase(), m.Result())
	}
	m.Start()
	if m.Phase() != PhasePlayerCharging {
		t.Errorf("restart Phase = %v", m.Phase())
	}
}

func TestShooterIsNeverItsOwnTarget(t *testing.T) {
	m := newStarted(t, 19, FirstPlayer)
	own := m.Snapshot().Player

	// Inside the shooter's footprint but above the ground
	m.shell = ballistics.Projectile{
		Pos:      core.Vec2{X: own.Pos.X, Y: own.Pos.Y - 15},
		Radius:   ballistics.DefaultRadius,
		Owner:    core.SidePlayer,
		InFlight: true,
	}

	res := m.Step(nil, dt)
	if res.Phase == PhaseOver {
		t.Error("a shell must not strike the tank that fired it")
	}
}

func TestDeterministicReplay(t *testing.T) {
	script := func(i int) Controls {
		switch {
		case i%400 < 20:
			return Controls{AimUp: true}
		case i%400 < 80:
			return Controls{Charge: true}
		case i%400 == 80:
			return Controls{Fire: true}
		default:
			return Controls{}
		}
	}

	run := func() ([]Snapshot, []Event) {
		cfg := DefaultConfig()
		cfg.First = FirstRandom
		m := NewSeeded(cfg, 99)
		m.Start()

		var snaps []Snapshot
		var events []Event
		for i := 0; i < 3000; i++ {
			res := m.Step(script(i), dt)
			events = append(events, res.Events...)
			if i%100 == 0 {
				snaps = append(snaps, m.Snapshot())
			}
		}
		return snaps, events
	}

	snapsA, eventsA := run()
	snapsB, eventsB := run()

	if !reflect.DeepEqual(snapsA, snapsB) {
		t.Error("snapshots differ between runs with the same seed and inputs")
	}
	if !reflect.DeepEqual(eventsA, eventsB) {
		t.Error("events differ between runs with the same seed and inputs")
	}
}
