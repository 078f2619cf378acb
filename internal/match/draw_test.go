package match

import (
	"testing"

	"github.com/vovakirdan/artillery-duel/internal/core"
)

type recorder struct {
	terrain     int
	tanks       []TankShape
	projectiles int
	meters      []PowerMeter
	timers      []int
}

func (r *recorder) DrawTerrain(heights []float64, fieldH float64) { r.terrain++ }
func (r *recorder) DrawTank(t TankShape)                          { r.tanks = append(r.tanks, t) }
func (r *recorder) DrawProjectile(core.Vec2, float64)             { r.projectiles++ }
func (r *recorder) DrawPowerMeter(m PowerMeter)                   { r.meters = append(r.meters, m) }
func (r *recorder) DrawTimer(seconds int)                         { r.timers = append(r.timers, seconds) }

func TestDrawMenuIsEmpty(t *testing.T) {
	m := NewSeeded(DefaultConfig(), 1)
	var r recorder
	m.Draw(&r)

	if r.terrain != 0 || len(r.tanks) != 0 || len(r.timers) != 0 {
		t.Errorf("menu phase should draw nothing, got %+v", r)
	}
}

func TestDrawBattlefield(t *testing.T) {
	m := NewSeeded(DefaultConfig(), 1)
	m.Start()

	var r recorder
	m.Draw(&r)

	if r.terrain != 1 || len(r.tanks) != 2 {
		t.Fatalf("expected terrain and two tanks, got %+v", r)
	}
	if len(r.meters) != 0 || r.projectiles != 0 {
		t.Error("no meter or projectile before charging")
	}
	if len(r.timers) != 1 || r.timers[0] != 10 {
		t.Errorf("timer = %v, expected [10]", r.timers)
	}

	player := r.tanks[0]
	if player.Side != core.SidePlayer || player.Body.W != 40 || player.BarrelWidth != 4 {
		t.Errorf("player shape = %+v", player)
	}
	// 45° barrel points up and right
	if player.BarrelTo.X <= player.BarrelFrom.X || player.BarrelTo.Y >= player.BarrelFrom.Y {
		t.Errorf("barrel %+v -> %+v should point up-right", player.BarrelFrom, player.BarrelTo)
	}
	if d := player.BarrelTo.Dist(player.BarrelFrom); d < 29.99 || d > 30.01 {
		t.Errorf("barrel length = %v, expected 30", d)
	}
}

func TestDrawPowerMeterWhileCharging(t *testing.T) {
	m := NewSeeded(DefaultConfig(), 1)
	m.Start()
	for i := 0; i < 30; i++ {
		m.Step(Controls{Charge: true}, dt)
	}

	var r recorder
	m.Draw(&r)
	if len(r.meters) != 1 {
		t.Fatalf("expected one power meter, got %d", len(r.meters))
	}
	if r.meters[0].Power != 30 || r.meters[0].Max != 100 || r.meters[0].LastPower != 0 {
		t.Errorf("meter = %+v", r.meters[0])
	}
	if r.timers[0] != 9 {
		t.Errorf("timer = %d, expected 9 after 30 ticks", r.timers[0])
	}

	m.Step(Controls{Fire: true}, dt)
	r = recorder{}
	m.Draw(&r)
	if len(r.meters) != 0 {
		t.Error("meter should hide once the shell is away")
	}
}
