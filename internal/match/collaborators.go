package match

import "github.com/vovakirdan/artillery-duel/internal/core"

// Input is the human side's control state for one tick.
type Input interface {
	ChargeHeld() bool     // Fire control is held down
	FireReleased() bool   // Fire control was released this tick
	AimUpPressed() bool   // Raise the barrel by one step
	AimDownPressed() bool // Lower the barrel by one step
}

// Controls is a plain Input value.
type Controls struct {
	Charge  bool
	Fire    bool
	AimUp   bool
	AimDown bool
}

func (c Controls) ChargeHeld() bool     { return c.Charge }
func (c Controls) FireReleased() bool   { return c.Fire }
func (c Controls) AimUpPressed() bool   { return c.AimUp }
func (c Controls) AimDownPressed() bool { return c.AimDown }

// TankShape is the drawable geometry of a unit.
type TankShape struct {
	Side        core.Side
	Body        core.Rect
	BarrelFrom  core.Vec2
	BarrelTo    core.Vec2
	BarrelWidth float64
}

// PowerMeter is the drawable state of the charge meter.
type PowerMeter struct {
	Power     float64
	Max       float64
	LastPower float64 // Power of the previous human shot, 0 if none
}

// Renderer draws a match. Coordinates are in field units.
type Renderer interface {
	DrawTerrain(heights []float64, fieldH float64)
	DrawTank(t TankShape)
	DrawProjectile(center core.Vec2, radius float64)
	DrawPowerMeter(m PowerMeter)
	DrawTimer(seconds int)
}
