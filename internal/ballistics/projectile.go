// Package ballistics integrates projectile flight and classifies how a flight ends.
package ballistics

import (
	"math"

	"github.com/vovakirdan/artillery-duel/internal/core"
)

// Default physical constants.
const (
	DefaultGravity    = 981.0 // Downward acceleration in units/s²
	DefaultMultiplier = 15.0  // Launch speed per unit of power
	DefaultRadius     = 5.0   // Collision radius of a shell
)

// Projectile is a shell in flight.
type Projectile struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Radius   float64
	Owner    core.Side
	InFlight bool
}

// Launch fires a shell from origin. Angle is in degrees, 0 pointing right and
// 90 straight up. The initial speed is power * multiplier.
func Launch(origin core.Vec2, angleDeg, power, multiplier float64, owner core.Side) Projectile {
	rad := angleDeg * math.Pi / 180
	speed := power * multiplier
	return Projectile{
		Pos:      origin,
		Vel:      core.Vec2{X: math.Cos(rad) * speed, Y: -math.Sin(rad) * speed},
		Radius:   DefaultRadius,
		Owner:    owner,
		InFlight: true,
	}
}

// Advance moves the shell by one step of dt seconds. Velocity is updated
// first and the new velocity moves the position (semi-implicit Euler).
func (p *Projectile) Advance(gravity, dt float64) {
	if !p.InFlight {
		return
	}
	p.Vel.Y += gravity * dt
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}

// Bounds returns the square enclosing the shell's collision circle.
func (p Projectile) Bounds() core.Rect {
	return core.RectAround(p.Pos, p.Radius*2, p.Radius*2)
}
