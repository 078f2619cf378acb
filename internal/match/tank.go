package match

import (
	"math"

	"github.com/vovakirdan/artillery-duel/internal/core"
)

// Tank is one combatant's unit.
type Tank struct {
	Side  core.Side
	Pos   core.Vec2 // Centre of the body; shells launch from here
	Angle float64   // Barrel elevation in degrees, 0 right, 180 left
	Size  float64
}

// SetAngle points the barrel, clamped to [0,180].
func (t *Tank) SetAngle(deg float64) {
	t.Angle = core.ClampF(deg, 0, 180)
}

// AdjustAngle rotates the barrel by delta degrees, clamped to [0,180].
func (t *Tank) AdjustAngle(delta float64) {
	t.SetAngle(t.Angle + delta)
}

// Bounds returns the square footprint centred on the position.
func (t Tank) Bounds() core.Rect {
	return core.RectAround(t.Pos, t.Size, t.Size)
}

// BarrelTip returns the end of a barrel of the given length.
func (t Tank) BarrelTip(length float64) core.Vec2 {
	rad := t.Angle * math.Pi / 180
	return t.Pos.Add(core.Vec2{X: math.Cos(rad) * length, Y: -math.Sin(rad) * length})
}
