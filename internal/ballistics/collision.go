package ballistics

import "github.com/vovakirdan/artillery-duel/internal/core"

// Collision classifies the state of a shell after a step.
type Collision int

const (
	CollisionNone    Collision = iota // Still flying
	CollisionTerrain                  // Struck the ground
	CollisionTarget                   // Struck the opposing unit
	CollisionOutside                  // Left the field
)

// String returns a human-readable name for the collision kind.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionTerrain:
		return "terrain"
	case CollisionTarget:
		return "target"
	case CollisionOutside:
		return "outside"
	default:
		return "unknown"
	}
}

// Ground answers whether a point is inside solid terrain.
type Ground interface {
	IsCollision(p core.Vec2) bool
}

// Resolve classifies a shell against the world. Checks run in a fixed order:
// terrain first, then the target footprint, then the field borders. The
// field has no ceiling, so a shell may rise above y = 0 and come back.
func Resolve(p Projectile, ground Ground, fieldW, fieldH float64, target core.Rect) Collision {
	if !p.InFlight {
		return CollisionNone
	}
	if ground.IsCollision(p.Pos) {
		return CollisionTerrain
	}
	if p.Bounds().Intersects(target) {
		return CollisionTarget
	}
	if p.Pos.X < 0 || p.Pos.X > fieldW || p.Pos.Y > fieldH {
		return CollisionOutside
	}
	return CollisionNone
}
