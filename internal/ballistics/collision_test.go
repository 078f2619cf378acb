package ballistics

import (
	"testing"

	"github.com/vovakirdan/artillery-duel/internal/core"
)

// flatGround is solid at and below y.
type flatGround float64

func (g flatGround) IsCollision(p core.Vec2) bool {
	return p.X >= 0 && p.X < 800 && p.Y >= float64(g)
}

func TestResolve(t *testing.T) {
	ground := flatGround(400)
	target := core.RectAround(core.Vec2{X: 600, Y: 380}, 40, 40)

	tests := []struct {
		name     string
		pos      core.Vec2
		inFlight bool
		expected Collision
	}{
		{"mid air", core.Vec2{X: 300, Y: 100}, true, CollisionNone},
		{"above ceiling keeps flying", core.Vec2{X: 300, Y: -500}, true, CollisionNone},
		{"into ground", core.Vec2{X: 300, Y: 400}, true, CollisionTerrain},
		{"into target", core.Vec2{X: 600, Y: 370}, true, CollisionTarget},
		{"grazes target edge", core.Vec2{X: 584, Y: 370}, true, CollisionTarget},
		{"terrain wins over target", core.Vec2{X: 600, Y: 401}, true, CollisionTerrain},
		{"off left", core.Vec2{X: -1, Y: 100}, true, CollisionOutside},
		{"off right", core.Vec2{X: 801, Y: 100}, true, CollisionOutside},
		{"below field", core.Vec2{X: -10, Y: 700}, true, CollisionOutside},
		{"not in flight", core.Vec2{X: 300, Y: 450}, false, CollisionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Projectile{Pos: tc.pos, Radius: DefaultRadius, InFlight: tc.inFlight}
			if got := Resolve(p, ground, 800, 600, target); got != tc.expected {
				t.Errorf("Resolve() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
