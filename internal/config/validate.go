package config

import "fmt"

// Validate reports the first parameter that would make a duel unplayable.
func (c ArtilleryConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("config: field size must be positive, got %dx%d", c.Field.Width, c.Field.Height)
	case c.Field.TickRate <= 0:
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Field.TickRate)
	case c.Physics.PowerMultiplier <= 0:
		return fmt.Errorf("config: power_multiplier must be positive, got %v", c.Physics.PowerMultiplier)
	case c.Physics.ProjectileRadius <= 0:
		return fmt.Errorf("config: projectile_radius must be positive, got %v", c.Physics.ProjectileRadius)
	case c.Terrain.ControlPoints < 2:
		return fmt.Errorf("config: control_points must be at least 2, got %d", c.Terrain.ControlPoints)
	case c.Terrain.SmoothingPasses < 0:
		return fmt.Errorf("config: smoothing_passes must not be negative, got %d", c.Terrain.SmoothingPasses)
	case c.Terrain.SmoothingFactor < 0 || c.Terrain.SmoothingFactor > 0.5:
		return fmt.Errorf("config: smoothing_factor must be within [0, 0.5], got %v", c.Terrain.SmoothingFactor)
	case c.Terrain.DeformRadius <= 0:
		return fmt.Errorf("config: deform_radius must be positive, got %v", c.Terrain.DeformRadius)
	case c.Terrain.DeformDepth < 0:
		return fmt.Errorf("config: deform_depth must not be negative, got %v", c.Terrain.DeformDepth)
	case c.Turn.Ticks <= 0:
		return fmt.Errorf("config: turn ticks must be positive, got %d", c.Turn.Ticks)
	case c.Turn.PowerSpeed <= 0 || c.Turn.PowerMax <= 0:
		return fmt.Errorf("config: power_speed and power_max must be positive")
	case c.Adversary.DecisionDelay < 0 || c.Adversary.DecisionDelay >= c.Turn.Ticks:
		return fmt.Errorf("config: decision_delay must be within [0, %d), got %d", c.Turn.Ticks, c.Adversary.DecisionDelay)
	case c.Tanks.Size <= 0:
		return fmt.Errorf("config: tank size must be positive, got %v", c.Tanks.Size)
	case c.Tanks.SpawnMin < 0 || c.Tanks.SpawnMin >= c.Tanks.SpawnMax || c.Tanks.SpawnMax > float64(c.Field.Width):
		return fmt.Errorf("config: spawn band [%v, %v] does not fit a field of width %d",
			c.Tanks.SpawnMin, c.Tanks.SpawnMax, c.Field.Width)
	case c.Adversary.HighArcDivisor == 0 || c.Adversary.DirectDivisor == 0:
		return fmt.Errorf("config: adversary power divisors must be non-zero")
	}

	switch c.Turn.First {
	case FirstPlayer, FirstAdversary, FirstRandom:
	default:
		return fmt.Errorf("config: first turn must be %q, %q or %q, got %q",
			FirstPlayer, FirstAdversary, FirstRandom, c.Turn.First)
	}
	return nil
}
