package match

import (
	"github.com/vovakirdan/artillery-duel/internal/adversary"
	"github.com/vovakirdan/artillery-duel/internal/config"
	"github.com/vovakirdan/artillery-duel/internal/terrain"
)

// FirstTurn selects which side opens a match.
type FirstTurn int

const (
	FirstPlayer FirstTurn = iota
	FirstAdversary
	FirstRandom
)

// Config holds every rule parameter a match needs.
type Config struct {
	FieldW   int
	FieldH   int
	TickRate int

	Gravity          float64
	PowerMultiplier  float64
	ProjectileRadius float64

	Terrain      terrain.Params
	DeformRadius float64

	TurnTicks  int
	PowerSpeed float64
	PowerMax   float64
	First      FirstTurn

	TankSize       float64
	BarrelLength   float64
	BarrelWidth    float64
	PlayerAngle    float64
	AdversaryAngle float64
	SpawnMin       float64
	SpawnMax       float64

	DecisionDelay int
	CloseRadius   float64
	Adversary     adversary.Params
}

// DefaultConfig returns the rules of a standard duel.
func DefaultConfig() Config {
	return FromConfig(config.DefaultArtilleryConfig())
}

// FromConfig converts a loaded configuration into match rules.
func FromConfig(c config.ArtilleryConfig) Config {
	first := FirstPlayer
	switch c.Turn.First {
	case config.FirstAdversary:
		first = FirstAdversary
	case config.FirstRandom:
		first = FirstRandom
	}

	return Config{
		FieldW:           c.Field.Width,
		FieldH:           c.Field.Height,
		TickRate:         c.Field.TickRate,
		Gravity:          c.Physics.Gravity,
		PowerMultiplier:  c.Physics.PowerMultiplier,
		ProjectileRadius: c.Physics.ProjectileRadius,
		Terrain: terrain.Params{
			ControlPoints:    c.Terrain.ControlPoints,
			BaseFraction:     c.Terrain.BaseFraction,
			VarianceFraction: c.Terrain.VarianceFraction,
			SmoothingPasses:  c.Terrain.SmoothingPasses,
			SmoothingFactor:  c.Terrain.SmoothingFactor,
			DeformDepth:      c.Terrain.DeformDepth,
		},
		DeformRadius:   c.Terrain.DeformRadius,
		TurnTicks:      c.Turn.Ticks,
		PowerSpeed:     c.Turn.PowerSpeed,
		PowerMax:       c.Turn.PowerMax,
		First:          first,
		TankSize:       c.Tanks.Size,
		BarrelLength:   c.Tanks.BarrelLength,
		BarrelWidth:    c.Tanks.BarrelWidth,
		PlayerAngle:    c.Tanks.PlayerAngle,
		AdversaryAngle: c.Tanks.AdversaryAngle,
		SpawnMin:       c.Tanks.SpawnMin,
		SpawnMax:       c.Tanks.SpawnMax,
		DecisionDelay:  c.Adversary.DecisionDelay,
		CloseRadius:    c.Adversary.CloseRadius,
		Adversary: adversary.Params{
			HighArcMin:     c.Adversary.HighArcMin,
			HighArcMax:     c.Adversary.HighArcMax,
			DirectMax:      c.Adversary.DirectMax,
			HighArcDivisor: c.Adversary.HighArcDivisor,
			DirectDivisor:  c.Adversary.DirectDivisor,
			SwitchAngle:    c.Adversary.SwitchAngle,
			CorrectionMin:  c.Adversary.CorrectionMin,
			CorrectionMax:  c.Adversary.CorrectionMax,
			SwitchPower:    c.Adversary.SwitchPower,
			EscalateAngle:  c.Adversary.EscalateAngle,
			EscalatePower:  c.Adversary.EscalatePower,
			OvershotAngle:  c.Adversary.OvershotAngle,
			OvershotPower:  c.Adversary.OvershotPower,
			FarPower:       c.Adversary.FarPower,
			AngleJitter:    c.Adversary.AngleJitter,
			PowerJitter:    c.Adversary.PowerJitter,
		},
	}
}
