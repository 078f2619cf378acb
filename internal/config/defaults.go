package config

import (
	_ "embed"
)

//go:embed defaults/artillery.yaml
var defaultArtilleryYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultArtilleryYAML))
	copy(out, defaultArtilleryYAML)
	return out
}

// DefaultArtilleryConfig returns the default duel configuration.
func DefaultArtilleryConfig() ArtilleryConfig {
	return ArtilleryConfig{
		Field: FieldConfig{
			Width:    800,
			Height:   600,
			TickRate: 60,
		},
		Physics: PhysicsConfig{
			Gravity:          981,
			PowerMultiplier:  15,
			ProjectileRadius: 5,
		},
		Terrain: TerrainConfig{
			ControlPoints:    8,
			BaseFraction:     0.5,
			VarianceFraction: 0.2,
			SmoothingPasses:  3,
			SmoothingFactor:  0.2,
			DeformDepth:      20,
			DeformRadius:     20,
		},
		Turn: TurnConfig{
			Ticks:      600,
			PowerSpeed: 1,
			PowerMax:   100,
			First:      FirstPlayer,
		},
		Tanks: TanksConfig{
			Size:           40,
			BarrelLength:   30,
			BarrelWidth:    4,
			PlayerAngle:    45,
			AdversaryAngle: 135,
			SpawnMin:       50,
			SpawnMax:       200,
		},
		Adversary: AdversaryConfig{
			DecisionDelay:  10,
			CloseRadius:    50,
			HighArcMin:     140,
			HighArcMax:     180,
			DirectMax:      140,
			HighArcDivisor: 5,
			DirectDivisor:  8,
			SwitchAngle:    145,
			CorrectionMin:  150,
			CorrectionMax:  165,
			SwitchPower:    15,
			EscalateAngle:  5,
			EscalatePower:  10,
			OvershotAngle:  5,
			OvershotPower:  5,
			FarPower:       10,
			AngleJitter:    2,
			PowerJitter:    3,
		},
	}
}
