// Package config provides YAML-based configuration loading and validation
// for the artillery duel.
package config

// ArtilleryConfig contains all tunable parameters of a duel.
type ArtilleryConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Terrain   TerrainConfig   `yaml:"terrain"`
	Turn      TurnConfig      `yaml:"turn"`
	Tanks     TanksConfig     `yaml:"tanks"`
	Adversary AdversaryConfig `yaml:"adversary"`
}

// FieldConfig defines the size of the battlefield in world units.
type FieldConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"` // Ticks per second; the turn timer counts in these
}

// PhysicsConfig defines projectile physics.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	PowerMultiplier  float64 `yaml:"power_multiplier"`
	ProjectileRadius float64 `yaml:"projectile_radius"`
}

// TerrainConfig defines terrain generation and deformation.
type TerrainConfig struct {
	ControlPoints    int     `yaml:"control_points"`
	BaseFraction     float64 `yaml:"base_fraction"`
	VarianceFraction float64 `yaml:"variance_fraction"`
	SmoothingPasses  int     `yaml:"smoothing_passes"`
	SmoothingFactor  float64 `yaml:"smoothing_factor"`
	DeformDepth      float64 `yaml:"deform_depth"`
	DeformRadius     float64 `yaml:"deform_radius"`
}

// TurnConfig defines the turn clock and the power meter.
type TurnConfig struct {
	Ticks      int     `yaml:"ticks"`       // Countdown length of one turn
	PowerSpeed float64 `yaml:"power_speed"` // Power gained per tick while charging
	PowerMax   float64 `yaml:"power_max"`
	First      string  `yaml:"first"` // "player", "adversary" or "random"
}

// TanksConfig defines unit geometry and placement.
type TanksConfig struct {
	Size           float64 `yaml:"size"`
	BarrelLength   float64 `yaml:"barrel_length"`
	BarrelWidth    float64 `yaml:"barrel_width"`
	PlayerAngle    float64 `yaml:"player_angle"`
	AdversaryAngle float64 `yaml:"adversary_angle"`
	SpawnMin       float64 `yaml:"spawn_min"` // Distance from the field edge
	SpawnMax       float64 `yaml:"spawn_max"`
}

// AdversaryConfig defines the computer opponent's rule table.
type AdversaryConfig struct {
	DecisionDelay  int     `yaml:"decision_delay"` // Ticks into its turn before it fires
	CloseRadius    float64 `yaml:"close_radius"`   // Impacts nearer than this count as close
	HighArcMin     float64 `yaml:"high_arc_min"`
	HighArcMax     float64 `yaml:"high_arc_max"`
	DirectMax      float64 `yaml:"direct_max"`
	HighArcDivisor float64 `yaml:"high_arc_divisor"`
	DirectDivisor  float64 `yaml:"direct_divisor"`
	SwitchAngle    float64 `yaml:"switch_angle"`
	CorrectionMin  float64 `yaml:"correction_min"`
	CorrectionMax  float64 `yaml:"correction_max"`
	SwitchPower    float64 `yaml:"switch_power"`
	EscalateAngle  float64 `yaml:"escalate_angle"`
	EscalatePower  float64 `yaml:"escalate_power"`
	OvershotAngle  float64 `yaml:"overshot_angle"`
	OvershotPower  float64 `yaml:"overshot_power"`
	FarPower       float64 `yaml:"far_power"`
	AngleJitter    float64 `yaml:"angle_jitter"`
	PowerJitter    float64 `yaml:"power_jitter"`
}

// First turn choices.
const (
	FirstPlayer    = "player"
	FirstAdversary = "adversary"
	FirstRandom    = "random"
)
