// Package adversary computes aim and power for the computer-controlled side.
//
// The policy is a small rule table over the last few shot outcomes. It does
// not model the trajectory; it nudges the previous shot toward the target and
// adds jitter so it never repeats itself exactly.
package adversary

import "github.com/vovakirdan/artillery-duel/internal/core"

// Rand is the random source for profile choice and jitter.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Profile names the rule that produced a decision.
type Profile int

const (
	ProfileNone           Profile = iota // Not produced by the policy
	ProfileHighArc                       // First shot, lobbed
	ProfileDirect                        // First shot, flat
	ProfileShortSwitch                   // Last shot short and flat: switch to a lob
	ProfileShortEscalate                 // Last shot short and already lobbed: raise both
	ProfileOvershotHigh                  // Last shot long and above the target
	ProfileOvershotFar                   // Last shot long at target height or below
	ProfileShortStreak                   // Every remembered shot fell short
)

// String returns a human-readable name for the profile.
func (p Profile) String() string {
	switch p {
	case ProfileNone:
		return "none"
	case ProfileHighArc:
		return "high-arc"
	case ProfileDirect:
		return "direct"
	case ProfileShortSwitch:
		return "short-switch"
	case ProfileShortEscalate:
		return "short-escalate"
	case ProfileOvershotHigh:
		return "overshot-high"
	case ProfileOvershotFar:
		return "overshot-far"
	case ProfileShortStreak:
		return "short-streak"
	default:
		return "unknown"
	}
}

// Params tunes the rule table.
type Params struct {
	HighArcMin     float64 // Lower bound of a first-shot lob angle
	HighArcMax     float64 // Upper bound of a first-shot lob angle
	DirectMax      float64 // Upper bound of a first-shot flat angle
	HighArcDivisor float64 // Lob power = distance / divisor
	DirectDivisor  float64 // Flat power = distance / divisor
	SwitchAngle    float64 // Below this a short shot switches to a lob
	CorrectionMin  float64 // Lower bound of a corrective lob angle
	CorrectionMax  float64 // Upper bound of a corrective lob angle
	SwitchPower    float64 // Power added when switching to a lob
	EscalateAngle  float64 // Angle added when escalating a lob
	EscalatePower  float64 // Power added when escalating a lob
	OvershotAngle  float64 // Angle removed after a high overshoot
	OvershotPower  float64 // Power removed after a high overshoot
	FarPower       float64 // Power removed after a flat overshoot
	AngleJitter    float64 // Max absolute angle noise
	PowerJitter    float64 // Max absolute power noise
}

// DefaultParams returns the standard rule table.
func DefaultParams() Params {
	return Params{
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
	}
}

// Decision is the aim chosen for one shot.
type Decision struct {
	Angle   float64
	Power   float64
	Profile Profile
}

// Policy chooses adversary shots.
type Policy struct {
	params Params
	rng    Rand
}

// NewPolicy creates a policy drawing randomness from rng.
func NewPolicy(params Params, rng Rand) *Policy {
	return &Policy{params: params, rng: rng}
}

// Decide picks angle and power for a shot from self at opponent.
func (p *Policy) Decide(self, opponent core.Vec2, history *History) Decision {
	d := p.baseline(self, opponent, history)
	d.Angle += p.uniform(-p.params.AngleJitter, p.params.AngleJitter)
	d.Power += p.uniform(-p.params.PowerJitter, p.params.PowerJitter)
	return d
}

func (p *Policy) baseline(self, opponent core.Vec2, history *History) Decision {
	distance := self.Dist(opponent)

	last, ok := history.Last()
	if !ok {
		if p.rng.Intn(2) == 1 {
			return Decision{
				Angle:   p.uniform(p.params.HighArcMin, p.params.HighArcMax),
				Power:   distance / p.params.HighArcDivisor,
				Profile: ProfileHighArc,
			}
		}
		return Decision{
			Angle:   p.uniform(0, p.params.DirectMax),
			Power:   distance / p.params.DirectDivisor,
			Profile: ProfileDirect,
		}
	}

	var d Decision
	switch {
	case isShort(last, opponent) && last.Angle < p.params.SwitchAngle:
		d = Decision{
			Angle:   p.uniform(p.params.CorrectionMin, p.params.CorrectionMax),
			Power:   last.Power + p.params.SwitchPower,
			Profile: ProfileShortSwitch,
		}
	case isShort(last, opponent):
		d = Decision{
			Angle:   last.Angle + p.params.EscalateAngle,
			Power:   last.Power + p.params.EscalatePower,
			Profile: ProfileShortEscalate,
		}
	case last.Impact.Y < opponent.Y:
		d = Decision{
			Angle:   last.Angle - p.params.OvershotAngle,
			Power:   last.Power - p.params.OvershotPower,
			Profile: ProfileOvershotHigh,
		}
	default:
		d = Decision{
			Angle:   last.Angle,
			Power:   last.Power - p.params.FarPower,
			Profile: ProfileOvershotFar,
		}
	}

	if history.Len() == HistorySize && allShort(history, opponent) {
		d = Decision{
			Angle:   p.uniform(p.params.CorrectionMin, p.params.CorrectionMax),
			Power:   distance / p.params.HighArcDivisor,
			Profile: ProfileShortStreak,
		}
	}
	return d
}

// isShort reports whether a shot landed left of the opponent.
func isShort(r ShotRecord, opponent core.Vec2) bool {
	return r.Impact.X < opponent.X
}

func allShort(history *History, opponent core.Vec2) bool {
	for _, r := range history.Records() {
		if !isShort(r, opponent) {
			return false
		}
	}
	return true
}

func (p *Policy) uniform(lo, hi float64) float64 {
	return lo + p.rng.Float64()*(hi-lo)
}
