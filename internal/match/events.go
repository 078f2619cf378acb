package match

import (
	"github.com/vovakirdan/artillery-duel/internal/adversary"
	"github.com/vovakirdan/artillery-duel/internal/core"
)

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventTurnStarted EventKind = iota
	EventShotFired
	EventTerrainHit
	EventShotLeftField
	EventTurnForfeited
	EventMatchOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventTurnStarted:
		return "turn_started"
	case EventShotFired:
		return "shot_fired"
	case EventTerrainHit:
		return "terrain_hit"
	case EventShotLeftField:
		return "shot_left_field"
	case EventTurnForfeited:
		return "turn_forfeited"
	case EventMatchOver:
		return "match_over"
	default:
		return "unknown"
	}
}

// Event is a notable state change reported to the presentation layer.
// Only the fields relevant to the kind are set.
type Event struct {
	Kind    EventKind
	Side    core.Side         // Side whose turn or shot this concerns
	Pos     core.Vec2         // Launch or impact position
	Angle   float64           // Launch angle for ShotFired
	Power   float64           // Launch power for ShotFired
	Profile adversary.Profile // Rule behind an adversary ShotFired
	Result  *MatchResult      // Set for MatchOver
}

// MatchResult summarises a finished match.
type MatchResult struct {
	Winner         core.Side
	Loser          core.Side
	Turns          int // Turns started, including the final one
	PlayerShots    int
	AdversaryShots int
	Ticks          int
}

// StepResult holds the outcome of one simulation tick.
type StepResult struct {
	Phase  Phase
	Events []Event
}
