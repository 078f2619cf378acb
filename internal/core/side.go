package core

// Side identifies one of the two combatants of a duel.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideAdversary
)

// Opponent returns the other combatant. SideNone has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case SidePlayer:
		return SideAdversary
	case SideAdversary:
		return SidePlayer
	default:
		return SideNone
	}
}

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAdversary:
		return "adversary"
	default:
		return "none"
	}
}
