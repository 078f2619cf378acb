package match

import (
	"github.com/vovakirdan/artillery-duel/internal/adversary"
	"github.com/vovakirdan/artillery-duel/internal/ballistics"
	"github.com/vovakirdan/artillery-duel/internal/core"
)

// Snapshot is a read-only copy of the match state.
type Snapshot struct {
	Phase          Phase
	Turn           core.Side
	Countdown      int
	Power          float64
	PowerDirection float64
	Charging       bool
	LastPower      float64
	Player         Tank
	Adversary      Tank
	Projectile     ballistics.Projectile
	Heights        []float64
	History        []adversary.ShotRecord
	Ticks          int
}

// Snapshot captures the current state.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Phase:          m.Phase(),
		Turn:           m.turn,
		Countdown:      m.countdown,
		Power:          m.power,
		PowerDirection: m.powerDirection,
		Charging:       m.charging,
		LastPower:      m.lastPower,
		Player:         m.player,
		Adversary:      m.adversary,
		Projectile:     m.shell,
		Heights:        m.field.Heights(),
		History:        m.history.Records(),
		Ticks:          m.ticks,
	}
}

// SecondsLeft returns the turn timer in whole seconds.
func (m *Match) SecondsLeft() int {
	rate := m.cfg.TickRate
	if rate <= 0 {
		rate = 60
	}
	return m.countdown / rate
}
