package match

// Draw issues draw requests for the whole battlefield. Nothing is drawn in
// the menu phase; the presentation layer owns the menu.
func (m *Match) Draw(r Renderer) {
	if m.stage == stageMenu {
		return
	}

	r.DrawTerrain(m.field.Heights(), float64(m.cfg.FieldH))
	r.DrawTank(m.shape(m.player))
	r.DrawTank(m.shape(m.adversary))

	if m.shell.InFlight {
		r.DrawProjectile(m.shell.Pos, m.shell.Radius)
	}

	if m.stage == stagePlaying && m.turn == m.player.Side && !m.shell.InFlight && m.charging {
		r.DrawPowerMeter(PowerMeter{
			Power:     m.power,
			Max:       m.cfg.PowerMax,
			LastPower: m.lastPower,
		})
	}

	r.DrawTimer(m.SecondsLeft())
}

func (m *Match) shape(t Tank) TankShape {
	return TankShape{
		Side:        t.Side,
		Body:        t.Bounds(),
		BarrelFrom:  t.Pos,
		BarrelTo:    t.BarrelTip(m.cfg.BarrelLength),
		BarrelWidth: m.cfg.BarrelWidth,
	}
}
