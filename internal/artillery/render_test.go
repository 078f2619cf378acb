package artillery

import (
	"strings"
	"testing"

	"github.com/vovakirdan/artillery-duel/internal/core"
	"github.com/vovakirdan/artillery-duel/internal/match"
)

func countRune(s *core.Screen, r rune) int {
	return strings.Count(s.String(), string(r))
}

func TestRenderBattlefield(t *testing.T) {
	g := newGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Every column has ground down to the bottom row
	bottom := screen.Row(23)
	if strings.ContainsRune(bottom, ' ') {
		t.Errorf("bottom row has gaps: %q", bottom)
	}
	if countRune(screen, SurfaceChar) == 0 {
		t.Error("terrain surface not drawn")
	}

	blue, red := 0, 0
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			switch screen.GetCell(x, y).Color {
			case core.ColorBrightBlue:
				blue++
			case core.ColorBrightRed:
				red++
			}
		}
	}
	if blue == 0 || red == 0 {
		t.Errorf("tanks not drawn: player cells=%d adversary cells=%d", blue, red)
	}

	top := screen.Row(0)
	if !strings.Contains(top, "YOU") || !strings.Contains(top, "ANGLE") || !strings.Contains(top, "10") {
		t.Errorf("HUD row = %q", top)
	}
	if !strings.Contains(top, "W 0  L 0") {
		t.Errorf("tally missing from HUD row %q", top)
	}
}

func TestRenderPowerMeter(t *testing.T) {
	g := newGame(t)
	g.Step(frame(core.ActionCharge))
	for i := 0; i < 49; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	row := screen.Row(1)
	if !strings.Contains(row, "[") || !strings.Contains(row, " 50") {
		t.Errorf("power meter row = %q", row)
	}
	if got := strings.Count(row, string(MeterFillChar)); got != 10 {
		t.Errorf("meter fill = %d cells, expected 10 at half power", got)
	}
}

func TestRenderGameOverMessage(t *testing.T) {
	g := newGame(t)
	g.handleEvents([]match.Event{{
		Kind:   match.EventMatchOver,
		Result: &match.MatchResult{Winner: core.SidePlayer, Loser: core.SideAdversary},
	}})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "YOU WIN!") {
		t.Error("win message missing")
	}
}

func TestCellRendererProjectile(t *testing.T) {
	screen := core.NewScreen(80, 24)
	r := newCellRenderer(screen, 800, 600)

	r.DrawProjectile(core.Vec2{X: 405, Y: 300}, 5)
	if screen.GetCell(40, 12).Rune != ShellChar {
		t.Errorf("projectile cell = %q, expected %q", screen.GetCell(40, 12).Rune, ShellChar)
	}

	// Off-screen positions are clipped silently
	r.DrawProjectile(core.Vec2{X: -50, Y: -400}, 5)
}
