package artillery

import (
	"fmt"
	"math"

	"github.com/vovakirdan/artillery-duel/internal/core"
	"github.com/vovakirdan/artillery-duel/internal/match"
)

// Visual characters for rendering
const (
	GroundChar     = '█'
	SurfaceChar    = '▓'
	TankChar       = '█'
	BarrelChar     = '•'
	ShellChar      = '●'
	MeterFillChar  = '█'
	MeterEmptyChar = '░'
	MeterMarkChar  = '|'
)

const meterWidth = 20

// cellRenderer draws match geometry onto a character grid, scaling field
// units to cells.
type cellRenderer struct {
	dst    *core.Screen
	scaleX float64
	scaleY float64
}

func newCellRenderer(dst *core.Screen, fieldW, fieldH int) *cellRenderer {
	return &cellRenderer{
		dst:    dst,
		scaleX: float64(dst.Width()) / float64(fieldW),
		scaleY: float64(dst.Height()) / float64(fieldH),
	}
}

func (r *cellRenderer) cell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X * r.scaleX)), int(math.Floor(p.Y * r.scaleY))
}

func (r *cellRenderer) DrawTerrain(heights []float64, fieldH float64) {
	if len(heights) == 0 {
		return
	}
	for cx := 0; cx < r.dst.Width(); cx++ {
		fx := (float64(cx) + 0.5) / r.scaleX
		idx := core.Clamp(int(fx), 0, len(heights)-1)
		top := int(math.Floor(heights[idx] * r.scaleY))

		r.dst.SetColored(cx, top, SurfaceChar, core.ColorBrightGreen)
		r.dst.DrawVLine(cx, top+1, r.dst.Height()-top-1, GroundChar, core.ColorGreen)
	}
}

func (r *cellRenderer) DrawTank(t match.TankShape) {
	color := core.ColorBrightBlue
	if t.Side == core.SideAdversary {
		color = core.ColorBrightRed
	}

	x0, y0 := r.cell(core.Vec2{X: t.Body.X, Y: t.Body.Y})
	x1, y1 := r.cell(core.Vec2{X: t.Body.Right(), Y: t.Body.Bottom()})
	r.dst.FillRect(x0, y0, max(1, x1-x0), max(1, y1-y0), TankChar, color)

	// Sample the barrel segment once per cell it can cross
	steps := int(math.Ceil(t.BarrelFrom.Dist(t.BarrelTo)*math.Max(r.scaleX, r.scaleY))) + 1
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		p := t.BarrelFrom.Add(t.BarrelTo.Sub(t.BarrelFrom).Scale(f))
		cx, cy := r.cell(p)
		if r.dst.GetCell(cx, cy).Rune == TankChar {
			continue
		}
		r.dst.SetColored(cx, cy, BarrelChar, core.ColorGray)
	}
}

func (r *cellRenderer) DrawProjectile(center core.Vec2, radius float64) {
	cx, cy := r.cell(center)
	r.dst.SetColored(cx, cy, ShellChar, core.ColorBrightYellow)
}

func (r *cellRenderer) DrawPowerMeter(m match.PowerMeter) {
	if m.Max <= 0 {
		return
	}
	x, y := 1, 1
	filled := core.Clamp(int(m.Power/m.Max*meterWidth), 0, meterWidth)

	r.dst.DrawText(x, y, "[")
	r.dst.DrawHLine(x+1, y, filled, MeterFillChar, core.ColorRed)
	r.dst.DrawHLine(x+1+filled, y, meterWidth-filled, MeterEmptyChar, core.ColorGray)
	r.dst.DrawText(x+1+meterWidth, y, "]")
	if m.LastPower > 0 {
		mark := core.Clamp(int(m.LastPower/m.Max*meterWidth), 0, meterWidth-1)
		r.dst.SetColored(x+1+mark, y, MeterMarkChar, core.ColorYellow)
	}
	r.dst.DrawText(x+meterWidth+3, y, fmt.Sprintf("%3.0f", m.Power))
}

func (r *cellRenderer) DrawTimer(seconds int) {
	text := fmt.Sprintf("%02d", seconds)
	r.dst.DrawTextColored((r.dst.Width()-len(text))/2, 0, text, core.ColorWhite)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.match == nil {
		return
	}

	g.match.Draw(newCellRenderer(dst, g.cfg.FieldW, g.cfg.FieldH))

	snap := g.match.Snapshot()
	turn := "CPU"
	if snap.Turn == core.SidePlayer {
		turn = "YOU"
	}
	dst.DrawText(1, 0, fmt.Sprintf("%s  ANGLE %3.0f°", turn, snap.Player.Angle))

	tally := fmt.Sprintf("W %d  L %d", g.wins, g.losses)
	dst.DrawText(dst.Width()-len(tally)-1, 0, tally)

	if !snap.Charging && g.status != "" {
		dst.DrawTextColored(1, 1, g.status, core.ColorCyan)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		msg := "CPU WINS!"
		if g.winner == core.SidePlayer {
			msg = "DIRECT HIT - YOU WIN!"
		}
		turns := 0
		if res := g.match.Result(); res != nil {
			turns = res.Turns
		}
		g.drawCenteredMessage(dst, msg, fmt.Sprintf("%d turns  |  R: rematch  B: menu", turns))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
