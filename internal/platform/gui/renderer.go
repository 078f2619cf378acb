package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/artillery-duel/internal/core"
	"github.com/vovakirdan/artillery-duel/internal/match"
)

var (
	skyColor       = color.RGBA{R: 24, G: 28, B: 44, A: 255}
	groundColor    = color.RGBA{R: 76, G: 120, B: 58, A: 255}
	surfaceColor   = color.RGBA{R: 120, G: 178, B: 86, A: 255}
	playerColor    = color.RGBA{R: 80, G: 160, B: 240, A: 255}
	adversaryColor = color.RGBA{R: 226, G: 72, B: 64, A: 255}
	barrelColor    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	shellColor     = color.RGBA{R: 250, G: 220, B: 90, A: 255}
	meterFrame     = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	meterFill      = color.RGBA{R: 230, G: 60, B: 40, A: 255}
	meterMark      = color.RGBA{R: 250, G: 220, B: 90, A: 255}
	panelColor     = color.RGBA{R: 10, G: 10, B: 16, A: 210}
)

// Power meter geometry in field pixels.
const (
	meterX = 20
	meterY = 20
	meterW = 200
	meterH = 16
)

// vectorRenderer draws the battlefield with ebiten vector primitives.
// Field units map 1:1 to logical pixels.
type vectorRenderer struct {
	dst *ebiten.Image
}

func (r vectorRenderer) DrawTerrain(heights []float64, fieldH float64) {
	for x, h := range heights {
		fx, fy := float32(x), float32(h)
		vector.FillRect(r.dst, fx, fy, 1, float32(fieldH)-fy, groundColor, false)
		vector.FillRect(r.dst, fx, fy, 1, 2, surfaceColor, false)
	}
}

func (r vectorRenderer) DrawTank(t match.TankShape) {
	c := playerColor
	if t.Side == core.SideAdversary {
		c = adversaryColor
	}
	vector.StrokeLine(r.dst,
		float32(t.BarrelFrom.X), float32(t.BarrelFrom.Y),
		float32(t.BarrelTo.X), float32(t.BarrelTo.Y),
		float32(t.BarrelWidth), barrelColor, true)
	vector.FillRect(r.dst, float32(t.Body.X), float32(t.Body.Y), float32(t.Body.W), float32(t.Body.H), c, false)
}

func (r vectorRenderer) DrawProjectile(center core.Vec2, radius float64) {
	vector.FillCircle(r.dst, float32(center.X), float32(center.Y), float32(radius), shellColor, true)
}

func (r vectorRenderer) DrawPowerMeter(m match.PowerMeter) {
	if m.Max <= 0 {
		return
	}
	fill := float32(m.Power / m.Max * meterW)
	vector.FillRect(r.dst, meterX, meterY, fill, meterH, meterFill, false)
	vector.StrokeRect(r.dst, meterX, meterY, meterW, meterH, 1, meterFrame, false)
	if m.LastPower > 0 {
		lx := meterX + float32(m.LastPower/m.Max*meterW)
		vector.StrokeLine(r.dst, lx, meterY-3, lx, meterY+meterH+3, 2, meterMark, false)
	}
	ebitenutil.DebugPrintAt(r.dst, fmt.Sprintf("%.0f", m.Power), meterX+meterW+8, meterY)
}

func (r vectorRenderer) DrawTimer(seconds int) {
	text := fmt.Sprintf("%02d", seconds)
	ebitenutil.DebugPrintAt(r.dst, text, (r.dst.Bounds().Dx()-len(text)*debugCharW)/2, 10)
}

// debugCharW is the advance of the debug font.
const debugCharW = 6

// drawPanel draws centered lines of text on a dark box.
func drawPanel(dst *ebiten.Image, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len(l)*debugCharW)
	}
	boxW, boxH := w+40, len(lines)*20+20
	bx := (dst.Bounds().Dx() - boxW) / 2
	by := (dst.Bounds().Dy() - boxH) / 2

	vector.FillRect(dst, float32(bx), float32(by), float32(boxW), float32(boxH), panelColor, false)
	vector.StrokeRect(dst, float32(bx), float32(by), float32(boxW), float32(boxH), 1, meterFrame, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(dst, l, bx+(boxW-len(l)*debugCharW)/2, by+14+i*20)
	}
}
