package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// keyPoller reports whether a key is currently held.
type keyPoller func(ebiten.Key) bool

// keyboard tracks held keys between ticks so releases can be detected.
type keyboard struct {
	pressed  keyPoller
	prevKeys map[ebiten.Key]bool
	curKeys  map[ebiten.Key]bool
}

func newKeyboard(pressed keyPoller) *keyboard {
	if pressed == nil {
		pressed = ebiten.IsKeyPressed
	}
	return &keyboard{
		pressed:  pressed,
		prevKeys: make(map[ebiten.Key]bool),
		curKeys:  make(map[ebiten.Key]bool),
	}
}

var trackedKeys = []ebiten.Key{
	ebiten.KeySpace,
	ebiten.KeyW, ebiten.KeyArrowUp,
	ebiten.KeyS, ebiten.KeyArrowDown,
	ebiten.KeyEnter, ebiten.KeyEscape,
	ebiten.KeyP, ebiten.KeyR, ebiten.KeyQ,
}

// poll samples every tracked key. Call once per tick.
func (k *keyboard) poll() {
	k.prevKeys, k.curKeys = k.curKeys, k.prevKeys
	for _, key := range trackedKeys {
		k.curKeys[key] = k.pressed(key)
	}
}

func (k *keyboard) held(key ebiten.Key) bool {
	return k.curKeys[key]
}

func (k *keyboard) justPressed(key ebiten.Key) bool {
	return k.curKeys[key] && !k.prevKeys[key]
}

func (k *keyboard) justReleased(key ebiten.Key) bool {
	return !k.curKeys[key] && k.prevKeys[key]
}

// The keyboard drives the match directly: Space is held to charge and
// released to fire. Each aim key press moves the barrel one step.

func (k *keyboard) ChargeHeld() bool {
	return k.held(ebiten.KeySpace)
}

func (k *keyboard) FireReleased() bool {
	return k.justReleased(ebiten.KeySpace)
}

func (k *keyboard) AimUpPressed() bool {
	return k.justPressed(ebiten.KeyW) || k.justPressed(ebiten.KeyArrowUp)
}

func (k *keyboard) AimDownPressed() bool {
	return k.justPressed(ebiten.KeyS) || k.justPressed(ebiten.KeyArrowDown)
}
