package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Sideways auto-repeat, in ticks.
const (
	repeatDelay = 10
	repeatEvery = 3
)

type binding struct {
	key    ebiten.Key
	action core.Action
	repeat bool
}

var bindings = []binding{
	{ebiten.KeyLeft, core.ActionLeft, true},
	{ebiten.KeyA, core.ActionLeft, true},
	{ebiten.KeyRight, core.ActionRight, true},
	{ebiten.KeyD, core.ActionRight, true},
	{ebiten.KeyUp, core.ActionRotate, false},
	{ebiten.KeyW, core.ActionRotate, false},
	{ebiten.KeyX, core.ActionRotate, false},
	{ebiten.KeySpace, core.ActionHardDrop, false},
	{ebiten.KeyC, core.ActionHold, false},
	{ebiten.KeyP, core.ActionPause, false},
	{ebiten.KeyEscape, core.ActionPause, false},
	{ebiten.KeyR, core.ActionRestart, false},
}

// lostBindings are read on the loss screen.
var lostBindings = []binding{
	{ebiten.KeyR, core.ActionRestart, false},
	{ebiten.KeyEnter, core.ActionConfirm, false},
	{ebiten.KeyNumpadEnter, core.ActionConfirm, false},
}

// readInput collects this tick's events plus the held soft-drop state.
func readInput() core.InputFrame {
	in := collect(bindings, inpututil.KeyPressDuration)
	in.SetHeld(core.ActionSoftDrop, ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS))
	return in
}

// readLostInput collects the loss screen's events.
func readLostInput() core.InputFrame {
	return collect(lostBindings, inpututil.KeyPressDuration)
}

// collect emits the actions whose keys fire this tick, oldest press first.
// Ebiten reports no order within a tick, so keys first pressed on the same
// tick keep binding order.
func collect(table []binding, duration func(ebiten.Key) int) core.InputFrame {
	var presses []core.Press
	for _, b := range table {
		if d := duration(b.key); fires(d, b.repeat) {
			presses = append(presses, core.Press{Action: b.action, Held: d})
		}
	}
	in := core.NewInputFrame()
	in.SetPresses(presses)
	return in
}

// fires reports whether a key held for d ticks emits an event this tick.
func fires(d int, repeat bool) bool {
	if d == 1 {
		return true
	}
	return repeat && d > repeatDelay && (d-repeatDelay)%repeatEvery == 0
}
