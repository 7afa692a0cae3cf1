package core

import (
	"cmp"
	"slices"
)

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, A, H - shift piece one column left
	ActionRight            // Right arrow, D, L - shift piece one column right
	ActionRotate           // Up arrow, W, X - advance rotation frame
	ActionSoftDrop         // Down arrow, S - held: gravity runs faster
	ActionHardDrop         // Space - drop and lock immediately
	ActionHold             // C - swap with the hold slot
	ActionConfirm          // Enter - leave the loss screen for the menu
	ActionPause            // P, Escape - pause/unpause game
	ActionRestart          // R - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionHold:
		return "Hold"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the player input collected for a single simulation tick.
// Discrete key-down events keep their arrival order; continuous state (a key
// being held) is tracked separately.
type InputFrame struct {
	// Events lists actions triggered since the previous tick, oldest first.
	Events []Action

	held map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		held: make(map[Action]bool),
	}
}

// Set appends an action event to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Events = append(f.Events, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.Events {
		if e == a {
			return true
		}
	}
	return false
}

// SetHeld records whether a continuous action is currently held down.
func (f *InputFrame) SetHeld(a Action, down bool) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	if down {
		f.held[a] = true
	} else {
		delete(f.held, a)
	}
}

// Held returns true if the action is currently held down.
func (f InputFrame) Held(a Action) bool {
	if f.held == nil {
		return false
	}
	return f.held[a]
}

// Clear drops all queued events. Held state survives, since it describes
// the keyboard rather than the tick.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Press is a key event together with how long its key has been down, in ticks.
type Press struct {
	Action Action
	Held   int
}

// SetPresses appends the presses as events, longest held (oldest) first.
// Presses with equal hold times keep their given order.
func (f *InputFrame) SetPresses(presses []Press) {
	sorted := slices.Clone(presses)
	slices.SortStableFunc(sorted, func(a, b Press) int {
		return cmp.Compare(b.Held, a.Held)
	})
	for _, p := range sorted {
		f.Set(p.Action)
	}
}
