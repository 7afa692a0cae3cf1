package gui

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Frontend runs the game in a desktop window.
type Frontend struct{}

func init() {
	registry.Register("gui", func() registry.Frontend {
		return Frontend{}
	})
}

// ID returns the frontend identifier.
func (Frontend) ID() string {
	return "gui"
}

// Title returns the display name.
func (Frontend) Title() string {
	return "Window (Ebitengine)"
}

// Run opens the window and blocks until it is closed or Q is pressed.
func (Frontend) Run(host registry.Host) error {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Tetris")
	if host.Runtime.TickRate > 0 {
		ebiten.SetTPS(host.Runtime.TickRate)
	}

	err := ebiten.RunGame(newWindow(host))
	if host.Music != nil {
		host.Music.Stop()
	}
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
