package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Frontend runs the game in the terminal.
type Frontend struct{}

func init() {
	registry.Register("tui", func() registry.Frontend {
		return Frontend{}
	})
}

// ID returns the frontend identifier.
func (Frontend) ID() string {
	return "tui"
}

// Title returns the display name.
func (Frontend) Title() string {
	return "Terminal (Bubble Tea)"
}

// Run starts the Bubble Tea program and blocks until the player quits.
func (Frontend) Run(host registry.Host) error {
	p := tea.NewProgram(
		NewModel(host),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	if host.Music != nil {
		host.Music.Stop()
	}
	if err != nil && host.Logger != nil {
		host.Logger.Error("terminal frontend stopped", "err", err)
	}
	return err
}
