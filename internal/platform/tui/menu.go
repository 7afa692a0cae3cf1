package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Blink(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// menuView renders the start screen shown before each game.
func (m Model) menuView() string {
	lines := []string{
		titleStyle.Render("T E T R I S"),
		"",
		promptStyle.Render("Press any key to begin"),
	}
	if m.games > 0 {
		lines = append(lines, "", fmt.Sprintf("Last score: %d", m.lastScore))
	}
	if m.track != "" {
		lines = append(lines, "", dimStyle.Render("♪ Now Playing: "+m.track))
	}
	lines = append(lines, "", m.help.FullHelpView(m.keys.FullHelp()))

	body := strings.Join(lines, "\n")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(body))
}
