package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

type fakeMusic struct {
	checks  int
	stopped bool
}

func (f *fakeMusic) Check() string {
	f.checks++
	return "Theme A"
}

func (f *fakeMusic) Stop() { f.stopped = true }

func newTestModel(music registry.Music) Model {
	return NewModel(registry.Host{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 42},
		Config:  config.DefaultTetrisConfig(),
		Music:   music,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestMenuStartsOnAnyKey(t *testing.T) {
	m := newTestModel(nil)
	if !strings.Contains(m.View(), "Press any key to begin") {
		t.Fatal("menu prompt missing")
	}

	m = update(t, m, runeKey("x"))
	if m.mode != modePlaying {
		t.Fatalf("mode = %v, want playing", m.mode)
	}
	if m.games != 1 {
		t.Errorf("games = %d, want 1", m.games)
	}
	if !strings.Contains(m.View(), "T E T R I S") {
		t.Error("game view missing title")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(nil)
	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !next.(Model).quitting {
		t.Error("quitting not set")
	}
	if next.(Model).View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestSoftDropOpensWindow(t *testing.T) {
	m := newTestModel(nil)
	m = update(t, m, runeKey("x"))

	now := time.Now()
	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyDown}, now)
	m = next.(Model)
	if !m.softDropUntil.Equal(now.Add(softDropWindow)) {
		t.Errorf("softDropUntil = %v, want %v", m.softDropUntil, now.Add(softDropWindow))
	}
	if len(m.input.Events) != 0 {
		t.Error("soft drop should not queue a discrete event")
	}
}

func TestTickStepsGame(t *testing.T) {
	m := newTestModel(nil)
	m = update(t, m, runeKey("x"))

	start := time.Now()
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg(start))

	if m.game.Session().Locked().Len() != 4 {
		t.Errorf("locked = %d after hard drop tick, want 4", m.game.Session().Locked().Len())
	}
	if len(m.input.Events) != 0 {
		t.Error("input not cleared after tick")
	}
}

func TestLostReturnsToMenu(t *testing.T) {
	m := newTestModel(nil)
	m = update(t, m, runeKey("x"))
	m.game.Session().Locked().Set(tetrisTop(), core.ColorRed)

	start := time.Now()
	m = update(t, m, TickMsg(start))
	if m.mode != modeLost {
		t.Fatalf("mode = %v, want lost", m.mode)
	}
	if !strings.Contains(m.View(), "You Lost") {
		t.Error("lost overlay missing")
	}

	m = update(t, m, TickMsg(start.Add(time.Second)))
	if m.mode != modeLost {
		t.Fatal("left the lost screen too early")
	}
	m = update(t, m, TickMsg(start.Add(2*time.Second)))
	if m.mode != modeMenu {
		t.Errorf("mode = %v after 2s, want menu", m.mode)
	}
	if !strings.Contains(m.View(), "Last score: 0") {
		t.Error("menu should show the last score")
	}
}

func TestEnterLeavesLostScreen(t *testing.T) {
	m := newTestModel(nil)
	m = update(t, m, runeKey("x"))
	m.game.Session().Locked().Set(tetrisTop(), core.ColorRed)
	m = update(t, m, TickMsg(time.Now()))
	if m.mode != modeLost {
		t.Fatalf("mode = %v, want lost", m.mode)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeMenu {
		t.Errorf("mode = %v after enter, want menu", m.mode)
	}
	if m.games != 1 {
		t.Errorf("games = %d, enter must not start a new game", m.games)
	}
}

func TestRestartFromLostScreen(t *testing.T) {
	m := newTestModel(nil)
	m = update(t, m, runeKey("x"))
	m.game.Session().Locked().Set(tetrisTop(), core.ColorRed)
	m = update(t, m, TickMsg(time.Now()))

	m = update(t, m, runeKey("r"))
	if m.mode != modePlaying {
		t.Errorf("mode = %v, want playing", m.mode)
	}
	if m.game.Session().Locked().Len() != 0 {
		t.Error("restart should start a fresh board")
	}
}

func TestMenuPollsMusic(t *testing.T) {
	music := &fakeMusic{}
	m := newTestModel(music)
	m = update(t, m, TickMsg(time.Now()))

	if music.checks != 1 {
		t.Errorf("checks = %d, want 1", music.checks)
	}
	if !strings.Contains(m.View(), "Now Playing: Theme A") {
		t.Error("menu should show the track")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	m := newTestModel(nil)
	m = update(t, m, runeKey("x"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg(time.Now()))

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 100x29", m.screen.Width(), m.screen.Height())
	}
	if m.game.Session().Locked().Len() != 4 {
		t.Error("resize should not reset the game")
	}
}

func tetrisTop() tetris.Point {
	return tetris.Point{X: 0, Y: 0}
}
