package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

const (
	// lostScreenFor is how long "You Lost" stays up before the menu returns.
	lostScreenFor = 2 * time.Second
	// softDropWindow approximates a held key: terminals report repeats but
	// never releases, so soft drop stays on this long after the last press.
	softDropWindow = 150 * time.Millisecond
)

type screenMode int

const (
	modeMenu screenMode = iota
	modePlaying
	modeLost
)

// Model is the Bubble Tea model hosting the menu and game sessions.
type Model struct {
	host      registry.Host
	game      *tetris.Game
	screen    *core.Screen
	keys      KeyMap
	keyMapper *KeyMapper
	help      help.Model
	input     core.InputFrame

	mode     screenMode
	width    int
	height   int
	lastTick time.Time
	lostFor  time.Duration
	// softDropUntil is when the soft-drop window from the last press closes.
	softDropUntil time.Time

	games     int
	lastScore int
	track     string
	quitting  bool
}

// NewModel creates a new Bubble Tea model. The game is built but not started
// until the player leaves the menu.
func NewModel(host registry.Host) Model {
	var music tetris.Jukebox
	if host.Music != nil {
		music = host.Music
	}
	keys := DefaultKeyMap()
	return Model{
		host:      host,
		game:      tetris.New(host.Config, music, host.Logger),
		screen:    core.NewScreen(host.Runtime.ScreenW, max(host.Runtime.ScreenH-1, 0)),
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		help:      help.New(),
		input:     core.NewInputFrame(),
		width:     host.Runtime.ScreenW,
		height:    host.Runtime.ScreenH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("Tetris"), tickCmd(m.host.Runtime.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.mode {
	case modeMenu:
		m.startGame()
	case modeLost:
		switch action {
		case core.ActionRestart:
			m.startGame()
		case core.ActionConfirm:
			m.mode = modeMenu
		}
	case modePlaying:
		if action == core.ActionSoftDrop {
			m.softDropUntil = now.Add(softDropWindow)
			return m, nil
		}
		m.input.Set(action)
	}
	return m, nil
}

// startGame resets the game with the next seed and enters play.
func (m *Model) startGame() {
	seed := m.host.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		// Fixed seeds give a reproducible sequence of games.
		seed += int64(m.games)
	}
	m.games++

	cfg := m.host.Runtime
	cfg.Seed = seed
	cfg.ScreenW = m.screen.Width()
	cfg.ScreenH = m.screen.Height()
	m.game.Reset(cfg)

	m.mode = modePlaying
	m.lostFor = 0
	m.softDropUntil = time.Time{}
	m.input.Clear()
}

// handleResize processes window resize events. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.game.Resize(m.screen.Width(), m.screen.Height())
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := now.Sub(m.lastTick)
	if m.lastTick.IsZero() || elapsed < 0 {
		elapsed = m.host.Runtime.TickInterval()
	}
	m.lastTick = now

	switch m.mode {
	case modeMenu:
		if m.host.Music != nil {
			m.track = m.host.Music.Check()
		}

	case modePlaying:
		m.input.SetHeld(core.ActionSoftDrop, now.Before(m.softDropUntil))
		result := m.game.Step(m.input, elapsed)
		if result.State.GameOver {
			m.mode = modeLost
			m.lostFor = 0
			m.lastScore = result.State.Score
		}
		m.track = m.game.Snapshot().Track

	case modeLost:
		m.game.Step(core.NewInputFrame(), elapsed)
		m.lostFor += elapsed
		if m.lostFor >= lostScreenFor {
			m.mode = modeMenu
		}
	}

	// Clear input for next frame
	m.input.Clear()

	return m, tickCmd(m.host.Runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeMenu {
		return m.menuView()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}
