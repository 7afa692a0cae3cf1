package tetris

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Jukebox is the music source polled once per tick. Check keeps a track
// playing and returns its display name, or "" when nothing plays.
type Jukebox interface {
	Check() string
}

// Game wraps a Session with everything around the rules: pause, restart,
// music polling, frame-rate measurement and text rendering.
type Game struct {
	cfg    config.TetrisConfig
	rules  Rules
	music  Jukebox
	logger *log.Logger

	rng     *rand.Rand
	session *Session

	screenW int
	screenH int

	tick     uint64
	paused   bool
	tooSmall bool
	track    string
	fps      fpsMeter
}

// New creates a game from configuration. music and logger may be nil.
func New(cfg config.TetrisConfig, music Jukebox, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:    cfg,
		rules:  RulesFromConfig(cfg.Gameplay),
		music:  music,
		logger: logger,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new session. The seed fully determines the piece sequence.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.session = NewSession(g.rules, g.rng, g.logger)
	g.tick = 0
	g.paused = false
	g.fps = fpsMeter{}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.logger.Debug("session started", "seed", cfg.Seed)
}

// Resize records the terminal size used by Render.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < requiredWidth || h < requiredHeight
}

// Step advances the game by one tick. elapsed is the real time since the
// previous tick.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	g.tick++
	g.fps.observe(elapsed)
	if g.music != nil {
		g.track = g.music.Check()
	}

	// Handle restart
	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if g.session.Lost() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	out := g.session.Step(in, elapsed)
	return core.StepResult{
		State:   g.State(),
		Settled: out.Settled,
		Cleared: out.Cleared,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Lost(),
		Paused:   g.paused,
	}
}

// Session exposes the underlying rules engine.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot returns the session snapshot decorated with presentation state.
func (g *Game) Snapshot() Snapshot {
	snap := g.session.Snapshot()
	snap.Track = g.track
	snap.FPS = g.fps.value
	if !g.cfg.Display.Ghost {
		snap.Ghost = nil
	}
	switch {
	case snap.State == StateLost:
	case g.tooSmall:
		snap.State = StateTooSmall
	case g.paused:
		snap.State = StatePaused
	}
	return snap
}

// fpsMeter averages the frame rate over one-second windows.
type fpsMeter struct {
	frames int
	window time.Duration
	value  float64
}

func (m *fpsMeter) observe(elapsed time.Duration) {
	m.frames++
	m.window += elapsed
	if m.window >= time.Second {
		m.value = float64(m.frames) / m.window.Seconds()
		m.frames = 0
		m.window = 0
	}
}
