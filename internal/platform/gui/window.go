package gui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Window geometry in pixels.
const (
	screenW    = 800
	screenH    = 750
	blockSize  = 30
	playW      = tetris.BoardWidth * blockSize
	playH      = tetris.BoardHeight * blockSize
	playLeft   = (screenW - playW) / 2
	playTop    = screenH - playH - 50
	panelLeft  = playLeft + playW + 50
	holdLeft   = playLeft - 200
	previewTop = playTop + playH/2 - 100
	lineHeight = 18

	lostScreenFor = 2 * time.Second
)

type screenMode int

const (
	modeMenu screenMode = iota
	modePlaying
	modeLost
)

// window implements ebiten.Game.
type window struct {
	host registry.Host
	game *tetris.Game

	mode    screenMode
	last    time.Time
	lostFor time.Duration

	games     int
	lastScore int
	track     string
}

func newWindow(host registry.Host) *window {
	var music tetris.Jukebox
	if host.Music != nil {
		music = host.Music
	}
	return &window{
		host: host,
		game: tetris.New(host.Config, music, host.Logger),
	}
}

// Update advances one tick.
func (w *window) Update() error {
	now := time.Now()
	elapsed := now.Sub(w.last)
	if w.last.IsZero() || elapsed < 0 {
		elapsed = w.host.Runtime.TickInterval()
	}
	w.last = now

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	switch w.mode {
	case modeMenu:
		if w.host.Music != nil {
			w.track = w.host.Music.Check()
		}
		if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
			w.start()
		}

	case modePlaying:
		result := w.game.Step(readInput(), elapsed)
		w.track = w.game.Snapshot().Track
		if result.State.GameOver {
			w.mode = modeLost
			w.lostFor = 0
			w.lastScore = result.State.Score
		}

	case modeLost:
		w.game.Step(core.NewInputFrame(), elapsed)
		w.lostFor += elapsed
		in := readLostInput()
		switch {
		case in.Has(core.ActionRestart):
			w.start()
		case in.Has(core.ActionConfirm), w.lostFor >= lostScreenFor:
			w.mode = modeMenu
		}
	}
	return nil
}

func (w *window) start() {
	seed := w.host.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		seed += int64(w.games)
	}
	w.games++

	cfg := w.host.Runtime
	cfg.Seed = seed
	// The text layout is unused here; any size that fits keeps the game running.
	cfg.ScreenW, cfg.ScreenH = 80, 24
	w.game.Reset(cfg)
	w.mode = modePlaying
	w.lostFor = 0
}

// Layout keeps a fixed logical resolution.
func (w *window) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

// Draw renders the current mode.
func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	drawTextCentered(screen, "TETRIS", 40, textColor)

	if w.mode == modeMenu {
		drawTextCentered(screen, "Press any key to begin", screenH/2, textColor)
		if w.games > 0 {
			drawTextCentered(screen, fmt.Sprintf("Last score: %d", w.lastScore), screenH/2+30, dimText)
		}
		w.drawTrack(screen)
		return
	}

	snap := w.game.Snapshot()
	drawBoard(screen, snap)
	drawPreview(screen, "Next Shape", panelLeft, previewTop, &snap.Next)
	drawPreview(screen, "Hold", holdLeft, previewTop, snap.Held)
	drawStats(screen, snap)
	if w.host.Config.Display.ShowFPS {
		text.Draw(screen, fmt.Sprintf("FPS %.0f", snap.FPS), basicfont.Face7x13, 10, 20, dimText)
	}
	w.drawTrack(screen)

	switch snap.State {
	case tetris.StateLost:
		drawOverlay(screen, "You Lost", fmt.Sprintf("Score: %d", snap.Score))
	case tetris.StatePaused:
		drawOverlay(screen, "Paused", "Press P to continue")
	}
}

func (w *window) drawTrack(screen *ebiten.Image) {
	if w.track != "" {
		drawTextCentered(screen, "Now Playing: "+w.track, screenH-20, dimText)
	}
}

// drawBoard draws locked cells, the ghost, the active piece and the grid.
func drawBoard(screen *ebiten.Image, snap tetris.Snapshot) {
	for _, p := range snap.Ghost {
		if tetris.InBounds(p.X, p.Y) && snap.Board[p.Y][p.X].IsEmpty() {
			drawBlock(screen, playLeft+p.X*blockSize, playTop+p.Y*blockSize, tetris.GhostColor)
		}
	}
	for row := 0; row < tetris.BoardHeight; row++ {
		for col := 0; col < tetris.BoardWidth; col++ {
			if c := snap.Board[row][col]; !c.IsEmpty() {
				drawBlock(screen, playLeft+col*blockSize, playTop+row*blockSize, c)
			}
		}
	}

	// Grid lines
	for row := 0; row <= tetris.BoardHeight; row++ {
		y := float32(playTop + row*blockSize)
		vector.StrokeLine(screen, playLeft, y, playLeft+playW, y, 1, gridLine, false)
	}
	for col := 0; col <= tetris.BoardWidth; col++ {
		x := float32(playLeft + col*blockSize)
		vector.StrokeLine(screen, x, playTop, x, playTop+playH, 1, gridLine, false)
	}
	vector.StrokeRect(screen, playLeft, playTop, playW, playH, 4, frameColor, false)
}

func drawBlock(screen *ebiten.Image, x, y int, c core.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), blockSize, blockSize, rgba(c), false)
}

// drawPreview draws a piece's current frame at its natural offsets.
func drawPreview(screen *ebiten.Image, label string, x, y int, p *tetris.Piece) {
	text.Draw(screen, label, basicfont.Face7x13, x+10, y-30, textColor)
	if p == nil {
		return
	}
	for _, o := range p.Frame().Offsets() {
		drawBlock(screen, x+o.X*blockSize, y+o.Y*blockSize, p.Color)
	}
}

func drawStats(screen *ebiten.Image, snap tetris.Snapshot) {
	lines := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Rows: %d", snap.Rows),
		fmt.Sprintf("Pieces: %d", snap.Pieces),
		fmt.Sprintf("Speed: %.2fs", snap.FallInterval.Seconds()),
		fmt.Sprintf("Time: %s", snap.Played.Truncate(time.Second)),
	}
	top := previewTop + 6*blockSize
	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, panelLeft+10, top+i*lineHeight, textColor)
	}
}

func drawOverlay(screen *ebiten.Image, title, subtitle string) {
	vector.DrawFilledRect(screen, 0, 0, screenW, screenH, shade, false)
	drawTextCentered(screen, title, screenH/2-10, textColor)
	drawTextCentered(screen, subtitle, screenH/2+12, dimText)
}

// drawTextCentered centers a line of the 7px-wide bitmap font.
func drawTextCentered(screen *ebiten.Image, s string, y int, c color.Color) {
	x := (screenW - len([]rune(s))*7) / 2
	text.Draw(screen, s, basicfont.Face7x13, x, y, c)
}
