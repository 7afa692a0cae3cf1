package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Terminal layout. Each board cell is two characters wide so blocks look
// square.
const (
	cellWidth  = 2
	panelW     = 14
	panelH     = 6
	layoutGap  = 2
	boardBoxW  = BoardWidth*cellWidth + 2
	boardBoxH  = BoardHeight + 2
	layoutTop  = 1
	statsTop   = layoutTop + panelH + 1
	blockGlyph = '█'
	ghostGlyph = '░'
	emptyGlyph = '·'

	requiredWidth  = panelW + layoutGap + boardBoxW + layoutGap + panelW
	requiredHeight = layoutTop + boardBoxH + 1
)

var controlsHint = []string{
	"←/→  move",
	"↑    rotate",
	"↓    soft drop",
	"spc  hard drop",
	"c    hold",
	"p    pause",
	"r    restart",
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	if snap.State == StateTooSmall {
		renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", requiredWidth, requiredHeight))
		return
	}

	left := (dst.Width() - requiredWidth) / 2
	holdBox := core.NewRect(left, layoutTop, panelW, panelH)
	boardBox := core.NewRect(holdBox.Right()+layoutGap, layoutTop, boardBoxW, boardBoxH)
	nextBox := core.NewRect(boardBox.Right()+layoutGap, layoutTop, panelW, panelH)

	dst.DrawTextCentered(0, "T E T R I S")
	if g.cfg.Display.ShowFPS {
		dst.DrawTextColor(0, 0, fmt.Sprintf("FPS %.0f", snap.FPS), core.ColorGray)
	}

	renderBoard(dst, boardBox, snap)
	renderPanel(dst, holdBox, "HOLD", snap.Held)
	next := snap.Next
	renderPanel(dst, nextBox, "NEXT", &next)
	renderStats(dst, nextBox.X, statsTop, snap)

	for i, line := range controlsHint {
		dst.DrawTextColor(holdBox.X, statsTop+i, line, core.ColorGray)
	}

	if snap.Track != "" {
		dst.DrawTextCentered(dst.Height()-1, "♪ Now Playing: "+snap.Track)
	}

	// Draw overlays
	switch snap.State {
	case StateLost:
		renderOverlay(dst, "You Lost", fmt.Sprintf("Score: %d", snap.Score))
	case StatePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderBoard draws the well border, settled cells, the ghost and the active piece.
func renderBoard(dst *core.Screen, box core.Rect, snap Snapshot) {
	dst.DrawBox(box, core.ColorWhite)
	inner := box.Inner()

	ghost := make(map[Point]bool, len(snap.Ghost))
	for _, p := range snap.Ghost {
		ghost[p] = true
	}

	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			x := inner.X + col*cellWidth
			y := inner.Y + row
			c := snap.Board[row][col]
			switch {
			case !c.IsEmpty():
				dst.SetCell(x, y, blockGlyph, c)
				dst.SetCell(x+1, y, blockGlyph, c)
			case ghost[Point{X: col, Y: row}]:
				dst.SetCell(x, y, ghostGlyph, GhostColor)
				dst.SetCell(x+1, y, ghostGlyph, GhostColor)
			default:
				dst.SetCell(x+1, y, emptyGlyph, core.ColorGray)
			}
		}
	}
}

// renderPanel draws a labelled box with a piece preview trimmed to its cells.
func renderPanel(dst *core.Screen, box core.Rect, label string, p *Piece) {
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawText(box.X+2, box.Y, " "+label+" ")
	if p == nil {
		return
	}

	offsets := p.Frame().Offsets()
	minX, minY := FrameSize, FrameSize
	maxX, maxY := 0, 0
	for _, o := range offsets {
		minX, maxX = min(minX, o.X), max(maxX, o.X)
		minY, maxY = min(minY, o.Y), max(maxY, o.Y)
	}
	inner := box.Inner()
	w := (maxX - minX + 1) * cellWidth
	h := maxY - minY + 1
	ox := inner.X + (inner.W-w)/2
	oy := inner.Y + (inner.H-h)/2
	for _, o := range offsets {
		x := ox + (o.X-minX)*cellWidth
		y := oy + o.Y - minY
		dst.SetCell(x, y, blockGlyph, p.Color)
		dst.SetCell(x+1, y, blockGlyph, p.Color)
	}
}

// renderStats draws the score column.
func renderStats(dst *core.Screen, x, y int, snap Snapshot) {
	played := snap.Played.Truncate(time.Second)
	lines := []string{
		fmt.Sprintf("Score  %d", snap.Score),
		fmt.Sprintf("Rows   %d", snap.Rows),
		fmt.Sprintf("Pieces %d", snap.Pieces),
		fmt.Sprintf("Speed  %.2fs", snap.FallInterval.Seconds()),
		fmt.Sprintf("Time   %s", played),
	}
	for i, line := range lines {
		dst.DrawText(x, y+i, line)
	}
}

// renderOverlay draws a centered message box.
func renderOverlay(dst *core.Screen, title, subtitle string) {
	w := max(len([]rune(title)), len([]rune(subtitle))) + 6
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawText(box.X+(w-len([]rune(title)))/2, box.Y+1, title)
	dst.DrawTextColor(box.X+(w-len([]rune(subtitle)))/2, box.Y+3, subtitle, core.ColorGray)
}
