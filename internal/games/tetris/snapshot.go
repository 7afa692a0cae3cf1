package tetris

import "time"

// StateType is the coarse state a frontend presents.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StatePaused   StateType = "paused"
	StateLost     StateType = "lost"
	StateTooSmall StateType = "window_too_small"
)

// Snapshot is a render-ready, read-only view of a session. Frontends draw
// from it and never touch the session itself.
type Snapshot struct {
	Tick uint64
	// Board holds the locked cells with the active piece painted on top.
	Board Board
	// Ghost is the landing preview of the active piece; nil when disabled.
	Ghost   []Point
	Current Piece
	Next    Piece
	// Held is nil until the first hold.
	Held *Piece

	Score        int
	Rows         int
	Pieces       int
	FallInterval time.Duration
	Played       time.Duration
	Phase        Phase

	Track string
	FPS   float64
	State StateType
}

// Snapshot captures the session. The ghost is derived from the locked grid
// at capture time so it always matches the piece being shown.
func (s *Session) Snapshot() Snapshot {
	grid := RenderGrid(s.locked)
	ghost := Ghost(s.current, LegalOn(&grid))

	board := grid
	var visible []Point
	for _, c := range s.current.Cells() {
		if c.Y > -1 {
			visible = append(visible, c)
		}
	}
	board.Paint(visible, s.current.Color)

	snap := Snapshot{
		Tick:         s.tick,
		Board:        board,
		Ghost:        ghost.Cells(),
		Current:      *s.current,
		Next:         *s.next,
		Score:        s.score,
		Rows:         s.rows,
		Pieces:       s.pieces,
		FallInterval: s.fallInterval,
		Played:       s.played,
		Phase:        s.phase,
		State:        StatePlaying,
	}
	if s.held != nil {
		held := *s.held
		snap.Held = &held
	}
	if s.phase == PhaseLost {
		snap.State = StateLost
	}
	return snap
}
