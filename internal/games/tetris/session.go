package tetris

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Phase is the lifecycle stage of the active piece.
type Phase int

const (
	// PhaseFalling: the last gravity step moved the piece (or it is airborne
	// at the top).
	PhaseFalling Phase = iota
	// PhaseLockDelay: gravity was blocked and the lock timer is running.
	PhaseLockDelay
	// PhaseLost: a settled cell reached the top. Terminal.
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseFalling:
		return "falling"
	case PhaseLockDelay:
		return "lock_delay"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Outcome reports what happened during one Step.
type Outcome struct {
	Settled bool
	Cleared int
	Lost    bool
}

// Session is one game from spawn to loss. It owns all mutable game state and
// advances only through Step.
type Session struct {
	rules  Rules
	rng    *rand.Rand
	logger *log.Logger

	locked *Locked
	board  Board

	current *Piece
	next    *Piece
	held    *Piece
	// holdUsed blocks a second hold until the current piece settles.
	holdUsed bool

	fallInterval time.Duration
	fallElapsed  time.Duration
	lockElapsed  time.Duration
	lockResets   int

	phase  Phase
	tick   uint64
	played time.Duration
	score  int
	rows   int
	pieces int
}

// NewSession starts a game: the locked set is empty and both the current and
// next pieces are drawn from rng. A nil logger discards output.
func NewSession(rules Rules, rng *rand.Rand, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rules.SoftDropMultiplier < 1 {
		rules.SoftDropMultiplier = 1
	}
	s := &Session{
		rules:        rules,
		rng:          rng,
		logger:       logger,
		locked:       NewLocked(),
		fallInterval: rules.Speed.Interval(0),
	}
	s.current = s.spawn()
	s.next = s.spawn()
	s.board = RenderGrid(s.locked)
	return s
}

func (s *Session) spawn() *Piece {
	return RandomPiece(s.rng, s.rules.Spawn)
}

// Step advances the session by one tick of elapsed real time.
//
// Order within a tick: rebuild the board from the locked set, run gravity,
// apply input events in arrival order, then settle the piece if gravity or a
// hard drop asked for it, and finally test for loss.
func (s *Session) Step(in core.InputFrame, elapsed time.Duration) Outcome {
	if s.phase == PhaseLost {
		return Outcome{Lost: true}
	}
	s.tick++
	s.played += elapsed

	s.board = RenderGrid(s.locked)
	settle := s.gravity(in.Held(core.ActionSoftDrop), elapsed)

	for _, action := range in.Events {
		switch action {
		case core.ActionLeft:
			s.shift(-1)
		case core.ActionRight:
			s.shift(1)
		case core.ActionRotate:
			s.rotate()
		case core.ActionHardDrop:
			s.hardDrop()
			settle = true
		case core.ActionHold:
			s.hold()
		}
	}

	var out Outcome
	if settle {
		out.Settled = true
		out.Cleared = s.settle()
	}

	if HasLost(s.locked.Points()) {
		s.phase = PhaseLost
		out.Lost = true
		s.logger.Info("game over", "score", s.score, "rows", s.rows, "pieces", s.pieces)
	}
	return out
}

// gravity accumulates elapsed time and moves the piece down one row once the
// interval is reached. It reports whether the lock delay ran out.
func (s *Session) gravity(softDrop bool, elapsed time.Duration) bool {
	interval := s.fallInterval
	if softDrop {
		interval /= time.Duration(s.rules.SoftDropMultiplier)
	}

	s.fallElapsed += elapsed
	if s.fallElapsed < interval {
		return false
	}
	s.fallElapsed = 0

	s.current.Y++
	if !IsLegal(s.current, &s.board) && s.current.Y > 0 {
		s.current.Y--
		s.phase = PhaseLockDelay
		if s.lockElapsed >= s.rules.LockDelay || s.lockResets >= s.rules.LockResets {
			return true
		}
		s.lockElapsed += elapsed
		return false
	}

	// Moved, or still at the top where blocked gravity is ignored.
	s.phase = PhaseFalling
	s.lockElapsed = 0
	s.lockResets = 0
	return false
}

// shift moves the piece sideways by dx columns if the result is legal.
func (s *Session) shift(dx int) {
	s.current.X += dx
	if !IsLegal(s.current, &s.board) {
		s.current.X -= dx
		return
	}
	s.resetLock()
}

// rotate advances the piece one frame if the result is legal.
func (s *Session) rotate() {
	prev := s.current.Rotation
	s.current.Rotate()
	if !IsLegal(s.current, &s.board) {
		s.current.Rotation = prev
		return
	}
	s.resetLock()
}

// resetLock restarts the lock timer after a successful move and counts the reset.
func (s *Session) resetLock() {
	s.lockElapsed = 0
	s.lockResets++
}

// hardDrop pushes the piece down while legal and backs it up one row.
func (s *Session) hardDrop() {
	for IsLegal(s.current, &s.board) && s.current.Y <= dropLimit {
		s.current.Y++
	}
	s.current.Y--
}

// hold stashes the current piece, once per piece.
func (s *Session) hold() {
	if s.holdUsed {
		return
	}
	if s.held == nil {
		s.held = s.current
		s.current = s.next
		s.next = s.spawn()
	} else {
		s.held, s.current = s.current, s.held
	}
	s.current.MoveTo(s.rules.Spawn)
	s.holdUsed = true
}

// settle locks every cell of the current piece, promotes the next piece and
// clears full rows. It returns the number of rows cleared.
func (s *Session) settle() int {
	for _, c := range s.current.Cells() {
		s.locked.Set(c, s.current.Color)
	}
	s.pieces++
	s.logger.Debug("piece settled", "shape", s.current.Shape.Name, "x", s.current.X, "y", s.current.Y)

	s.current = s.next
	s.next = s.spawn()
	s.holdUsed = false
	s.phase = PhaseFalling
	s.lockElapsed = 0
	s.lockResets = 0

	cleared := ClearRows(s.locked)
	if cleared > 0 {
		s.rows += cleared
		s.score += s.rules.PointsPerRow * cleared
		s.fallInterval = s.rules.Speed.Interval(s.score)
		s.logger.Debug("rows cleared", "rows", cleared, "score", s.score, "interval", s.fallInterval)
	}
	s.board = RenderGrid(s.locked)
	return cleared
}

// Current returns the active piece.
func (s *Session) Current() *Piece { return s.current }

// Next returns the upcoming piece.
func (s *Session) Next() *Piece { return s.next }

// Held returns the stashed piece, or nil.
func (s *Session) Held() *Piece { return s.held }

// Locked returns the settled cells.
func (s *Session) Locked() *Locked { return s.locked }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Phase returns the lifecycle stage.
func (s *Session) Phase() Phase { return s.phase }

// Lost reports whether the session has ended.
func (s *Session) Lost() bool { return s.phase == PhaseLost }

// FallInterval returns the current gravity interval.
func (s *Session) FallInterval() time.Duration { return s.fallInterval }
