package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Frame origin correction from piece anchor space to board space.
const (
	anchorOffsetX = -2
	anchorOffsetY = -4
)

// GhostColor is the render color of the landing preview.
const GhostColor = core.ColorGray

// Piece is a live tetromino. The anchor (X, Y) lives in a space shifted by
// (+2, +4) from board cells; Cells applies the correction.
type Piece struct {
	X, Y     int
	Shape    *Shape
	Rotation int
	Color    core.Color
}

// NewPiece creates a piece of the given shape at the anchor with rotation 0.
func NewPiece(shape *Shape, anchor Point) *Piece {
	return &Piece{
		X:     anchor.X,
		Y:     anchor.Y,
		Shape: shape,
		Color: shape.Color,
	}
}

// Clone returns a copy sharing the immutable shape.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// Frame returns the active rotation frame.
func (p *Piece) Frame() Frame {
	return p.Shape.Frame(p.Rotation)
}

// Cells returns the board cells the piece occupies, in row-major frame order.
func (p *Piece) Cells() []Point {
	offsets := p.Frame().Offsets()
	for i, o := range offsets {
		offsets[i] = Point{
			X: p.X + o.X + anchorOffsetX,
			Y: p.Y + o.Y + anchorOffsetY,
		}
	}
	return offsets
}

// Rotate advances to the next frame. The index is kept reduced modulo the
// frame count.
func (p *Piece) Rotate() {
	p.Rotation = (p.Rotation + 1) % p.Shape.FrameCount()
}

// MoveTo re-anchors the piece.
func (p *Piece) MoveTo(anchor Point) {
	p.X = anchor.X
	p.Y = anchor.Y
}

// dropLimit bounds downward searches. Past it every frame row is below the board.
const dropLimit = BoardHeight + FrameSize

// Ghost returns a copy of p pushed down while legal reports true, then
// backed up one row. The copy is tinted with GhostColor; p is untouched.
func Ghost(p *Piece, legal func(*Piece) bool) *Piece {
	ghost := p.Clone()
	ghost.Color = GhostColor
	for legal(ghost) && ghost.Y <= dropLimit {
		ghost.Y++
	}
	ghost.Y--
	return ghost
}
