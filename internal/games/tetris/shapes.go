package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// FrameSize is the side of the character grid each rotation frame uses.
const FrameSize = 5

// frameMarker denotes an occupied cell inside a frame.
const frameMarker = '0'

// Frame is one rotation of a shape, drawn on a 5x5 character grid.
type Frame [FrameSize]string

// Shape is an immutable catalog entry: its rotation frames and color.
type Shape struct {
	Name   string
	Frames []Frame
	Color  core.Color
}

// The seven tetrominoes.
var (
	ShapeS = &Shape{Name: "S", Color: core.ColorGreen, Frames: []Frame{
		{".....", ".....", "..00.", ".00..", "....."},
		{".....", "..0..", "..00.", "...0.", "....."},
	}}
	ShapeZ = &Shape{Name: "Z", Color: core.ColorRed, Frames: []Frame{
		{".....", ".....", ".00..", "..00.", "....."},
		{".....", "..0..", ".00..", ".0...", "....."},
	}}
	ShapeI = &Shape{Name: "I", Color: core.ColorCyan, Frames: []Frame{
		{"..0..", "..0..", "..0..", "..0..", "....."},
		{".....", "0000.", ".....", ".....", "....."},
	}}
	ShapeO = &Shape{Name: "O", Color: core.ColorYellow, Frames: []Frame{
		{".....", ".....", ".00..", ".00..", "....."},
	}}
	ShapeJ = &Shape{Name: "J", Color: core.ColorOrange, Frames: []Frame{
		{".....", ".0...", ".000.", ".....", "....."},
		{".....", "..00.", "..0..", "..0..", "....."},
		{".....", ".....", ".000.", "...0.", "....."},
		{".....", "..0..", "..0..", ".00..", "....."},
	}}
	ShapeL = &Shape{Name: "L", Color: core.ColorBlue, Frames: []Frame{
		{".....", "...0.", ".000.", ".....", "....."},
		{".....", "..0..", "..0..", "..00.", "....."},
		{".....", ".....", ".000.", ".0...", "....."},
		{".....", ".00..", "..0..", "..0..", "....."},
	}}
	ShapeT = &Shape{Name: "T", Color: core.ColorMagenta, Frames: []Frame{
		{".....", "..0..", ".000.", ".....", "....."},
		{".....", "..0..", "..00.", "..0..", "....."},
		{".....", ".....", ".000.", "..0..", "....."},
		{".....", "..0..", ".00..", "..0..", "....."},
	}}
)

// Catalog lists every shape in generation order.
var Catalog = []*Shape{ShapeS, ShapeZ, ShapeI, ShapeO, ShapeJ, ShapeL, ShapeT}

// FrameCount returns the number of rotation frames.
func (s *Shape) FrameCount() int {
	return len(s.Frames)
}

// Frame returns the frame for a rotation index, wrapping around.
func (s *Shape) Frame(rotation int) Frame {
	n := len(s.Frames)
	return s.Frames[((rotation%n)+n)%n]
}

// Offsets returns the marker cells of a frame relative to the frame origin,
// in row-major order.
func (f Frame) Offsets() []Point {
	offsets := make([]Point, 0, 4)
	for row, line := range f {
		for col, ch := range line {
			if ch == frameMarker {
				offsets = append(offsets, Point{X: col, Y: row})
			}
		}
	}
	return offsets
}

// RandomPiece picks one of the seven shapes uniformly and anchors it at spawn
// with rotation 0.
func RandomPiece(rng *rand.Rand, spawn Point) *Piece {
	shape := Catalog[rng.Intn(len(Catalog))]
	return NewPiece(shape, spawn)
}
