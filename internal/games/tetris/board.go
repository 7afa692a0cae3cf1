// Package tetris implements the falling-block puzzle rules: board and locked
// cells, the shape catalog, legality checks, row clearing, gravity speed and
// the per-tick session controller.
package tetris

import (
	"sort"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Board dimensions in cells.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Point is a cell coordinate: X is the column, Y is the row (0 at the top).
type Point struct {
	X, Y int
}

// Board is the rendered color matrix, indexed [row][column].
// core.ColorDefault marks an empty cell.
type Board [BoardHeight][BoardWidth]core.Color

// InBounds reports whether (col, row) is a cell of the board.
func InBounds(col, row int) bool {
	return col >= 0 && col < BoardWidth && row >= 0 && row < BoardHeight
}

// At returns the color at (col, row); off-board cells read as empty.
func (b *Board) At(col, row int) core.Color {
	if !InBounds(col, row) {
		return core.ColorDefault
	}
	return b[row][col]
}

// Paint colors the given cells, skipping anything off the board.
func (b *Board) Paint(cells []Point, c core.Color) {
	for _, p := range cells {
		if InBounds(p.X, p.Y) {
			b[p.Y][p.X] = c
		}
	}
}

// RowFull reports whether the row has no empty cell.
func (b *Board) RowFull(row int) bool {
	if row < 0 || row >= BoardHeight {
		return false
	}
	for _, c := range b[row] {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// Locked is the durable set of settled cells and their colors.
// Keys pack (column, row) into one integer, so rows above the board
// (negative) are representable.
type Locked struct {
	cells *intmap.Map[int64, core.Color]
}

// NewLocked creates an empty locked set.
func NewLocked() *Locked {
	return &Locked{cells: intmap.New[int64, core.Color](BoardWidth * BoardHeight)}
}

func packPoint(p Point) int64 {
	return int64(p.Y)<<32 | int64(uint32(int32(p.X)))
}

func unpackPoint(k int64) Point {
	return Point{X: int(int32(uint32(k))), Y: int(k >> 32)}
}

// Set records a settled cell, replacing any previous color.
func (l *Locked) Set(p Point, c core.Color) {
	l.cells.Put(packPoint(p), c)
}

// Get returns the color of a settled cell.
func (l *Locked) Get(p Point) (core.Color, bool) {
	return l.cells.Get(packPoint(p))
}

// Remove deletes the cell if present. Removing an absent cell is a no-op.
func (l *Locked) Remove(p Point) {
	l.cells.Del(packPoint(p))
}

// Len returns the number of settled cells.
func (l *Locked) Len() int {
	return l.cells.Len()
}

// Points returns every settled cell, bottom row first, then by column.
func (l *Locked) Points() []Point {
	points := make([]Point, 0, l.cells.Len())
	l.cells.ForEach(func(k int64, _ core.Color) bool {
		points = append(points, unpackPoint(k))
		return true
	})
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y > points[j].Y
		}
		return points[i].X < points[j].X
	})
	return points
}

// Clone returns an independent copy.
func (l *Locked) Clone() *Locked {
	clone := NewLocked()
	l.cells.ForEach(func(k int64, c core.Color) bool {
		clone.cells.Put(k, c)
		return true
	})
	return clone
}

// RenderGrid builds the color matrix from the locked set.
// Entries outside the board are not drawn.
func RenderGrid(l *Locked) Board {
	var b Board
	l.cells.ForEach(func(k int64, c core.Color) bool {
		p := unpackPoint(k)
		if InBounds(p.X, p.Y) {
			b[p.Y][p.X] = c
		}
		return true
	})
	return b
}
