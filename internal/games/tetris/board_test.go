package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestLockedNegativeCoordinates(t *testing.T) {
	l := NewLocked()
	points := []Point{{X: 0, Y: 0}, {X: -3, Y: -2}, {X: 12, Y: -1}, {X: 9, Y: 19}}
	for i, p := range points {
		l.Set(p, core.Color(i+1))
	}

	if l.Len() != len(points) {
		t.Fatalf("Len = %d, want %d", l.Len(), len(points))
	}
	for i, p := range points {
		c, ok := l.Get(p)
		if !ok || c != core.Color(i+1) {
			t.Errorf("Get(%v) = %v,%v, want %v,true", p, c, ok, core.Color(i+1))
		}
	}

	l.Remove(Point{X: -3, Y: -2})
	l.Remove(Point{X: 4, Y: 4}) // absent: no-op
	if _, ok := l.Get(Point{X: -3, Y: -2}); ok {
		t.Error("removed cell still present")
	}
	if l.Len() != len(points)-1 {
		t.Errorf("Len after remove = %d, want %d", l.Len(), len(points)-1)
	}
}

func TestLockedPointsOrder(t *testing.T) {
	l := NewLocked()
	l.Set(Point{X: 3, Y: 5}, core.ColorRed)
	l.Set(Point{X: 1, Y: 19}, core.ColorRed)
	l.Set(Point{X: 0, Y: 19}, core.ColorRed)
	l.Set(Point{X: 7, Y: -1}, core.ColorRed)

	want := []Point{{X: 0, Y: 19}, {X: 1, Y: 19}, {X: 3, Y: 5}, {X: 7, Y: -1}}
	got := l.Points()
	if len(got) != len(want) {
		t.Fatalf("Points() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Points()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRenderGrid(t *testing.T) {
	l := NewLocked()
	l.Set(Point{X: 2, Y: 3}, core.ColorBlue)
	l.Set(Point{X: 4, Y: -1}, core.ColorRed) // above the board, not drawn

	b := RenderGrid(l)
	if b[3][2] != core.ColorBlue {
		t.Errorf("cell (2,3) = %v, want blue", b[3][2])
	}

	count := 0
	for row := range b {
		for col := range b[row] {
			if !b[row][col].IsEmpty() {
				count++
			}
		}
	}
	if count != 1 {
		t.Errorf("painted cells = %d, want 1", count)
	}
}

func TestLockedClone(t *testing.T) {
	l := NewLocked()
	l.Set(Point{X: 1, Y: 1}, core.ColorRed)
	c := l.Clone()
	c.Set(Point{X: 2, Y: 2}, core.ColorRed)

	if l.Len() != 1 {
		t.Errorf("original modified by clone: Len = %d", l.Len())
	}
	if c.Len() != 2 {
		t.Errorf("clone Len = %d, want 2", c.Len())
	}
}
