package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestIsLegal(t *testing.T) {
	var b Board
	b[19][4] = core.ColorRed

	iFlat := func(x, y int) *Piece {
		p := NewPiece(ShapeI, Point{X: x, Y: y})
		p.Rotation = 1
		return p
	}

	tests := []struct {
		name  string
		piece *Piece
		want  bool
	}{
		{"spawn on empty board", NewPiece(ShapeT, Point{X: 5, Y: 0}), true},
		{"resting on floor", NewPiece(ShapeO, Point{X: 8, Y: 20}), true},
		{"below floor", NewPiece(ShapeO, Point{X: 8, Y: 21}), false},
		{"overlaps locked cell", NewPiece(ShapeO, Point{X: 5, Y: 20}), false},
		{"left wall", iFlat(1, 10), false},
		{"flush with left wall", iFlat(2, 10), true},
		{"right wall", iFlat(9, 10), false},
		{"flush with right wall", iFlat(8, 10), true},
		// rows <= -1 skip every check, columns included
		{"out of columns above board", iFlat(0, 2), true},
		{"out of columns on top row", iFlat(0, 3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLegal(tt.piece, &b); got != tt.want {
				t.Errorf("IsLegal = %v, want %v (cells %v)", got, tt.want, tt.piece.Cells())
			}
		})
	}
}

func TestHasLost(t *testing.T) {
	tests := []struct {
		name  string
		cells []Point
		want  bool
	}{
		{"empty", nil, false},
		{"row 1 is safe", []Point{{X: 3, Y: 1}, {X: 3, Y: 19}}, false},
		{"row 0", []Point{{X: 3, Y: 0}}, true},
		{"above board", []Point{{X: 3, Y: -2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasLost(tt.cells); got != tt.want {
				t.Errorf("HasLost(%v) = %v, want %v", tt.cells, got, tt.want)
			}
		})
	}
}
