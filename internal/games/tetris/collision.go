package tetris

// IsLegal reports whether the piece can occupy its current placement.
// Cells above the board (row <= -1) are exempt from every check, which lets
// pieces spawn and rotate partly above the top. Any other cell must sit on an
// empty cell inside the board.
func IsLegal(p *Piece, b *Board) bool {
	for _, c := range p.Cells() {
		if c.Y <= -1 {
			continue
		}
		if !InBounds(c.X, c.Y) {
			return false
		}
		if !b[c.Y][c.X].IsEmpty() {
			return false
		}
	}
	return true
}

// LegalOn binds IsLegal to a board, for use with Ghost.
func LegalOn(b *Board) func(*Piece) bool {
	return func(p *Piece) bool {
		return IsLegal(p, b)
	}
}

// HasLost reports whether any cell reached the top row or above it.
func HasLost(cells []Point) bool {
	for _, c := range cells {
		if c.Y < 1 {
			return true
		}
	}
	return false
}
