package tetris

// ClearRows removes every full row from the locked set and drops the cells
// above them. It returns the number of rows removed.
//
// Rows are scanned bottom to top. A remaining cell moves down by the number of
// cleared rows that were below it; cells are re-keyed bottom first, so a move
// never lands on a cell that has not been processed yet.
func ClearRows(l *Locked) int {
	grid := RenderGrid(l)

	var full []int
	for row := BoardHeight - 1; row >= 0; row-- {
		if !grid.RowFull(row) {
			continue
		}
		full = append(full, row)
		for col := 0; col < BoardWidth; col++ {
			l.Remove(Point{X: col, Y: row})
		}
	}
	if len(full) == 0 {
		return 0
	}

	for _, p := range l.Points() {
		shift := 0
		for _, row := range full {
			if row > p.Y {
				shift++
			}
		}
		if shift == 0 {
			continue
		}
		c, _ := l.Get(p)
		l.Remove(p)
		l.Set(Point{X: p.X, Y: p.Y + shift}, c)
	}

	return len(full)
}
