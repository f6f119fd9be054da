package model

// wrap maps v onto [0, n) so that -1 becomes n-1 and n becomes 0
func wrap(v, n int) int {
	return ((v % n) + n) % n
}

// LiveNeighbors counts the living cells among the 8 toroidal neighbors of (row, col).
//
// Neighbor positions wrap in both axes, so on boards narrower than 3 cells in an axis
// several positions alias the same cell, or the cell itself. A lone living cell on a
// 1x1 board therefore counts itself 8 times.
func (b *Board) LiveNeighbors(row, col int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		base := wrap(row+dy, b.rows) * b.cols
		for dx := -1; dx <= 1; dx++ {
			if dy == 0 && dx == 0 {
				continue
			}
			if b.cells[base+wrap(col+dx, b.cols)] {
				count++
			}
		}
	}
	return count
}
