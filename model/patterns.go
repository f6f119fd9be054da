package model

// Pattern is a small row-major stamp placed onto a board with toroidal wrap
type Pattern [][]bool

var (
	// Block is the 2x2 still life
	Block = Pattern{
		{true, true},
		{true, true},
	}
	// Blinker is the horizontal period 2 oscillator
	Blinker = Pattern{
		{true, true, true},
	}
	// Glider moves one cell down and right every 4 generations
	Glider = Pattern{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
)

// Place stamps p with its top-left corner at (row, col). Dead pattern cells overwrite.
func (b *Board) Place(p Pattern, row, col int) {
	for dy, line := range p {
		for dx, alive := range line {
			b.SetWrapped(row+dy, col+dx, alive)
		}
	}
}
