package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Board is a fixed-size rectangular grid of cells stored as one flat buffer.
// Cell (row, col) lives at cells[row*cols+col], so every row has the same length by construction.
type Board struct {
	rows  int
	cols  int
	cells []bool
}

// NewBoard creates an all-dead board with the specified dimensions
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewBoard] rows: %d, cols: %d", rows, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}, nil
}

// FromRows builds a board from a row-major literal, copying the input
func FromRows(grid [][]bool) (*Board, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[FromRows] empty grid")
	}
	b, err := NewBoard(len(grid), len(grid[0]))
	if err != nil {
		return nil, err
	}
	for row, line := range grid {
		if len(line) != b.cols {
			return nil, errors.Wrapf(ErrShapeViolation,
				"[FromRows] row %d has %d cells, want %d", row, len(line), b.cols)
		}
		copy(b.cells[row*b.cols:(row+1)*b.cols], line)
	}
	return b, nil
}

// MustFromRows is FromRows for fixtures known to be well-formed
func MustFromRows(grid [][]bool) *Board {
	b, err := FromRows(grid)
	if err != nil {
		panic(err)
	}
	return b
}

// Rows returns the number of rows of the board
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns of the board
func (b *Board) Cols() int {
	return b.cols
}

// Alive reports whether the cell at (row, col) is alive.
// Out of range coordinates are reported dead; use LiveNeighbors for wrapped lookups.
func (b *Board) Alive(row, col int) bool {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return false
	}
	return b.cells[row*b.cols+col]
}

// Set sets a cell to alive (true) or dead (false). Out of range coordinates are ignored.
func (b *Board) Set(row, col int, alive bool) {
	if row >= 0 && row < b.rows && col >= 0 && col < b.cols {
		b.cells[row*b.cols+col] = alive
	}
}

// SetWrapped sets a cell after wrapping both coordinates onto the torus
func (b *Board) SetWrapped(row, col int, alive bool) {
	b.cells[wrap(row, b.rows)*b.cols+wrap(col, b.cols)] = alive
}

// Clear kills every cell
func (b *Board) Clear() {
	clear(b.cells)
}

// SameShape reports whether o has the same dimensions as b
func (b *Board) SameShape(o *Board) bool {
	return b.rows == o.rows && b.cols == o.cols
}

// Equal reports whether both boards have the same shape and cell states
func (b *Board) Equal(o *Board) bool {
	if o == nil || !b.SameShape(o) {
		return false
	}
	for i, alive := range b.cells {
		if o.cells[i] != alive {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	cells := make([]bool, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}

// Snapshot returns a row-major copy of the cells for callers that want plain slices
func (b *Board) Snapshot() [][]bool {
	out := make([][]bool, b.rows)
	for row := 0; row < b.rows; row++ {
		out[row] = make([]bool, b.cols)
		copy(out[row], b.cells[row*b.cols:(row+1)*b.cols])
	}
	return out
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for _, alive := range b.cells {
		if alive {
			count++
		}
	}
	return
}

// GetBoardHash returns an MD5 hash of the board shape and cell states
func (b *Board) GetBoardHash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", b.rows, b.cols)
	buf := make([]byte, len(b.cells))
	for i, alive := range b.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
