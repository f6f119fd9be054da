package model

import "github.com/pkg/errors"

// DoubleBuffer holds the current generation and a scratch board of the same shape.
// Step computes into the scratch board and swaps, so Current never exposes a partial generation.
type DoubleBuffer struct {
	front   *Board
	back    *Board
	workers int
}

// NewDoubleBuffer takes ownership of initial as the current generation
func NewDoubleBuffer(initial *Board, workers int) *DoubleBuffer {
	return &DoubleBuffer{
		front:   initial,
		back:    &Board{rows: initial.rows, cols: initial.cols, cells: make([]bool, len(initial.cells))},
		workers: workers,
	}
}

// Current returns the completed generation. It is only valid until the next Step or Load.
func (d *DoubleBuffer) Current() *Board {
	return d.front
}

// Step advances the current generation by one tick
func (d *DoubleBuffer) Step() error {
	if err := AdvanceInto(d.back, d.front, d.workers); err != nil {
		return errors.Wrap(err, "[DoubleBuffer.Step] failed to advance")
	}
	d.front, d.back = d.back, d.front
	return nil
}

// Load copies b into the current generation
func (d *DoubleBuffer) Load(b *Board) error {
	if !d.front.SameShape(b) {
		return errors.Wrapf(ErrShapeMismatch, "[DoubleBuffer.Load] have %dx%d, got %dx%d",
			d.front.rows, d.front.cols, b.rows, b.cols)
	}
	copy(d.front.cells, b.cells)
	return nil
}
