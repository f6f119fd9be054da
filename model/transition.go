package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/torus-life/rules"
)

// Advance returns the next generation of b as a new board, leaving b untouched
func Advance(b *Board) *Board {
	next := &Board{rows: b.rows, cols: b.cols, cells: make([]bool, len(b.cells))}
	// Shapes match and the boards are distinct, so this cannot fail.
	_ = AdvanceInto(next, b, runtime.NumCPU())
	return next
}

// AdvanceInto writes the next generation of src into dst using up to workers goroutines.
// dst must have the same shape as src and must not be src; every cell of dst is overwritten.
func AdvanceInto(dst, src *Board, workers int) error {
	if dst == src {
		return errors.Wrapf(ErrAliasedBoards, "[AdvanceInto] %dx%d", src.rows, src.cols)
	}
	if !dst.SameShape(src) {
		return errors.Wrapf(ErrShapeMismatch, "[AdvanceInto] src: %dx%d, dst: %dx%d",
			src.rows, src.cols, dst.rows, dst.cols)
	}

	if workers <= 1 || src.rows == 1 {
		advanceRows(dst, src, 0, src.rows)
		return nil
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (src.rows + workers - 1) / workers // Ceiling division
	)

	for i := 0; i < workers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, src.rows)
		)
		if startRow >= src.rows {
			break
		}

		eg.Go(func() error {
			advanceRows(dst, src, startRow, endRow)
			return nil
		})
	}

	return errors.Wrap(eg.Wait(), "[AdvanceInto] parallel advance failed")
}

// advanceRows computes rows [start, end) of the next generation. Bands never overlap in dst.
func advanceRows(dst, src *Board, start, end int) {
	for row := start; row < end; row++ {
		offset := row * src.cols
		for col := 0; col < src.cols; col++ {
			dst.cells[offset+col] = rules.ApplyConwayRules(src.LiveNeighbors(row, col), src.cells[offset+col])
		}
	}
}
