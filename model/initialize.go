package model

import (
	"math/rand"

	"github.com/pkg/errors"
)

// RandomSource is the subset of *rand.Rand used to seed boards
type RandomSource interface {
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

// GlobalSource draws from the process-wide math/rand generator
var GlobalSource RandomSource = globalSource{}

// NewSeededSource returns a deterministic source for the given seed
func NewSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// Initialize creates a rows x cols board where every cell is alive with probability 1/2.
// A nil rng draws from GlobalSource.
func Initialize(rows, cols int, rng RandomSource) (*Board, error) {
	b, err := NewBoard(rows, cols)
	if err != nil {
		return nil, errors.Wrap(err, "[Initialize] failed to allocate board")
	}
	b.Randomize(rng)
	return b, nil
}

// Randomize redraws every cell with an unbiased coin flip
func (b *Board) Randomize(rng RandomSource) {
	if rng == nil {
		rng = GlobalSource
	}
	for i := range b.cells {
		b.cells[i] = rng.Intn(2) == 1
	}
}
