package model

import (
	"github.com/pkg/errors"
)

// Simulation owns the single current board and advances it one generation per Step
type Simulation struct {
	buffer     *DoubleBuffer
	rng        RandomSource
	history    *History
	generation int
	stagnant   int
}

// NewSimulation seeds a rows x cols board from rng (nil means GlobalSource)
// and advances it with up to workers goroutines per generation
func NewSimulation(rows, cols int, rng RandomSource, workers int) (*Simulation, error) {
	if rng == nil {
		rng = GlobalSource
	}
	board, err := Initialize(rows, cols, rng)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSimulation] failed to initialize board")
	}
	s := &Simulation{
		buffer:  NewDoubleBuffer(board, workers),
		rng:     rng,
		history: NewHistory(),
	}
	s.history.Record(board)
	return s, nil
}

// Board returns a read-only view of the current generation, valid until the next Step or Reseed
func (s *Simulation) Board() *Board {
	return s.buffer.Current()
}

// Generation returns the number of Steps taken since construction
func (s *Simulation) Generation() int {
	return s.generation
}

// StagnantCount returns how many consecutive generations repeated a recent one
func (s *Simulation) StagnantCount() int {
	return s.stagnant
}

// Step advances the board by one generation
func (s *Simulation) Step() error {
	if err := s.buffer.Step(); err != nil {
		return errors.Wrapf(err, "[Simulation.Step] generation: %d", s.generation)
	}
	s.generation++

	if s.history.Record(s.buffer.Current()) {
		s.stagnant++
	} else {
		s.stagnant = 0
	}
	return nil
}

// Load replaces the current generation with a copy of b and clears cycle history
func (s *Simulation) Load(b *Board) error {
	if err := s.buffer.Load(b); err != nil {
		return errors.Wrap(err, "[Simulation.Load] failed to load board")
	}
	s.history.Reset()
	s.history.Record(s.buffer.Current())
	s.stagnant = 0
	return nil
}

// Reseed redraws the current board at random and clears cycle history.
// The generation counter keeps running.
func (s *Simulation) Reseed() {
	s.buffer.Current().Randomize(s.rng)
	s.history.Reset()
	s.history.Record(s.buffer.Current())
	s.stagnant = 0
}

// RestartReason reports why the driver should reseed, or "" to keep going.
// A threshold <= 0 disables the stagnation check.
func (s *Simulation) RestartReason(stagnationThreshold int) string {
	if s.buffer.Current().CountLivingCells() == 0 {
		return "extinction"
	}
	if stagnationThreshold > 0 && s.stagnant >= stagnationThreshold {
		return "stagnation detected"
	}
	return ""
}
