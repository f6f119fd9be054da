package model

const (
	historySize = 5
	// maxPeriod covers still lifes plus period 2 and 3 oscillators
	maxPeriod = 3
)

// History keeps hashes of recent generations for cycle detection
type History struct {
	hashes []string
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{hashes: make([]string, 0, historySize+1)}
}

// Record adds b to the history and reports whether it repeats one of the
// last maxPeriod generations recorded before it
func (h *History) Record(b *Board) bool {
	hash := b.GetBoardHash()

	stagnant := false
	for i := 1; i <= maxPeriod && i <= len(h.hashes); i++ {
		if h.hashes[len(h.hashes)-i] == hash {
			stagnant = true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	// Keep only the last historySize states
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
	return stagnant
}

// Len returns the number of recorded generations still retained
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = h.hashes[:0]
}
