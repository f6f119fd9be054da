package utils

import (
	"time"

	"github.com/guptarohit/asciigraph"
)

const maxPopulationHistory = 120

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Restarts             int
	StartTime            time.Time

	populations []float64
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	s.populations = append(s.populations, float64(population))
	if len(s.populations) > maxPopulationHistory {
		s.populations = s.populations[1:]
	}
}

// Populations returns the retained population samples, oldest first
func (s *Stats) Populations() []float64 {
	return s.populations
}

// Runtime returns the wall time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

// PopulationChart plots the retained population samples, or "" with fewer than two
func (s *Stats) PopulationChart() string {
	if len(s.populations) < 2 {
		return ""
	}
	return asciigraph.Plot(s.populations,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("population"),
	)
}
