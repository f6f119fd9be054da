package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

// resolveConfig loads the config file, if any, and applies explicitly set flags on top
func resolveConfig(cmd *cobra.Command) (utils.Config, error) {
	config := utils.DefaultConfig()
	if configFile != "" {
		loaded, err := utils.LoadConfig(configFile)
		switch {
		case errors.Is(err, os.ErrNotExist):
			fmt.Fprintf(cmd.OutOrStdout(), "Using default configuration (%s not found)\n", configFile)
		case err != nil:
			return config, err
		default:
			config = loaded
		}
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		config.Rows, config.Cols = size, size
	}
	if flags.Changed("rows") {
		config.Rows = rows
	}
	if flags.Changed("cols") {
		config.Cols = cols
	}
	if flags.Changed("seed") {
		config.Seed = seed
	}
	if flags.Changed("generations") {
		config.MaxGenerations = generations
	}
	if flags.Changed("frame-rate") {
		config.FrameRate = utils.Duration(frameRate)
	}
	if flags.Changed("workers") {
		config.Workers = workers
	}
	if flags.Changed("auto-restart") {
		config.AutoRestart = autoRestart
	}

	if err := config.Validate(); err != nil {
		return config, errors.Wrap(err, "[resolveConfig] bad flags")
	}
	return config, nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Simulation,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	rng := model.GlobalSource
	if config.Seed != 0 {
		rng = model.NewSeededSource(config.Seed)
	}

	workerCount := config.Workers
	if workerCount == 0 {
		workerCount = runtime.NumCPU()
	}

	sim, err := model.NewSimulation(config.Rows, config.Cols, rng, workerCount)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to create simulation")
	}

	renderer := model.NewTerminalRenderer(config.AliveColor, config.DeadColor)
	return sim, renderer, utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, sim *model.Simulation) {
	seedInfo := "process-wide"
	if config.Seed != 0 {
		seedInfo = fmt.Sprintf("%d", config.Seed)
	}
	workerInfo := "per CPU"
	if config.Workers > 0 {
		workerInfo = fmt.Sprintf("%d", config.Workers)
	}
	fmt.Fprintf(w, "Grid: %dx%d torus | Seed: %s | Workers: %s | Auto restart: %v\n",
		config.Rows, config.Cols, seedInfo, workerInfo, config.AutoRestart)
	fmt.Fprintf(w, "Initial living cells: %d\n", sim.Board().CountLivingCells())
	fmt.Fprintln(w, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(w)
}

// updateGameState records the current generation and returns status information
func updateGameState(sim *model.Simulation, lastFrameTime time.Time, stats *utils.Stats) (int, float64, string) {
	board := sim.Board()
	livingCells := board.CountLivingCells()
	density := float64(livingCells) / float64(board.Rows()*board.Cols()) * 100

	stats.Update(sim.Generation(), livingCells, time.Since(lastFrameTime))

	status := "Active"
	if sim.StagnantCount() > 0 {
		status = fmt.Sprintf("Stagnant (%d)", sim.StagnantCount())
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status
}

// displayGameStatus shows the current game status
func displayGameStatus(
	w io.Writer,
	sim *model.Simulation,
	livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
) {
	fmt.Fprintf(w, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		sim.Generation(), livingCells, density, status)
	fmt.Fprintf(w, "Performance: %.1f gen/sec | Avg Pop: %.1f | Restarts: %d | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Restarts, stats.Runtime().Seconds())
	fmt.Fprintln(w)
}

// displayFinalStats prints the shutdown summary
func displayFinalStats(w io.Writer, stats *utils.Stats) {
	fmt.Fprintf(w, "Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Fprintf(w, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
	if chart := stats.PopulationChart(); chart != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, chart)
	}
}
