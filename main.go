package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/torus-life/tui"
	"github.com/sheikhrachel/torus-life/utils"
)

var version = "dev"

var (
	configFile  string
	size        int
	rows        int
	cols        int
	seed        int64
	generations int
	frameRate   time.Duration
	workers     int
	autoRestart bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "torus-life",
		Short:        "Conway's Game of Life on a toroidal grid",
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path (json or yaml)")
	flags.IntVar(&size, "size", utils.DefaultGridSize, "square grid size, sets both rows and cols")
	flags.IntVar(&rows, "rows", utils.DefaultGridSize, "grid rows")
	flags.IntVar(&cols, "cols", utils.DefaultGridSize, "grid columns")
	flags.Int64Var(&seed, "seed", 0, "random seed, 0 uses the process-wide source")
	flags.IntVar(&generations, "generations", 0, "stop after this many generations, 0 runs forever")
	flags.DurationVar(&frameRate, "frame-rate", utils.DefaultFrameRate, "delay between generations")
	flags.IntVar(&workers, "workers", 1, "goroutines per generation, 0 uses one per CPU")
	flags.BoolVar(&autoRestart, "auto-restart", false, "reseed on extinction or stagnation")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the simulation in an interactive view",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, versionCmd)
	return rootCmd
}

func runSimulation(cmd *cobra.Command, args []string) error {
	config, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sim, renderer, stats, err := initializeGame(config)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	displayGameInfo(out, config, sim)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lastFrameTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\n🛑 Shutting down gracefully...")
			displayFinalStats(out, stats)
			return nil
		default:
		}

		frameStart := time.Now()
		renderer.Clear(out)

		livingCells, density, status := updateGameState(sim, lastFrameTime, stats)
		lastFrameTime = frameStart

		if config.ShowStats {
			displayGameStatus(out, sim, livingCells, density, status, stats)
		}
		if err := renderer.Display(out, sim.Board()); err != nil {
			return errors.Wrap(err, "[runSimulation] failed to render board")
		}

		if config.MaxGenerations > 0 && sim.Generation() >= config.MaxGenerations {
			fmt.Fprintf(out, "\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			displayFinalStats(out, stats)
			return nil
		}

		if reason := sim.RestartReason(config.StagnationThreshold); reason != "" && config.AutoRestart {
			fmt.Fprintf(out, "🔄 Restarting due to %s...\n", reason)
			sim.Reseed()
			stats.Restarts++
		}

		if err := sim.Step(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
		case <-time.After(config.FrameRate.Std()):
		}
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	config, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sim, renderer, stats, err := initializeGame(config)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(tui.New(sim, renderer, stats, config), tea.WithAltScreen()).Run()
	if err != nil {
		return errors.Wrap(err, "[runLive] interactive view failed")
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}

	displayFinalStats(cmd.OutOrStdout(), stats)
	return nil
}
