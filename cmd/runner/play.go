package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/platform/tui"
	"github.com/vovakirdan/neon-runner/internal/sim"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

var (
	flagConfig string
	flagDebug  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Neon Rush",
	Long: `Start a run.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Space/Up   - Jump
  Enter      - Start
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  runner play
  runner play --seed 42
  runner play --config ./my-runner.yaml
  runner play --debug 2> events.log`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log simulation events to stderr")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size, falling back to a classic default
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var sink sim.Sink
	if flagDebug {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "runner",
			Level:           log.DebugLevel,
		})
		sink = tui.NewLogSink(logger)
	}

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Store:  store,
		Sink:   sink,
		Seed:   flagSeed,
		FPS:    flagFPS,
		Width:  width,
		Height: height,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
