// runner is Neon Rush, a 3D endless runner played in the terminal.
//
// Usage:
//
//	runner play              - Play the game
//	runner scores            - Show the best runs
//	runner serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set render frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.neon-runner/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Neon Rush - a neon endless runner in your terminal",
	Long: `Neon Rush is a terminal endless runner: dodge the blocks racing
toward you, grab power-ups and chase the high score.

Available commands:
  play     - Play the game
  scores   - View the best runs
  serve    - Start SSH server for remote play

Examples:
  runner play
  runner play --seed 42
  runner scores
  runner serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neon-runner/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
