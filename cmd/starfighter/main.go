// starfighter is a top-down space-combat arcade game for the terminal.
//
// Usage:
//
//	starfighter play         - Play the game
//	starfighter scores       - Show high scores
//	starfighter serve        - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.starfighter/scores.db)
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
	Use:   "starfighter",
	Short: "Starfighter - top-down space combat in your terminal",
	Long: `Starfighter is a terminal arcade game: steer a ship through a wrapping
arena, fight off drifters, gunners, kamikazes, and bosses, and stack
power-ups while the spawn tiers ramp up.

Available commands:
  play     - Play the game
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  starfighter play
  starfighter play --difficulty hard
  starfighter scores
  starfighter serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starfighter/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
