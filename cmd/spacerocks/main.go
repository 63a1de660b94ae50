// spacerocks is a terminal rendition of the classic rock-blasting arcade game.
//
// Usage:
//
//	spacerocks list              - List available games
//	spacerocks play [game]       - Play a game
//	spacerocks replay [id]       - Verify or watch a recorded run
//	spacerocks serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.spacerocks/replays.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/spacerocks/spacerocks/internal/games/rocks"
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
	Use:   "spacerocks",
	Short: "Space Rocks - blast asteroids in your terminal",
	Long: `Space Rocks is a terminal shooter: steer a ship across a wrapping
playfield, break rocks into fragments, and dodge alien saucers.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  replay   - Verify or watch a recorded run
  serve    - Start SSH server for remote play

Examples:
  spacerocks play
  spacerocks play --difficulty hard --seed 42
  spacerocks replay
  spacerocks replay 3 --watch
  spacerocks serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.spacerocks/replays.db", "Path to replay database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}
