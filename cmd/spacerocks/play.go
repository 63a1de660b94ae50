package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spacerocks/spacerocks/internal/audio"
	"github.com/spacerocks/spacerocks/internal/core"
	"github.com/spacerocks/spacerocks/internal/games/rocks"
	"github.com/spacerocks/spacerocks/internal/platform/tui"
	"github.com/spacerocks/spacerocks/internal/registry"
	"github.com/spacerocks/spacerocks/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: rocks).

Controls:
  Left/A     - Rotate counter-clockwise
  Right/D    - Rotate clockwise
  Up/W       - Thrust
  Space      - Fire
  P/Esc      - Pause
  R          - Restart
  Q/Ctrl+C   - Quit

Runs are recorded to the replay database; use 'spacerocks replay' to
verify or watch them.

Examples:
  spacerocks play
  spacerocks play --difficulty easy
  spacerocks play --seed 42 --mute
  spacerocks play --config ./my-rocks.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "rocks"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'spacerocks list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty for games before creation
	if gameID == "rocks" {
		rocks.SetConfigPath(flagConfig)
		rocks.SetDifficultyPreset(flagDifficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Wire up sound unless muted; the game falls back to silence if the
	// speaker cannot be opened.
	if !flagMute {
		if rg, ok := game.(*rocks.Game); ok {
			engine := audio.NewEngine()
			if audioErr := engine.Initialize(); audioErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", audioErr)
			} else {
				rg.SetSoundSink(engine)
				defer engine.Cleanup()
			}
		}
	}

	// Open replay storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, flagDifficulty, flagConfig)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
