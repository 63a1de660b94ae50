package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spacerocks/spacerocks/internal/core"
	"github.com/spacerocks/spacerocks/internal/games/rocks"
	"github.com/spacerocks/spacerocks/internal/platform/tui"
	"github.com/spacerocks/spacerocks/internal/registry"
	"github.com/spacerocks/spacerocks/internal/storage"
)

var flagWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay [id]",
	Short: "Verify or watch a recorded run",
	Long: `Without an id, lists the recorded runs in the replay database.

With an id, re-simulates the run headlessly from its seed and input
script and checks that the final score matches the recording. Pass
--watch to play it back in the terminal instead.

Examples:
  spacerocks replay
  spacerocks replay 3
  spacerocks replay 3 --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Play the run back in the terminal")
}

func runReplay(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		listRuns(store)
		return
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid run id %q\n", args[0])
		os.Exit(1)
	}

	meta, inputs, err := store.LoadRun(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !registry.Exists(meta.GameID) {
		fmt.Fprintf(os.Stderr, "Error: run %d was recorded for unknown game %q\n", id, meta.GameID)
		os.Exit(1)
	}

	// Config and preset change gameplay constants, so playback must run
	// with the same ones the run was recorded with.
	rocks.SetConfigPath(meta.ConfigPath)
	rocks.SetDifficultyPreset(meta.Difficulty)

	game, err := registry.Create(meta.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if flagWatch {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		cfg := core.RuntimeConfig{ScreenW: width, ScreenH: height}
		if err := tui.RunPlayback(game, cfg, meta, inputs); err != nil {
			fmt.Fprintf(os.Stderr, "Error running playback: %v\n", err)
			os.Exit(1)
		}
		return
	}

	verifyRun(game, meta, inputs)
}

// verifyRun re-simulates a run headlessly and compares the outcome with
// what was recorded.
func verifyRun(game registry.Game, meta storage.RunMeta, inputs []storage.InputRecord) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: meta.TickRate,
		Seed:     meta.Seed,
	}
	game.Reset(cfg)

	dt := 1.0 / float64(meta.TickRate)
	next := 0
	for tick := uint64(0); tick < meta.Frames; tick++ {
		in := core.NewInputFrame()
		if next < len(inputs) && inputs[next].Tick == tick {
			in = storage.DecodeActions(inputs[next].Actions)
			next++
		}
		game.Step(in, dt)
	}

	score := game.State().Score
	fmt.Printf("Run #%d: %d frames at %d fps, seed %d\n", meta.ID, meta.Frames, meta.TickRate, meta.Seed)
	if score == meta.FinalScore {
		fmt.Printf("OK: final score %d matches the recording\n", score)
		return
	}

	fmt.Fprintf(os.Stderr, "MISMATCH: re-simulated score %d, recorded %d\n", score, meta.FinalScore)
	os.Exit(1)
}

// listRuns prints the recorded runs, newest first.
func listRuns(store *storage.Store) {
	runs, err := store.ListRuns(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		fmt.Println("Play a game first: spacerocks play")
		return
	}

	fmt.Println("Recorded runs:")
	fmt.Println()
	fmt.Printf("  %4s  %-8s  %-8s  %8s  %8s  %s\n", "ID", "Game", "Diff", "Frames", "Score", "Recorded")
	for _, r := range runs {
		diff := r.Difficulty
		if diff == "" {
			diff = "normal"
		}
		fmt.Printf("  %4d  %-8s  %-8s  %8d  %8d  %s\n",
			r.ID, r.GameID, diff, r.Frames, r.FinalScore, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Println("Run 'spacerocks replay <id>' to verify, or add --watch to view.")
}
