package rocks

import (
	"strings"
	"testing"

	"github.com/spacerocks/spacerocks/internal/core"
	"github.com/spacerocks/spacerocks/internal/registry"
)

func testRuntimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("rocks") {
		t.Fatal("rocks game should be registered")
	}

	g, err := registry.Create("rocks")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "rocks" {
		t.Errorf("ID() = %q, expected \"rocks\"", g.ID())
	}
	if g.Title() == "" {
		t.Error("Title() should not be empty")
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	if g.World() == nil {
		t.Fatal("Reset should create a world")
	}

	state := g.State()
	if state.Score != 0 {
		t.Errorf("initial score = %d, expected 0", state.Score)
	}
	if state.Lives != 3 {
		t.Errorf("initial lives = %d, expected 3", state.Lives)
	}
	if state.Paused {
		t.Error("game should not start paused")
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in, testDT)

	if !g.State().Paused {
		t.Fatal("pause action should pause the game")
	}

	before := g.World().Snapshot()
	stepGame(g, 30)
	after := g.World().Snapshot()

	if before != after {
		t.Error("simulation should not advance while paused")
	}

	in = core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in, testDT)
	if g.State().Paused {
		t.Fatal("second pause action should unpause")
	}

	stepGame(g, 1)
	if g.World().Snapshot() == after {
		t.Error("simulation should advance after unpausing")
	}
}

func TestGameRestartReproducesRun(t *testing.T) {
	const n = 120

	g := New()
	g.Reset(testRuntimeConfig())
	stepGame(g, n)
	want := g.World().Snapshot()

	// A restart rebuilds the world with the session seed; the restart tick
	// itself counts as the first empty step of the new run.
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in, testDT)
	stepGame(g, n-1)

	if got := g.World().Snapshot(); got != want {
		t.Errorf("restart with the same seed should reproduce the run:\n%+v\n%+v", got, want)
	}
}

func TestGameRenderDrawsEntities(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())
	stepGame(g, 1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.ContainsRune(screen.String(), '#') {
		t.Error("render should draw the ship and rock field")
	}
}

func TestGameRenderPausedMessage(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in, testDT)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused render should show the pause message")
	}
}

func stepGame(g *Game, n int) {
	in := core.NewInputFrame()
	for i := 0; i < n; i++ {
		g.Step(in, testDT)
	}
}
