// Package rocks implements Big Space Rocks, an Asteroids-style shooter.
// The simulation lives in World and is pure Go with no platform
// dependencies; Game adapts it to the platform's registry interface.
package rocks

import (
	"github.com/spacerocks/spacerocks/internal/config"
	"github.com/spacerocks/spacerocks/internal/core"
	"github.com/spacerocks/spacerocks/internal/registry"
)

var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom gameplay config path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game wraps the simulation World behind the registry.Game interface.
type Game struct {
	world    *World
	gameplay config.RocksConfig
	sounds   SoundSink
	runtime  core.RuntimeConfig
	paused   bool
}

// New creates a new game instance.
func New() *Game {
	return &Game{sounds: NopSink{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "rocks"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Big Space Rocks"
}

// SetSoundSink routes the simulation's audio cues to the given sink.
// Takes effect on the next Reset.
func (g *Game) SetSoundSink(s SoundSink) {
	if s == nil {
		s = NopSink{}
	}
	g.sounds = s
}

// Reset initializes or restarts the session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameplay, err := config.LoadRocks(configPath)
	if err != nil {
		gameplay = config.DefaultRocksConfig()
	}
	config.ApplyRocksPreset(&gameplay, config.DifficultyPreset(difficultyPreset))

	g.runtime = cfg
	g.gameplay = gameplay
	g.paused = false
	g.world = NewWorld(gameplay, uint64(cfg.Seed), g.sounds)
}

// Step advances the session by one tick of dt elapsed seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) {
		g.world = NewWorld(g.gameplay, uint64(g.runtime.Seed), g.sounds)
		g.paused = false
	}

	if !g.paused {
		g.world.Step(in, dt)
	}
	return core.StepResult{State: g.State()}
}

// World exposes the simulation for tests and replay verification.
func (g *Game) World() *World {
	return g.world
}

// Render rasterizes the world's draw list into the screen buffer, mapping
// arena coordinates (y up) onto screen cells (y down).
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	sw := float64(dst.Width())
	sh := float64(dst.Height())
	ww := g.gameplay.World.Width
	wh := g.gameplay.World.Height

	for _, call := range g.world.DrawList() {
		pts := make([][2]int, len(call.Points))
		for i, p := range call.Points {
			wp := core.Transform(p, call.Rotation, call.Scale, call.Origin)
			pts[i] = [2]int{
				int(wp.X / ww * sw),
				int((1 - wp.Y/wh) * sh),
			}
		}
		dst.DrawPolyline(pts, call.Closed, '#', core.ColorBrightWhite)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused}
	if g.world != nil {
		st.Score = g.world.Score()
		st.Lives = g.world.Lives()
	}
	return st
}

// Register the game with the registry
func init() {
	registry.Register("rocks", func() registry.Game {
		return New()
	})
}
