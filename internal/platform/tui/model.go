package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spacerocks/spacerocks/internal/core"
	"github.com/spacerocks/spacerocks/internal/registry"
	"github.com/spacerocks/spacerocks/internal/storage"
)

// replayRecorder accumulates the per-tick input script of a run so it can
// be saved for deterministic playback. Ticks with no input are skipped.
type replayRecorder struct {
	difficulty string
	configPath string
	tick       uint64
	inputs     []storage.InputRecord
}

func newReplayRecorder(difficulty, configPath string) *replayRecorder {
	return &replayRecorder{difficulty: difficulty, configPath: configPath}
}

// Record notes the actions of the tick about to be simulated.
func (r *replayRecorder) Record(in core.InputFrame) {
	if bits := storage.EncodeActions(in); bits != 0 {
		r.inputs = append(r.inputs, storage.InputRecord{Tick: r.tick, Actions: bits})
	}
	r.tick++
}

// Save writes the recorded run to the store. Runs with no gameplay input
// are not worth keeping.
func (r *replayRecorder) Save(store *storage.Store, game registry.Game, cfg core.RuntimeConfig) {
	if store == nil || len(r.inputs) == 0 {
		return
	}
	meta := storage.RunMeta{
		GameID:     game.ID(),
		Seed:       cfg.Seed,
		TickRate:   cfg.TickRate,
		Difficulty: r.difficulty,
		ConfigPath: r.configPath,
		Frames:     r.tick,
		FinalScore: game.State().Score,
	}
	//nolint:errcheck // Best-effort save, quitting proceeds regardless
	store.SaveRun(meta, r.inputs)
}

// Model is the Bubble Tea model for local play.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	recorder   *replayRecorder
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game. The config
// path is stored with each recorded run so playback can load the same
// gameplay constants.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, difficulty, configPath string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		recorder:   newReplayRecorder(difficulty, configPath),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.recorder.Save(m.store, m.game, m.config)
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The simulation runs in world space, so a resize only changes the
	// raster target and the game keeps running.
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Fixed timestep keeps the simulation deterministic for replays.
	dt := 1.0 / float64(m.config.TickRate)

	// A restart begins a fresh run. The restart tick itself is not part of
	// the new script; playback always starts from a fresh world.
	if m.inputFrame.Has(core.ActionRestart) {
		m.recorder = newReplayRecorder(m.recorder.difficulty, m.recorder.configPath)
		result := m.game.Step(m.inputFrame, dt)
		m.gameState = result.State
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.recorder.Record(m.inputFrame)
	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".spacerocks", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, difficulty, configPath string) error {
	model := NewModel(game, store, cfg, difficulty, configPath)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
