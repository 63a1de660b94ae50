package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spacerocks/spacerocks/internal/core"
	"github.com/spacerocks/spacerocks/internal/registry"
	"github.com/spacerocks/spacerocks/internal/storage"
)

// PlaybackModel re-runs a recorded input script against a fresh game.
// The simulation is deterministic, so feeding the same seed and inputs at
// the same ticks reproduces the original run exactly.
type PlaybackModel struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	meta     storage.RunMeta
	inputs   []storage.InputRecord
	next     int
	tick     uint64
	finished bool
	quitting bool
}

// NewPlaybackModel creates a playback model for a recorded run.
func NewPlaybackModel(game registry.Game, cfg core.RuntimeConfig, meta storage.RunMeta, inputs []storage.InputRecord) PlaybackModel {
	cfg.Seed = meta.Seed
	cfg.TickRate = meta.TickRate

	return PlaybackModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		meta:   meta,
		inputs: inputs,
	}
}

// Init starts the playback loop.
func (m PlaybackModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m PlaybackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick feeds the recorded input for the current tick into the game.
func (m PlaybackModel) handleTick() (tea.Model, tea.Cmd) {
	if m.finished {
		return m, tickCmd(m.config.TickRate)
	}

	in := core.NewInputFrame()
	if m.next < len(m.inputs) && m.inputs[m.next].Tick == m.tick {
		in = storage.DecodeActions(m.inputs[m.next].Actions)
		m.next++
	}

	dt := 1.0 / float64(m.config.TickRate)
	m.game.Step(in, dt)
	m.tick++

	if m.tick >= m.meta.Frames {
		m.finished = true
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the replayed game with a status line.
func (m PlaybackModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	frame := RenderScreen(m.screen)

	status := fmt.Sprintf("REPLAY #%d  tick %d/%d  (q to exit)", m.meta.ID, m.tick, m.meta.Frames)
	if m.finished {
		status = fmt.Sprintf("REPLAY #%d  finished, score %d  (q to exit)", m.meta.ID, m.game.State().Score)
	}

	return frame + "\n" + status
}

// RunPlayback plays a recorded run in the terminal.
func RunPlayback(game registry.Game, cfg core.RuntimeConfig, meta storage.RunMeta, inputs []storage.InputRecord) error {
	model := NewPlaybackModel(game, cfg, meta, inputs)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
