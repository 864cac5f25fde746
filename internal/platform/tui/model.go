// Package tui runs games in the terminal over bubbletea, locally or
// through the SSH server.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

// Options configure a game session.
type Options struct {
	Game   registry.Game
	Store  *storage.Store // nil disables persistence
	Config core.RuntimeConfig
	Player string
}

// Model is the bubbletea model driving one game session.
type Model struct {
	game   registry.Game
	store  *storage.Store
	cfg    core.RuntimeConfig
	player string

	screen   *core.Screen
	frame    core.InputFrame
	quitting bool
}

// NewModel creates a session model and resets the game.
func NewModel(opts Options) *Model {
	screen := core.NewScreen(opts.Config.ScreenW, opts.Config.ScreenH)
	opts.Game.Reset(opts.Config)

	return &Model{
		game:   opts.Game,
		store:  opts.Store,
		cfg:    opts.Config,
		player: opts.Player,
		screen: screen,
		frame:  core.NewInputFrame(),
	}
}

// Init starts the simulation tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles input, ticks and terminal resizes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		action := MapKey(msg)
		if action == core.ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		if action != core.ActionNone {
			m.frame.Set(action)
		}
		return m, nil

	case TickMsg:
		res := m.game.Step(m.frame)
		m.frame.Clear()

		if res.Flight != nil {
			m.persistFlight(res.Flight)
		}

		m.game.Render(m.screen)
		return m, tickCmd(m.cfg.TickRate)
	}
	return m, nil
}

// persistFlight records the finished attempt and, when it scored, the
// high-score entry.
func (m *Model) persistFlight(f *core.FlightSummary) {
	if m.store == nil {
		return
	}

	err := m.store.SaveFlight(storage.FlightEntry{
		GameID:     m.game.ID(),
		Outcome:    f.Outcome,
		Score:      f.Score,
		FuelUsed:   f.FuelUsed,
		Duration:   f.Duration,
		Difficulty: f.Difficulty,
	})
	if err != nil {
		log.Error("cannot save flight", "game", m.game.ID(), "err", err)
	}

	if f.Score > 0 {
		if err := m.store.SaveScore(m.game.ID(), m.player, f.Score); err != nil {
			log.Error("cannot save score", "game", m.game.ID(), "err", err)
		}
	}
}

// View renders the current frame.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// Run plays a game session in the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: session failed: %w", err)
	}
	return nil
}
