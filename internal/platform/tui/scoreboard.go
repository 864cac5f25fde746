package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lander/internal/storage"
)

// scoreboardKeyMap binds the scoreboard's controls.
type scoreboardKeyMap struct {
	Switch key.Binding
	Mode   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Mode, k.Quit}
}

func (k scoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Switch, k.Mode, k.Quit}}
}

var scoreboardKeys = scoreboardKeyMap{
	Switch: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch game"),
	),
	Mode: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "scores/flights"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var scoreboardTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Padding(0, 1)

// scoreboardModel browses high scores and the flight log per game.
type scoreboardModel struct {
	store   *storage.Store
	games   []string
	current int
	flights bool

	table table.Model
	help  help.Model
	err   error
}

// ShowScoreboard opens the interactive score browser for the given games.
func ShowScoreboard(store *storage.Store, games []string) error {
	if len(games) == 0 {
		return fmt.Errorf("tui: no games to show scores for")
	}

	m := &scoreboardModel{
		store: store,
		games: games,
		help:  help.New(),
	}
	m.reload()

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: scoreboard failed: %w", err)
	}
	return nil
}

// reload rebuilds the table for the current game and view mode.
func (m *scoreboardModel) reload() {
	gameID := m.games[m.current]

	var columns []table.Column
	var rows []table.Row

	if m.flights {
		columns = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Outcome", Width: 9},
			{Title: "Score", Width: 7},
			{Title: "Fuel", Width: 8},
			{Title: "Time", Width: 8},
			{Title: "Difficulty", Width: 10},
		}
		flights, err := m.store.RecentFlights(gameID, 15)
		if err != nil {
			m.err = err
		}
		for i, f := range flights {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i+1),
				f.Outcome,
				fmt.Sprintf("%d", f.Score),
				fmt.Sprintf("%.0f", f.FuelUsed),
				fmt.Sprintf("%.1fs", f.Duration),
				f.Difficulty,
			})
		}
	} else {
		columns = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Player", Width: 16},
			{Title: "Score", Width: 7},
			{Title: "Date", Width: 16},
		}
		scores, err := m.store.TopScores(gameID, 15)
		if err != nil {
			m.err = err
		}
		for i, s := range scores {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i+1),
				s.Player,
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
	}

	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(17),
	)
}

func (m *scoreboardModel) Init() tea.Cmd {
	return nil
}

func (m *scoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, scoreboardKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, scoreboardKeys.Switch):
			m.current = (m.current + 1) % len(m.games)
			m.reload()
			return m, nil
		case key.Matches(msg, scoreboardKeys.Mode):
			m.flights = !m.flights
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *scoreboardModel) View() string {
	mode := "High Scores"
	if m.flights {
		mode = "Flight Log"
	}
	title := scoreboardTitle.Render(fmt.Sprintf("%s · %s", m.games[m.current], mode))

	body := m.table.View()
	if m.err != nil {
		body = fmt.Sprintf("error: %v", m.err)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, body, m.help.View(scoreboardKeys))
}
