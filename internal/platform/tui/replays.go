package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tavrin/tui-pong/internal/storage"
)

const maxReplays = 100 // Max replays to list

// ReplayPickerKeyMap defines the key bindings for the replay picker.
type ReplayPickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Watch  key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplayPickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Watch, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReplayPickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Watch, k.Delete, k.Quit},
	}
}

// DefaultReplayPickerKeyMap returns default key bindings.
func DefaultReplayPickerKeyMap() ReplayPickerKeyMap {
	return ReplayPickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Watch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "watch"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReplayPickerModel is the Bubble Tea model for the replay list screen.
type ReplayPickerModel struct {
	store    *storage.Store
	replays  []storage.ReplayInfo
	table    table.Model
	help     help.Model
	keys     ReplayPickerKeyMap
	width    int
	height   int
	selected int64 // ID of the replay chosen to watch, 0 if none
	quitting bool
}

// NewReplayPickerModel creates a new replay picker model.
func NewReplayPickerModel(store *storage.Store, width, height int) ReplayPickerModel {
	h := help.New()
	h.ShowAll = false

	m := ReplayPickerModel{
		store:  store,
		keys:   DefaultReplayPickerKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadReplays()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ReplayPickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Score", Width: 9},
		{Title: "Winner", Width: 10},
		{Title: "Ticks", Width: 8},
		{Title: "Date", Width: 14},
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadReplays reloads the replay list from storage.
func (m *ReplayPickerModel) loadReplays() {
	if m.store == nil {
		m.replays = nil
		m.updateTableRows()
		return
	}

	replays, err := m.store.ListReplays(maxReplays)
	if err != nil {
		m.replays = nil
	} else {
		m.replays = replays
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the current replay list.
func (m *ReplayPickerModel) updateTableRows() {
	rows := make([]table.Row, len(m.replays))
	for i, r := range m.replays {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%d - %d", r.ScoreLeft, r.ScoreRight),
			r.Winner.String(),
			fmt.Sprintf("%d", r.Ticks),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cursorReplay returns the replay under the cursor, or nil if the list is empty.
func (m ReplayPickerModel) cursorReplay() *storage.ReplayInfo {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.replays) {
		return nil
	}
	return &m.replays[idx]
}

// Init initializes the replay picker model.
func (m ReplayPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay picker.
func (m ReplayPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Watch):
			if r := m.cursorReplay(); r != nil {
				m.selected = r.ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if r := m.cursorReplay(); r != nil && m.store != nil {
				//nolint:errcheck // Best-effort delete; the list reload shows the result
				m.store.DeleteReplay(r.ID)
				m.loadReplays()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the replay picker.
func (m ReplayPickerModel) View() string {
	if m.quitting || m.selected != 0 {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("REPLAYS", m.width)))
	b.WriteString("\n\n")

	if len(m.replays) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No replays recorded yet.\nPlay with --record to save a match!"))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the ID of the replay chosen to watch, or 0 if none.
func (m ReplayPickerModel) Selected() int64 {
	return m.selected
}

// centerText pads text so it is horizontally centered within width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// RunReplayPicker shows the replay list and returns the ID of the replay the
// user chose to watch, or 0 if they quit without choosing.
func RunReplayPicker(store *storage.Store, width, height int) (int64, error) {
	p := tea.NewProgram(
		NewReplayPickerModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(ReplayPickerModel)
	if !ok {
		return 0, nil
	}
	return m.Selected(), nil
}
