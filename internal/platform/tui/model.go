package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tavrin/tui-pong/internal/core"
	"github.com/tavrin/tui-pong/internal/registry"
	"github.com/tavrin/tui-pong/internal/replay"
	"github.com/tavrin/tui-pong/internal/storage"
)

// Model is the Bubble Tea model driving a game session.
// It owns the input frame: key presses set actions, and the frame is cleared
// after every simulation step, so an action is live for exactly one tick.
type Model struct {
	game   registry.Game
	screen *core.Screen
	cfg    core.RuntimeConfig
	keys   *KeyMapper
	input  core.MultiInputFrame
	state  core.GameState

	// Optional replay recording. When store is nil the session is not
	// persisted at all.
	store    *storage.Store
	recorder *replay.Recorder
	saved    bool

	// When playback is set the session replays a stored recording and
	// ignores all input except quit.
	playback *replay.Playback

	quitting bool
}

// NewModel creates a model for a live session. store and recorder may be nil.
func NewModel(game registry.Game, cfg core.RuntimeConfig, keys *KeyMapper, store *storage.Store, recorder *replay.Recorder) Model {
	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		cfg:      cfg,
		keys:     keys,
		input:    core.NewMultiInputFrame(),
		store:    store,
		recorder: recorder,
	}
}

// NewPlaybackModel creates a model that replays a stored recording.
func NewPlaybackModel(game registry.Game, cfg core.RuntimeConfig, keys *KeyMapper, rec replay.Recording) Model {
	m := NewModel(game, cfg, keys, nil, nil)
	m.playback = replay.NewPlayback(rec)
	return m
}

func (m Model) Init() tea.Cmd {
	m.game.Reset(m.cfg)
	return tickCmd(m.cfg.TickRate)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick()
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.playback != nil {
		// During playback only quit works; the recording owns the inputs.
		if _, _, isQuit := m.keys.Map(key); isQuit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.keys.MapToFrame(key, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	if m.playback != nil {
		if !m.playback.Done() {
			res := m.game.Step(m.playback.Frame())
			m.state = res.State
		}
		return m, tickCmd(m.cfg.TickRate)
	}

	// Restart starts a fresh session: new game, new recording.
	if m.state.GameOver && m.input.Has(core.ActionRestart) {
		m.game.Reset(m.cfg)
		m.state = core.GameState{}
		if m.recorder != nil {
			m.recorder = replay.NewRecorder()
		}
		m.saved = false
		m.input.Clear()
		return m, tickCmd(m.cfg.TickRate)
	}

	if m.recorder != nil && !m.state.GameOver {
		m.recorder.Capture(m.input)
	}

	res := m.game.Step(m.input)
	m.state = res.State
	m.input.Clear()

	// Persist the finished match once. A failed save is not fatal to the
	// session; the result is still on screen.
	if m.state.GameOver && !m.saved && m.recorder != nil && m.store != nil {
		m.store.SaveReplay(m.recorder.Finish(m.state))
		m.saved = true
	}

	return m, tickCmd(m.cfg.TickRate)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width < 1 || msg.Height < 1 {
		return m, nil
	}
	// The court is in fixed logical units, so a resize only changes how it
	// is drawn. The match keeps running.
	m.cfg.ScreenW = msg.Width
	m.cfg.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.playback != nil {
		tick, total := m.playback.Progress()
		out += fmt.Sprintf("\nreplay %d/%d  (q to quit)", tick, total)
	}
	return out
}

// Run starts a live session without recording.
func Run(game registry.Game, cfg core.RuntimeConfig, keys *KeyMapper) error {
	return runProgram(NewModel(game, cfg, keys, nil, nil))
}

// RunRecorded starts a live session whose inputs are recorded and saved to
// the store when the match ends.
func RunRecorded(game registry.Game, cfg core.RuntimeConfig, keys *KeyMapper, store *storage.Store) error {
	return runProgram(NewModel(game, cfg, keys, store, replay.NewRecorder()))
}

// RunPlayback replays a stored recording.
func RunPlayback(game registry.Game, cfg core.RuntimeConfig, keys *KeyMapper, rec replay.Recording) error {
	return runProgram(NewPlaybackModel(game, cfg, keys, rec))
}

func runProgram(m Model) error {
	m.game.Reset(m.cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
