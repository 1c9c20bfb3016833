package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katmatt/ishido/internal/config"
	"github.com/katmatt/ishido/internal/core"
	"github.com/katmatt/ishido/internal/game"
	"github.com/katmatt/ishido/internal/storage"
)

// hintMsg fires when the hint delay elapses. Gen ties it to the placement
// that scheduled it, so a stale timer from before a move is ignored.
type hintMsg struct {
	gen int
}

// Model is the Bubble Tea model driving a single Ishido session.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	hint       config.HintConfig
	hintGen    int
	quitting   bool
	scoreSaved bool // Whether the result has been saved for the current game over
}

// NewModel creates a new Bubble Tea model around a fresh session.
func NewModel(store *storage.Store, cfg core.RuntimeConfig, hint config.HintConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	session := game.New()
	session.Reset(cfg)

	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		config:  cfg,
		hint:    hint,
	}
}

// Init starts the hint timer for the opening position.
func (m Model) Init() tea.Cmd {
	return m.scheduleHint()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case hintMsg:
		return m.handleHint(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "n":
		return m.newGame()
	case "h":
		m.session.SetHint(!m.session.HintVisible())
		return m, nil
	}

	return m, nil
}

// handleMouse processes pointer input: cell clicks place the pending stone,
// a click on the New button restarts.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.session.NewButtonRect().Contains(msg.X, msg.Y) {
		return m.newGame()
	}

	pos, ok := m.session.CellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	// Invalid placements are dropped without feedback.
	if !m.session.PlaceStone(pos) {
		return m, nil
	}

	if m.session.GameOver() {
		m.saveResult()
		return m, nil
	}

	m.hintGen++
	return m, m.scheduleHint()
}

// handleHint reveals the hints when the timer for the current position fires.
func (m Model) handleHint(msg hintMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.hintGen {
		return m, nil
	}
	if !m.session.GameOver() {
		m.session.SetHint(true)
	}
	return m, nil
}

// newGame starts a fresh game with a new time-based seed.
func (m Model) newGame() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.session.Reset(m.config)
	m.scoreSaved = false
	m.hintGen++
	return m, m.scheduleHint()
}

// scheduleHint arms the hint timer for the current position. Every placement
// and restart bumps hintGen first, which invalidates any timer still in
// flight. Read-only on the model: Init calls it on a copy Bubble Tea throws
// away, so the generation must not change here.
func (m Model) scheduleHint() tea.Cmd {
	if !m.hint.Auto {
		return nil
	}

	gen := m.hintGen
	delay := time.Duration(m.hint.DelaySeconds) * time.Second
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return hintMsg{gen: gen}
	})
}

// saveResult persists the finished game once.
func (m *Model) saveResult() {
	if m.scoreSaved || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveResult(m.session.Score(), m.session.FourWays(), m.session.StackLen())
	m.scoreSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(store *storage.Store, cfg core.RuntimeConfig, hint config.HintConfig) error {
	model := NewModel(store, cfg, hint)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Cell clicks are the primary input
	)

	_, err := p.Run()
	return err
}
