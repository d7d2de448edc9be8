package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Model is the Bubble Tea model for a 2048 game.
type Model struct {
	game     *t2048.Game
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a new Bubble Tea model driving game.
func NewModel(game *t2048.Game, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = game.Rules().CountdownTick
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// Init starts the ticker for the opening session.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.game.SessionID())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey dispatches a key press to the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action.IsMove():
		m.game.Move(directionFor(action))
	case action.IsPowerUp():
		m.game.UsePowerUp(string(powerUpFor(action)))
	case action == core.ActionKeepPlaying:
		m.game.KeepPlaying()
	case action == core.ActionNewGame:
		return m.restart(m.game.Mode())
	case action == core.ActionCycleMode:
		return m.restart(m.game.Mode().Next())
	}
	return m, nil
}

// restart begins a new session and a ticker bound to it. The old ticker
// dies on its next tick because its session id no longer matches.
func (m Model) restart(mode t2048.Mode) (tea.Model, tea.Cmd) {
	m.game.NewGame(mode)
	return m, tickCmd(m.config.TickRate, m.game.SessionID())
}

// handleTick advances the session clock and re-arms the ticker.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.game.Tick(msg.SessionID) {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, msg.SessionID)
}

func directionFor(a core.Action) t2048.Direction {
	switch a {
	case core.ActionUp:
		return t2048.DirUp
	case core.ActionDown:
		return t2048.DirDown
	case core.ActionLeft:
		return t2048.DirLeft
	default:
		return t2048.DirRight
	}
}

func powerUpFor(a core.Action) t2048.PowerUpID {
	switch a {
	case core.ActionShuffle:
		return t2048.PowerShuffle
	case core.ActionRemove:
		return t2048.PowerRemove
	case core.ActionBomb:
		return t2048.PowerBomb
	default:
		return t2048.PowerUndo
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()

	side := lipgloss.JoinVertical(lipgloss.Left,
		renderPowerUps(snap.PowerUps),
		renderStats(snap.Stats),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		renderBoard(snap.Board),
		"   ",
		side,
	)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(renderHeader(snap))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	if banner := renderBanner(snap); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// Game returns the game the model drives.
func (m Model) Game() *t2048.Game {
	return m.game
}

// Run starts the Bubble Tea program for game.
func Run(game *t2048.Game, cfg core.RuntimeConfig) error {
	model := NewModel(game, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
