package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// ModeMenuModel lets users choose a game mode before play starts.
type ModeMenuModel struct {
	cursor   int
	width    int
	height   int
	selected t2048.Mode
	choosing bool
	quitting bool
}

// NewModeMenuModel creates a mode selection model with the cursor on initial.
func NewModeMenuModel(initial t2048.Mode, width, height int) ModeMenuModel {
	m := ModeMenuModel{width: width, height: height, choosing: true}
	for i, info := range t2048.Modes {
		if info.Mode == initial {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m ModeMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m ModeMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(t2048.Modes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selected = t2048.Modes[m.cursor].Mode
		return m, tea.Quit
	}
	return m, nil
}

// View renders the mode list.
func (m ModeMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	for i, info := range t2048.Modes {
		line := fmt.Sprintf("  %-12s %s", info.Name, labelStyle.Render(info.Description))
		if i == m.cursor {
			line = selectedStyle.Render("> "+fmt.Sprintf("%-12s", info.Name)) + " " + info.Description
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen mode and whether a choice was made.
func (m ModeMenuModel) Selected() (t2048.Mode, bool) {
	if m.choosing || m.quitting {
		return "", false
	}
	return m.selected, true
}

// RunModeSelector runs the mode selection and returns the chosen mode.
// It reports false when the user backed out.
func RunModeSelector(initial t2048.Mode, cfg core.RuntimeConfig) (t2048.Mode, bool, error) {
	p := tea.NewProgram(
		NewModeMenuModel(initial, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, ok := finalModel.(ModeMenuModel)
	if !ok {
		return "", false, nil
	}
	mode, ok := m.Selected()
	return mode, ok, nil
}
