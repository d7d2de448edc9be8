package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(mode t2048.Mode) (Model, *stepClock) {
	clock := &stepClock{now: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
	game := t2048.New(mode, t2048.WithClock(clock), t2048.WithSeed(7))
	return NewModel(game, core.DefaultConfig()), clock
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runeKey("s"), core.ActionDown},
		{runeKey("a"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runeKey("u"), core.ActionUndo},
		{runeKey("1"), core.ActionUndo},
		{runeKey("2"), core.ActionShuffle},
		{runeKey("3"), core.ActionRemove},
		{runeKey("4"), core.ActionBomb},
		{runeKey("n"), core.ActionNewGame},
		{runeKey("k"), core.ActionKeepPlaying},
		{runeKey("m"), core.ActionCycleMode},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey("z"), core.ActionNone},
	}

	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %s, want %s", tt.msg.String(), got, tt.want)
		}
	}
}

func TestModelTickKeepsTickerAlive(t *testing.T) {
	m, _ := newTestModel(t2048.ModeTimeAttack)
	id := m.game.SessionID()

	_, cmd := m.Update(TickMsg{SessionID: id})
	if cmd == nil {
		t.Error("a current tick should re-arm the ticker")
	}
}

func TestModelDropsStaleTicker(t *testing.T) {
	m, clock := newTestModel(t2048.ModeTimeAttack)
	old := m.game.SessionID()

	next, cmd := m.Update(runeKey("n"))
	if cmd == nil {
		t.Fatal("new game should start a ticker")
	}
	m = next.(Model)
	if m.game.SessionID() == old {
		t.Fatal("new game should replace the session")
	}

	clock.now = clock.now.Add(10 * time.Second)
	_, cmd = m.Update(TickMsg{SessionID: old})
	if cmd != nil {
		t.Error("a stale tick should not re-arm the ticker")
	}
	if got := *m.game.State().TimeRemaining; got != t2048.DefaultTimeLimit {
		t.Errorf("stale tick advanced the clock to %v", got)
	}
}

func TestModelCycleMode(t *testing.T) {
	m, _ := newTestModel(t2048.ModeClassic)
	next, _ := m.Update(runeKey("m"))
	if got := next.(Model).game.Mode(); got != t2048.ModeTimeAttack {
		t.Errorf("mode = %s, want timeAttack", got)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t2048.ModeClassic)
	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelViewShowsScoreAndPowerUps(t *testing.T) {
	m, _ := newTestModel(t2048.ModeTimeAttack)
	view := m.View()

	for _, want := range []string{"Score", "Best", "Time", "Undo", "Shuffle", "Remove", "Bomb", "Win rate"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}
}

func TestModeMenuSelection(t *testing.T) {
	m := NewModeMenuModel(t2048.ModeClassic, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("selecting should quit the menu program")
	}

	mode, ok := next.(ModeMenuModel).Selected()
	if !ok || mode != t2048.ModeZen {
		t.Errorf("Selected() = %s, %v, want zen, true", mode, ok)
	}
}

func TestModeMenuBack(t *testing.T) {
	m := NewModeMenuModel(t2048.ModeZen, 80, 24)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := next.(ModeMenuModel).Selected(); ok {
		t.Error("backing out should select nothing")
	}
}

func TestScoreRows(t *testing.T) {
	rows := ScoreRows([]storage.ScoreEntry{
		{Score: 5000, HighestTile: 2048, Moves: 700, Won: true, Mode: "timeAttack"},
		{Score: 120, HighestTile: 32, Moves: 40, Mode: "zen"},
	})

	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "5000" || rows[0][2] != "2048*" || rows[0][4] != "Time Attack" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][2] != "32" || rows[1][4] != "Zen" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, want %q", got, "  ab")
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText() = %q", got)
	}
}
