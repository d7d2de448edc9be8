package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Board cell geometry in terminal cells.
const (
	cellWidth  = 7
	cellHeight = 3
)

type tileColors struct {
	bg, fg lipgloss.Color
}

// tilePalette is the neon theme, keyed by tile value.
var tilePalette = map[int]tileColors{
	2:    {"#16213e", "#00fff5"},
	4:    {"#0f3460", "#00d4ff"},
	8:    {"#533483", "#ffffff"},
	16:   {"#e94560", "#ffffff"},
	32:   {"#ff6b6b", "#ffffff"},
	64:   {"#feca57", "#1a1a2e"},
	128:  {"#48dbfb", "#1a1a2e"},
	256:  {"#0abde3", "#1a1a2e"},
	512:  {"#10ac84", "#ffffff"},
	1024: {"#00d9ff", "#ffffff"},
	2048: {"#ff00ff", "#ffffff"},
	4096: {"#7928ca", "#ffffff"},
	8192: {"#f12711", "#ffffff"},
}

var (
	emptyCellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Height(cellHeight).
			Background(lipgloss.Color("#1a1a2e"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Foreground(lipgloss.Color("#1a1a2e")).
			Background(lipgloss.Color("#feca57"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// tileStyle returns the style for a tile value. Values past the palette
// cycle through a rainbow of ANSI colors.
func tileStyle(value int) lipgloss.Style {
	c, ok := tilePalette[value]
	if !ok {
		hues := []lipgloss.Color{"196", "202", "226", "46", "51", "21", "201"}
		c = tileColors{bg: hues[log2(value)%len(hues)], fg: "#ffffff"}
	}
	return lipgloss.NewStyle().
		Width(cellWidth).
		Height(cellHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true).
		Background(c.bg).
		Foreground(c.fg)
}

func log2(v int) int {
	n := 0
	for v > 1 {
		v >>= 1
		n++
	}
	return n
}

// renderBoard draws the value matrix as a grid of colored cells.
func renderBoard(board [][]int) string {
	rows := make([]string, len(board))
	for y, row := range board {
		cells := make([]string, len(row))
		for x, v := range row {
			if v == 0 {
				cells[x] = emptyCellStyle.Render("")
				continue
			}
			cells[x] = tileStyle(v).Render(fmt.Sprint(v))
		}
		rows[y] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderHeader shows score, best score, combo and the time attack clock.
func renderHeader(snap t2048.Snapshot) string {
	st := snap.State
	parts := []string{
		titleStyle.Render("2048 · " + snap.Mode.Info().Name),
		labelStyle.Render("Score ") + valueStyle.Render(fmt.Sprint(st.Score)),
		labelStyle.Render("Best ") + valueStyle.Render(fmt.Sprint(st.BestScore)),
	}
	if st.ComboCount > 1 {
		parts = append(parts, labelStyle.Render("Combo ")+
			valueStyle.Render(fmt.Sprintf("%d x%.1f", st.ComboCount, snap.Multiplier)))
	}
	if st.TimeRemaining != nil {
		secs := int(st.TimeRemaining.Seconds() + 0.999)
		parts = append(parts, labelStyle.Render("Time ")+
			valueStyle.Render(fmt.Sprintf("%d:%02d", secs/60, secs%60)))
	}
	return strings.Join(parts, "   ")
}

// renderPowerUps lists each power-up with its remaining uses and cooldown.
func renderPowerUps(ps t2048.PowerUps) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Power-ups"))
	b.WriteString("\n")
	for i, p := range ps {
		line := fmt.Sprintf("%d %-8s %d/%d", i+1, p.Name, p.Uses, p.MaxUses)
		if p.CurrentCooldown > 0 {
			line += fmt.Sprintf("  (%d)", p.CurrentCooldown)
		}
		if !p.Ready() {
			line = dimStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// renderStats shows the cumulative statistics panel.
func renderStats(s t2048.GameStats) string {
	rows := [][2]string{
		{"Played", fmt.Sprint(s.GamesPlayed)},
		{"Won", fmt.Sprint(s.GamesWon)},
		{"Win rate", fmt.Sprintf("%.0f%%", s.WinRate())},
		{"Avg score", fmt.Sprint(s.AverageScore())},
		{"Best tile", fmt.Sprint(s.HighestTile)},
		{"Best combo", fmt.Sprint(s.LongestCombo)},
		{"Fastest win", t2048.FormatSeconds(s.FastestWin)},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Stats"))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", r[0])))
		b.WriteString(r[1])
		b.WriteString("\n")
	}
	return b.String()
}

// renderBanner returns the status line shown under the board, if any.
func renderBanner(snap t2048.Snapshot) string {
	switch snap.Status {
	case t2048.StatusWon:
		return bannerStyle.Render("You win!  k: keep playing  n: new game")
	case t2048.StatusGameOver:
		if snap.Mode.Timed() {
			return bannerStyle.Render("Time's up!  n: new game")
		}
		return bannerStyle.Render("Game over!  n: new game")
	}
	return ""
}

// centerText pads text on the left so it is centered in width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
