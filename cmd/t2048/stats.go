package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagReset bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cumulative statistics",
	Long: `Display statistics aggregated over every finished game.

Examples:
  t2048 stats
  t2048 stats --reset`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all statistics, scores and the best score")
}

func runStats(cmd *cobra.Command, args []string) {
	opts := loadSettings()
	logger := newLogger(os.Stderr, opts.LogLevel)

	store, err := storage.Open(opts.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("statistics reset", "db", opts.DBPath)
		return
	}

	stats, err := store.LoadStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stats: %v\n", err)
		os.Exit(1)
	}
	best, err := store.LoadBestScore()
	if err != nil {
		logger.Warn("could not load best score", "error", err)
	}

	fmt.Println("Statistics")
	fmt.Println()

	rows := statsRows(stats, best)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Stat", Width: 14},
			{Title: "Value", Width: 10},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	t.SetStyles(plainTableStyles())
	fmt.Println(t.View())
}

// statsRows formats the statistics panel.
func statsRows(s t2048.GameStats, best int) []table.Row {
	return []table.Row{
		{"Best score", fmt.Sprint(best)},
		{"Games played", fmt.Sprint(s.GamesPlayed)},
		{"Games won", fmt.Sprint(s.GamesWon)},
		{"Win rate", fmt.Sprintf("%.0f%%", s.WinRate())},
		{"Average score", fmt.Sprint(s.AverageScore())},
		{"Highest tile", fmt.Sprint(s.HighestTile)},
		{"Total moves", fmt.Sprint(s.TotalMoves)},
		{"Total merges", fmt.Sprint(s.TotalMerges)},
		{"Longest combo", fmt.Sprint(s.LongestCombo)},
		{"Fastest win", t2048.FormatSeconds(s.FastestWin)},
	}
}
