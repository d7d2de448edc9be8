package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the leaderboard",
	Long: `Display the top scores, optionally for a single mode.

Examples:
  t2048 scores
  t2048 scores zen --limit 20
  t2048 scores -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen view")
}

func runScores(cmd *cobra.Command, args []string) {
	opts := loadSettings()

	mode, title := "", "All modes"
	if len(args) == 1 {
		parsed, ok := t2048.ParseMode(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 't2048 modes' to see available modes.")
			os.Exit(1)
		}
		mode, title = string(parsed), parsed.Info().Name
	}

	// Open score storage
	store, err := storage.Open(opts.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, mode, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(mode, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 't2048 play' to set the first high score!")
		return
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 8},
			{Title: "Tile", Width: 6},
			{Title: "Moves", Width: 6},
			{Title: "Mode", Width: 11},
			{Title: "Date", Width: 12},
		}),
		table.WithRows(tui.ScoreRows(scores)),
		table.WithHeight(len(scores)+1),
	)
	t.SetStyles(plainTableStyles())
	fmt.Println(t.View())

	// Show high score
	fmt.Println()
	if high, err := store.HighScore(mode); err == nil {
		fmt.Printf("Best: %d  (* = reached the win tile)\n", high)
	}
}

// plainTableStyles drops the selection highlight for non-interactive output.
func plainTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Selected = lipgloss.NewStyle()
	return s
}
