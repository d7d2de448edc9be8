package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List all game modes",
	Long:  `Shows the available game modes and what sets them apart.`,
	Run:   runModes,
}

func runModes(cmd *cobra.Command, args []string) {
	fmt.Println("Game modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range t2048.Modes {
		if len(m.Mode) > maxIDLen {
			maxIDLen = len(m.Mode)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-12s %s\n", maxIDLen, "ID", "Name", "Description")
	fmt.Printf("  %-*s  %-12s %s\n", maxIDLen, "--", "----", "-----------")

	// Print modes
	for _, m := range t2048.Modes {
		fmt.Printf("  %-*s  %-12s %s\n", maxIDLen, m.Mode, m.Name, m.Description)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play --mode <id>' to play a mode.")
}
