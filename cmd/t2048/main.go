// t2048 is a terminal 2048 with combos, power-ups and three game modes.
//
// Usage:
//
//	t2048 play               - Play (pick a mode interactively)
//	t2048 play --mode zen    - Play a specific mode
//	t2048 modes              - List game modes
//	t2048 scores [mode]      - Show the leaderboard
//	t2048 stats              - Show cumulative statistics
//
// Global flags (also read from T2048_* environment variables):
//
//	--seed <value>       - Set RNG seed for reproducible tile spawns
//	--db <path>          - Set database path (default: ~/.arcade/t2048.db)
//	--config <path>      - Path to custom game config YAML
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Where play sessions write their log
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// settings are the global options after flags and environment are merged.
type settings struct {
	Seed       int64
	DBPath     string
	ConfigPath string
	LogLevel   string
	LogFile    string
}

var v = viper.New()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is a terminal version of the 2048 sliding-tile puzzle with
combo scoring, power-ups and three game modes.

Available commands:
  play     - Play a game
  modes    - Show all game modes
  scores   - View the leaderboard
  stats    - View cumulative statistics

Examples:
  t2048 play
  t2048 play --mode timeAttack
  t2048 scores zen
  T2048_DB=/tmp/test.db t2048 stats`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.Int64("seed", 0, "RNG seed (0 = random based on time)")
	flags.String("db", "~/.arcade/t2048.db", "Path to scores database")
	flags.String("config", "", "Path to custom game config YAML")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-file", "~/.arcade/t2048.log", "Log file used while playing")

	for _, name := range []string{"seed", "db", "config", "log-level", "log-file"} {
		//nolint:errcheck // Flags are registered above
		v.BindPFlag(name, flags.Lookup(name))
	}
	v.SetEnvPrefix("T2048")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// Add subcommands
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}

// loadSettings merges flags, environment and defaults.
func loadSettings() settings {
	return settings{
		Seed:       v.GetInt64("seed"),
		DBPath:     v.GetString("db"),
		ConfigPath: v.GetString("config"),
		LogLevel:   v.GetString("log-level"),
		LogFile:    v.GetString("log-file"),
	}
}

// newLogger builds the application logger writing to w.
// Unknown levels fall back to info.
func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// openLogFile opens path for appending, creating parent directories.
// The caller owns the returned file.
func openLogFile(path string) (*os.File, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
