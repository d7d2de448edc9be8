package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagMode       string
	flagSize       int
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start a game of 2048. Without --mode a mode menu is shown first.

Controls:
  Arrows/WASD  - Slide tiles
  1/U          - Undo
  2            - Shuffle
  3            - Remove lowest tile
  4            - Bomb all lowest tiles
  K            - Keep playing after a win
  N            - New game
  M            - Switch mode
  ?            - Full help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Fewer 4s, longer combo window, an extra use per power-up
  normal - Stock rules
  hard   - More 4s, shorter combo window, one use less per power-up

Examples:
  t2048 play
  t2048 play --mode zen
  t2048 play --mode timeAttack --difficulty hard
  t2048 play --size 5 --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Game mode: classic, timeAttack, zen")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (overrides config)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	opts := loadSettings()

	// Play owns the terminal, so logs go to a file
	var logOut io.Writer = io.Discard
	if f, err := openLogFile(opts.LogFile); err == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, opts.LogLevel)

	// Load and tune game config
	gameCfg, err := config.LoadT2048(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}
	config.ApplyT2048Preset(&gameCfg, preset)
	if flagSize > 0 {
		gameCfg.Board.Size = flagSize
	}
	rules := t2048.RulesFromConfig(gameCfg)

	// Get terminal size early for mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: rules.CountdownTick,
		Seed:     opts.Seed,
	}
	if !cfg.FitsBoard(rules.Size) {
		logger.Warn("terminal may be too small for the board", "size", rules.Size, "width", width, "height", height)
	}

	// Pick a mode
	mode := t2048.ModeClassic
	if flagMode != "" {
		parsed, ok := t2048.ParseMode(flagMode)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagMode)
			fmt.Fprintln(os.Stderr, "Run 't2048 modes' to see available modes.")
			os.Exit(1)
		}
		mode = parsed
	} else {
		selected, chosen, selErr := tui.RunModeSelector(mode, cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		// User pressed back or quit
		if !chosen {
			return
		}
		mode = selected
	}

	gameOpts := []t2048.Option{
		t2048.WithRules(rules),
		t2048.WithSeed(cfg.Seed),
		t2048.WithLogger(logger),
	}

	// Open score storage (optional - game works without it)
	store, err := storage.Open(opts.DBPath)
	if err != nil {
		logger.Warn("scores will not be saved", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		defer store.Close()
		gameOpts = append(gameOpts, t2048.WithStore(store))
	}

	game := t2048.New(mode, gameOpts...)
	logger.Info("starting", "mode", mode, "size", rules.Size, "difficulty", preset, "seed", cfg.Seed)

	if err := tui.Run(game, cfg); err != nil {
		logger.Error("ui exited", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	st := game.State()
	logger.Debug("final state", "score", st.Score, "moves", st.MoveCount)
	fmt.Printf("Score: %d  Best: %d\n", st.Score, st.BestScore)
}
