// tetris is Plastic Pollution Tetris: a falling-block game about scooping
// plastic out of the ocean, playable in the terminal or in a window.
//
// Usage:
//
//	tetris list              - List game modes
//	tetris play [mode]       - Play in the terminal (default: marathon)
//	tetris desktop [mode]    - Play in a desktop window with ambient audio
//	tetris menu              - Title menu to pick a mode interactively
//	tetris scores            - Show the best score per mode
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.plastic-tetris/scores.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - easy, normal, hard, fixed
//	--level <n>          - Starting level (overrides the difficulty's)
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/plastic-tetris/internal/config"
	"github.com/vovakirdan/plastic-tetris/internal/core"
	"github.com/vovakirdan/plastic-tetris/internal/games/tetris"
	"github.com/vovakirdan/plastic-tetris/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Plastic Pollution Tetris - clear the ocean one line at a time",
	Long: `Plastic Pollution Tetris is a falling-block puzzle where every piece is
a bit of ocean debris. Clear lines to scoop plastic out of the sea.

Available commands:
  list     - Show game modes
  play     - Play in the terminal
  desktop  - Play in a window with ambient surf
  menu     - Interactive title menu
  scores   - View best scores

Examples:
  tetris play
  tetris play endless --difficulty hard
  tetris desktop --level 5
  tetris menu --log-file tetris.log --log-level debug
  tetris scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.IntVar(&flagLevel, "level", 0, "Starting level (0 = from difficulty)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the CLI logger. When a TUI owns the terminal, logs only
// go to --log-file. The returned func closes the file.
func newLogger(ownsTerminal bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}

	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		logger := log.NewWithOptions(f, opts)
		logger.SetFormatter(log.LogfmtFormatter)
		return logger, func() { _ = f.Close() }, nil
	}

	if ownsTerminal {
		opts.Level = log.FatalLevel
	}
	return log.NewWithOptions(os.Stderr, opts), func() {}, nil
}

// loadGameConfig validates the config flags and hands them to the game
// package before any game is created.
func loadGameConfig() (config.TetrisConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if flagLevel != 0 && (flagLevel < 1 || flagLevel > cfg.Difficulty.MaxLevel) {
		return config.TetrisConfig{}, fmt.Errorf("--level %d not in [1,%d]: %w",
			flagLevel, cfg.Difficulty.MaxLevel, config.ErrInvalid)
	}

	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(flagDifficulty)
	tetris.SetStartLevel(flagLevel)
	return cfg, nil
}

// runtimeConfig builds the game runtime config for a w x h screen.
func runtimeConfig(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Failure is logged and play continues
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// gameIDFor maps a mode argument to a registered game ID.
func gameIDFor(args []string) (string, error) {
	if len(args) == 0 {
		return "tetris", nil
	}
	switch tetris.Mode(args[0]) {
	case tetris.ModeMarathon:
		return "tetris", nil
	case tetris.ModeEndless:
		return "tetris_endless", nil
	}
	return "", fmt.Errorf("unknown mode %q (want %s or %s)", args[0], tetris.ModeMarathon, tetris.ModeEndless)
}
