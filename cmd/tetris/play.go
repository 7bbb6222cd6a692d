package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/plastic-tetris/internal/platform/tui"
	"github.com/vovakirdan/plastic-tetris/internal/registry"
)

var flagBell bool

var playCmd = &cobra.Command{
	Use:   "play [marathon|endless]",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/Right/A/D  - Move
  Up/X, Z         - Rotate clockwise / counter-clockwise
  Down/S          - Soft drop
  Space           - Hard drop
  C               - Hold
  P/Esc           - Pause
  Enter           - Start
  R               - Play again (after game over)
  B               - Back to title
  Ctrl+S          - Screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Start at level 1 with the ghost piece on
  normal - Start at level 5 (default)
  hard   - Start at level 10 with a shorter lock delay
  fixed  - No level progression

Examples:
  tetris play
  tetris play endless
  tetris play --difficulty hard --bell
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on line clears")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := gameIDFor(args)
	if err != nil {
		return err
	}
	if _, err := loadGameConfig(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	store := openStore(logger)
	defer store.Close()

	logger.Info("starting", "game", gameID, "front_end", "tui")
	if err := tui.Run(game, runtimeConfig(width, height), tui.Options{
		Store:  store,
		Logger: logger,
		Bell:   flagBell,
	}); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
