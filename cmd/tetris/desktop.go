package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/plastic-tetris/internal/platform/desktop"
	"github.com/vovakirdan/plastic-tetris/internal/registry"
)

var flagMute bool

var desktopCmd = &cobra.Command{
	Use:   "desktop [marathon|endless]",
	Short: "Play in a desktop window",
	Long: `Open a 1280x720 window with an ocean backdrop and generated surf.

Held Left/Right/Down keys auto-repeat using the config's das_ms and arr_ms.
Shift also holds. Closing the window or pressing Q quits.

Examples:
  tetris desktop
  tetris desktop endless --mute
  tetris desktop --difficulty easy --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDesktop,
}

func init() {
	desktopCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable ambient audio")
}

func runDesktop(_ *cobra.Command, args []string) error {
	gameID, err := gameIDFor(args)
	if err != nil {
		return err
	}
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	store := openStore(logger)
	defer store.Close()

	return desktop.Run(game, runtimeConfig(desktop.WindowWidth, desktop.WindowHeight), desktop.Options{
		Store:  store,
		Logger: logger,
		Mute:   flagMute,
		Timing: cfg.Timing,
	})
}
