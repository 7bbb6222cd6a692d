package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/plastic-tetris/internal/config"
	"github.com/vovakirdan/plastic-tetris/internal/games/tetris"
	"github.com/vovakirdan/plastic-tetris/internal/platform/tui"
	"github.com/vovakirdan/plastic-tetris/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Pick Marathon or Endless, cycle the difficulty with Left/Right, or open the
high score table. After a game ends you return to the menu.

Controls:
  Up/Down/j/k   - Navigate menu
  Left/Right    - Change difficulty
  Enter/Space   - Select
  Tab           - High scores
  Q             - Quit

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on line clears")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if _, err := loadGameConfig(); err != nil {
		return err
	}
	difficulty, _ := config.ParsePreset(flagDifficulty)

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	defer store.Close()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	cfg := runtimeConfig(width, height)

	for {
		menuResult, err := tui.RunMenu(store, cfg, difficulty)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = menuResult.Config
		difficulty = menuResult.Difficulty

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return fmt.Errorf("scoreboard: %w", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		tetris.SetDifficultyPreset(string(difficulty))
		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return fmt.Errorf("create game: %w", err)
		}

		logger.Info("starting", "game", menuResult.GameID, "difficulty", difficulty, "front_end", "menu")
		if err := tui.Run(game, cfg, tui.Options{Store: store, Logger: logger, Bell: flagBell}); err != nil {
			return fmt.Errorf("run game: %w", err)
		}
	}
}
