package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/plastic-tetris/internal/platform/tui"
	"github.com/vovakirdan/plastic-tetris/internal/registry"
	"github.com/vovakirdan/plastic-tetris/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score per mode",
	Long: `Display the stored best score for each game mode.

Examples:
  tetris scores
  tetris scores --clear
  tetris scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the stored best of every mode")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagClearScores {
		for _, g := range registry.List() {
			if err := store.ClearScores(g.ID); err != nil {
				return err
			}
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	rows, err := tui.LoadScoreRows(store)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores - Plastic Pollution Tetris")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-32s  %-10s  %s\n", "Mode", "Best", "Set")
	fmt.Fprintf(out, "  %-32s  %-10s  %s\n", "----", "----", "---")

	for _, row := range rows {
		if row.Updated == "" {
			fmt.Fprintf(out, "  %-32s  %-10s  %s\n", row.Title, "-", "-")
			continue
		}
		fmt.Fprintf(out, "  %-32s  %-10d  %s\n", row.Title, row.Best, row.Updated)
	}
	return nil
}
