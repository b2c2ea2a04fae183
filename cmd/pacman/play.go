package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play right away",
	Long: `Start a run without the menu. The run waits on a READY screen until the
first steering key or Enter.

Examples:
  pacman play
  pacman play --seed 42 --fps 30
  pacman play --config ./my-pacman.yaml --log-file pacman.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(pacman.ID)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	logger.Debug("starting run", "seed", cfg.Seed, "fps", cfg.TickRate, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	if err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
