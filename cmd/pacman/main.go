// pacman is a maze-chase arcade game for the terminal.
//
// Usage:
//
//	pacman                 - Start menu (play, high scores)
//	pacman play            - Play right away
//	pacman scores [--tui]  - Show high scores and run history
//	pacman config show     - Print the effective tuning file
//	pacman sim             - Run the simulation headless and print a summary
//
// Global flags:
//
//	--fps <rate>        - Display frame rate (default: 60)
//	--seed <value>      - RNG seed for reproducible ghosts
//	--db <path>         - Database path (default: ~/.arcade/scores.db)
//	--config <path>     - Tuning file (default: search order, then built-in)
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Maze-chase arcade game for your terminal",
	Long: `Steer through the maze, collect every item and stay away from the
ghosts. Power items turn the tables for a few seconds.

Controls:
  Arrows/WASD/HJKL - Steer
  P/Space/Esc      - Pause
  R                - Restart
  Ctrl+S           - Screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Examples:
  pacman
  pacman play --seed 42
  pacman scores --tui
  pacman sim --seconds 30 --seed 7`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Display frame rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the logger for a command. Full-screen commands would
// corrupt the display by writing to stderr, so they log only to --log-file.
// The returned func closes the log file.
func newLogger(fullScreen bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closer := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case fullScreen:
		w = io.Discard
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacman",
		Level:           level,
	})
	return logger, closer, nil
}

// runtimeConfig reads the terminal size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}

	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Config = flagConfig
	return cfg
}

// openStore opens the score database. Failures are logged and the game
// runs without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, pacman.ID, "Pac-Man", cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch res.Choice {
		case tui.ChoicePlay:
			game, err := registry.Create(pacman.ID)
			if err != nil {
				return err
			}
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			if err := tui.Run(game, store, cfg, logger); err != nil {
				return fmt.Errorf("run game: %w", err)
			}

		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(store, pacman.ID, "Pac-Man", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
