package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the tuning file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective tuning",
	Long: `Print the tuning the game would run with, as YAML, and where it was
loaded from. Save the output to ~/.arcade/configs/pacman.yaml to customize it.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, source, err := config.LoadPacman(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
