package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolves the configuration the same way 'play' does (--config, then
~/.tetris/configs/tetris.yaml, then ./configs/tetris.yaml, then the built-in
defaults) and prints it as YAML.

With --defaults it prints the annotated built-in file instead, ready to copy
to ~/.tetris/configs/tetris.yaml.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file")
}

func runConfig(cmd *cobra.Command, args []string) {
	logger, closeLog := commandLogger()
	defer closeLog()

	if flagDefaults {
		logger.Debug("printing built-in config")
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, source, err := config.LoadTetris(flagConfig)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)

	out, err := config.Marshal(cfg)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", source)
	fmt.Print(string(out))
}
