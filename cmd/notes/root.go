// ABOUTME: Root command wiring configuration, logging, and the note store.
// ABOUTME: Runs the interactive menu when invoked without a subcommand.

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/notes/internal/config"
	"github.com/harper/notes/internal/store"
)

var (
	cfg       *config.Config
	logger    *log.Logger
	noteStore *store.Store

	configFile string
	verbose    bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "Keep short text notes in a local JSON file",
	Long: `notes stores short text notes in a single JSON file.

Run without arguments for the interactive menu, or use a subcommand.`,
	Version:       fmt.Sprintf("%s (%s, %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}

		var err error
		cfg, err = config.Load(configFile, cmd.Flags())
		if err != nil {
			return err
		}

		logger, err = newLogger(cfg.LogLevel, verbose)
		if err != nil {
			return err
		}

		noteStore, err = store.Open(cfg.File,
			store.WithLogger(logger),
			store.WithIDStrategy(cfg.Strategy()),
		)
		if err != nil {
			return fmt.Errorf("failed to open notes: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(noteStore, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func newLogger(level string, verbose bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if verbose {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  lvl,
		Prefix: "notes",
	}), nil
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().String("file", "", "notes file (default $XDG_DATA_HOME/notes/notes.json)")
	rootCmd.PersistentFlags().String("id-strategy", "", "id assignment: length or monotonic")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/notes/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}
