package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/marcus/popup/internal/config"
	"github.com/spf13/cobra"
)

var (
	version string
	baseDir string

	logFile  string
	logLevel string

	cfg       *config.Config
	logger    = slog.New(slog.DiscardHandler)
	logCloser io.Closer
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "popup",
	Short: "Animated modal popup driven by a visibility state machine",
	Long: `popup - An animated modal overlay whose open/close lifecycle is a four-phase state machine.

closed → opening → opened → closing → closed. Requests that arrive mid-animation are ignored,
so exactly one fade plays per transition.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(getBaseDir())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		applyAppearanceFlags(cmd.Flags(), loaded)
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		cfg = loaded

		l, closer, err := newLogger(logFile, logLevel)
		if err != nil {
			return err
		}
		logger, logCloser = l, closer
		slog.SetDefault(logger)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)
	cobra.OnFinalize(closeLogger)

	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	addAppearanceFlags(rootCmd.PersistentFlags())
}

// closeLogger releases the --log-file handle. Runs after every command,
// including ones whose RunE failed.
func closeLogger() {
	if logCloser == nil {
		return
	}
	if err := logCloser.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: close log file: %v\n", err)
	}
	logCloser = nil
	logger = slog.New(slog.DiscardHandler)
	slog.SetDefault(logger)
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the directory holding .popup/config.json
func getBaseDir() string {
	return baseDir
}
