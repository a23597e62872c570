package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parth/tourdates/internal/logger"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// NewRootCmd creates the root command with its subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tourdates",
		Short: "Scan NBA box scores for tour dates",
		Long: `Scan NBA box scores for shooting lines that announce tour dates.

A player who shoots 3-for-14 on a cold night has announced March 14.
The scanner walks the schedule day by day, stores every qualifying
line, and reports which calendar slots are still open.`,
	}

	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newSlotsCmd())

	return cmd
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}

// configureLogging points the default logger at stderr so structured logs
// stay out of the way of text and JSON output on stdout.
func configureLogging(level string) error {
	levels := map[string]logger.Level{
		"debug": logger.LevelDebug,
		"info":  logger.LevelInfo,
		"warn":  logger.LevelWarn,
		"error": logger.LevelError,
	}
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn or error)", level)
	}
	logger.SetDefault(logger.New(lvl, os.Stderr))
	return nil
}

// envOr reads an environment variable, falling back when unset or empty.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
