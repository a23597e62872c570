package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parth/tourdates/internal/calendar"
	"github.com/parth/tourdates/internal/storage"
	"github.com/parth/tourdates/internal/tourdate"
)

var (
	flagSlotsDB     string
	flagSlotsSeason string
	flagSlotsFormat string
)

func newSlotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List calendar slots still waiting for a tour date",
		RunE:  runSlots,
	}

	cmd.Flags().StringVar(&flagSlotsDB, "db", envOr("TOURDATES_DB", storage.DefaultPath), "Path to the SQLite database")
	cmd.Flags().StringVar(&flagSlotsSeason, "season", envOr("TOURDATES_SEASON", tourdate.DefaultSeason), "Season to inspect")
	cmd.Flags().StringVar(&flagSlotsFormat, "format", "text", "Output format: text or json")

	return cmd
}

func runSlots(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagSlotsFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagSlotsFormat)
	}

	store, err := storage.Open(flagSlotsDB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	known, err := store.KnownSlots(cmd.Context(), flagSlotsSeason)
	if err != nil {
		return fmt.Errorf("loading announced slots: %w", err)
	}

	result := &SlotsResult{
		Season:    flagSlotsSeason,
		Announced: len(known),
		Missing:   calendar.MissingSlots(known),
	}
	if err := WriteSlots(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
