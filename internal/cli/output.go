package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/parth/tourdates/internal/tourdate"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ScanResult contains what one scan run found.
type ScanResult struct {
	ScannedAt  time.Time              `json:"scanned_at"`
	Season     string                 `json:"season"`
	Since      tourdate.Date          `json:"since"`
	Until      tourdate.Date          `json:"until"`
	Candidates int                    `json:"candidates"`
	TourDates  []tourdate.Performance `json:"tour_dates"`
	Inserted   int                    `json:"inserted"`
	DryRun     bool                   `json:"dry_run,omitempty"`
}

// WriteOutput writes the scan result in the specified format.
func WriteOutput(w io.Writer, result *ScanResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeScanText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeScanText outputs scan results as human-readable text
func writeScanText(w io.Writer, result *ScanResult) error {
	if len(result.TourDates) == 0 {
		fmt.Fprintln(w, "No new tour dates found.")
		return nil
	}

	for _, p := range result.TourDates {
		fmt.Fprintf(w, "%s: %s (%s vs %s) went %d-for-%d (%s), announcing %s\n",
			p.GameDate, p.PlayerName, p.TeamAbbr, p.OpponentAbbr,
			p.FGM, p.FGA, tourdate.FormatPercentage(p.FGPct), p.Slot())
	}

	if result.DryRun {
		fmt.Fprintf(w, "\nTotal: %d tour dates from %d candidates (dry run, nothing stored)\n",
			len(result.TourDates), result.Candidates)
	} else {
		fmt.Fprintf(w, "\nTotal: %d tour dates from %d candidates, %d stored\n",
			len(result.TourDates), result.Candidates, result.Inserted)
	}
	return nil
}

// SlotsResult contains the open-slot report.
type SlotsResult struct {
	Season    string          `json:"season"`
	Announced int             `json:"announced"`
	Missing   []tourdate.Slot `json:"missing"`
}

// WriteSlots writes the open-slot report in the specified format.
func WriteSlots(w io.Writer, result *SlotsResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeSlotsText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeSlotsText groups the open days under their month
func writeSlotsText(w io.Writer, result *SlotsResult) error {
	if len(result.Missing) == 0 {
		fmt.Fprintln(w, "Every calendar slot is announced.")
		return nil
	}

	fmt.Fprintf(w, "Season %s: %d slots announced, %d still open\n",
		result.Season, result.Announced, len(result.Missing))

	current := 0
	for _, slot := range result.Missing {
		if slot.Month != current {
			current = slot.Month
			fmt.Fprintf(w, "\n%s:", time.Month(current))
		}
		fmt.Fprintf(w, " %d", slot.Day)
	}
	fmt.Fprintln(w)
	return nil
}

// exportJSON writes the run's tour dates to path for downstream tooling.
func exportJSON(path string, performances []tourdate.Performance) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(performances); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return nil
}
