package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/parth/tourdates/internal/logger"
	"github.com/parth/tourdates/internal/scraper"
	"github.com/parth/tourdates/internal/storage"
	"github.com/parth/tourdates/internal/tourdate"
)

var (
	flagDB         string
	flagSeason     string
	flagSince      string
	flagUntil      string
	flagBaseURL    string
	flagFormat     string
	flagLogLevel   string
	flagExportJSON string
	flagDryRun     bool
	flagNoDelay    bool
)

// defaultSeasonStart is where a scan begins against an empty database.
var defaultSeasonStart = tourdate.NewDate(2025, time.October, 1)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the schedule for new tour dates",
		Long: `Walk the schedule one day at a time, fetch the box score of every game
not seen before, and store each qualifying shooting line.

The window defaults to the day after the most recent stored game
through today.`,
		RunE: runScan,
	}

	cmd.Flags().StringVar(&flagDB, "db", envOr("TOURDATES_DB", storage.DefaultPath), "Path to the SQLite database")
	cmd.Flags().StringVar(&flagSeason, "season", envOr("TOURDATES_SEASON", tourdate.DefaultSeason), "Season label for stored rows")
	cmd.Flags().StringVar(&flagSince, "since", "", "First date to scan (YYYY-MM-DD, default: day after last stored game)")
	cmd.Flags().StringVar(&flagUntil, "until", "", "Last date to scan (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&flagBaseURL, "base-url", envOr("TOURDATES_BASE_URL", scraper.BaseURL), "Site to scan")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn or error")
	cmd.Flags().StringVar(&flagExportJSON, "export-json", "", "Also write the run's tour dates to this file")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Report findings without writing to the database")
	cmd.Flags().BoolVar(&flagNoDelay, "no-delay", false, "Skip the politeness delay between requests")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	if err := configureLogging(flagLogLevel); err != nil {
		return err
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	ctx := cmd.Context()

	store, err := storage.Open(flagDB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	window, err := resolveWindow(ctx, store, flagSeason, flagSince, flagUntil)
	if err != nil {
		return err
	}

	seen, err := store.KnownGameIDs(ctx, flagSeason)
	if err != nil {
		return fmt.Errorf("loading known games: %w", err)
	}

	logger.SetGauge("scan.window_days", float64(window.Days()))
	logger.Info("Scanning for tour dates", logger.Fields{
		"season":      flagSeason,
		"since":       window.Since.String(),
		"until":       window.Until.String(),
		"known_games": len(seen),
		"dry_run":     flagDryRun,
	})

	var fetcher scraper.Fetcher = scraper.NewClient()
	if flagNoDelay {
		fetcher = scraper.NewClientNoDelay()
	}
	scanner := scraper.NewScanner(fetcher, nil, flagBaseURL)

	var candidates []tourdate.Performance
	start := time.Now()
	err = scanner.Scan(ctx, scraper.ScanRange{
		Season: flagSeason,
		Since:  window.Since,
		Until:  window.Until,
		Seen:   seen,
	}, func(p tourdate.Performance) {
		logger.IncrCounter("scan.candidates")
		candidates = append(candidates, p)
	})
	logger.RecordTiming("scan.duration", time.Since(start))
	if err != nil {
		return fmt.Errorf("scanning: %w", err)
	}

	var eligible []tourdate.Performance
	for _, p := range candidates {
		if p.Eligible() {
			eligible = append(eligible, p)
		}
	}
	SortPerformances(eligible)

	logger.Info("Found candidate performances", logger.Fields{
		"candidates": len(candidates),
		"valid":      len(eligible),
	})

	inserted := 0
	if !flagDryRun {
		inserted, err = store.UpsertPerformances(ctx, eligible)
		if err != nil {
			return fmt.Errorf("storing tour dates: %w", err)
		}
		logger.SetGauge("scan.inserted", float64(inserted))
		logger.Info("Inserted new tour dates", logger.Fields{"count": inserted})
	}

	if flagExportJSON != "" {
		if err := exportJSON(flagExportJSON, eligible); err != nil {
			return fmt.Errorf("exporting tour dates: %w", err)
		}
	}

	result := &ScanResult{
		ScannedAt:  time.Now().UTC(),
		Season:     flagSeason,
		Since:      window.Since,
		Until:      window.Until,
		Candidates: len(candidates),
		TourDates:  eligible,
		Inserted:   inserted,
		DryRun:     flagDryRun,
	}
	if err := WriteOutput(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// scanWindow is the resolved inclusive date range for one run.
type scanWindow struct {
	Since tourdate.Date
	Until tourdate.Date
}

// Days counts the calendar days the window covers, endpoints included.
func (w scanWindow) Days() int {
	return int(w.Until.Sub(w.Since.Time).Hours()/24) + 1
}

// resolveWindow applies flag overrides and defaults: scanning resumes the
// day after the most recent stored game, or at the season opener against
// an empty database, and runs through today.
func resolveWindow(ctx context.Context, store *storage.Store, season, since, until string) (scanWindow, error) {
	var w scanWindow

	if since != "" {
		d, err := tourdate.ParseDate(since)
		if err != nil {
			return w, fmt.Errorf("invalid --since: %w", err)
		}
		w.Since = d
	} else {
		latest, ok, err := store.LatestGameDate(ctx, season)
		if err != nil {
			return w, fmt.Errorf("finding last stored game: %w", err)
		}
		if ok {
			w.Since = latest.Next()
		} else {
			w.Since = defaultSeasonStart
		}
	}

	if until != "" {
		d, err := tourdate.ParseDate(until)
		if err != nil {
			return w, fmt.Errorf("invalid --until: %w", err)
		}
		w.Until = d
	} else {
		w.Until = tourdate.Today()
	}

	return w, nil
}
