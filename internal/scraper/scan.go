package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/parth/tourdates/internal/logger"
	"github.com/parth/tourdates/internal/tourdate"
)

// ScanRange describes one scan: the season rows are tagged with, the
// inclusive date window to walk, and the game ids already recorded in
// earlier runs. Scan adds every game id it encounters to Seen, including
// games whose box score fetch fails, so a failed game is not retried
// within the same run.
type ScanRange struct {
	Season string
	Since  tourdate.Date
	Until  tourdate.Date
	Seen   map[string]bool
}

// Scanner walks a date window one day at a time, fetching each day's
// schedule page and each new game's box score, and hands every shooting
// line it finds to the caller. Fetch failures are logged and skipped;
// only context cancellation stops a scan.
type Scanner struct {
	fetcher   Fetcher
	extractor Extractor
	baseURL   string
}

// NewScanner wires a Scanner. A nil extractor selects the nba.com one and
// an empty baseURL selects the production site.
func NewScanner(fetcher Fetcher, extractor Extractor, baseURL string) *Scanner {
	if extractor == nil {
		extractor = NBAExtractor{}
	}
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Scanner{
		fetcher:   fetcher,
		extractor: extractor,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// Scan walks the range and calls emit for every candidate performance, in
// the order the site lists them. Callers apply eligibility themselves;
// emitted lines are candidates, not confirmed tour dates.
func (s *Scanner) Scan(ctx context.Context, r ScanRange, emit func(tourdate.Performance)) error {
	if r.Seen == nil {
		r.Seen = make(map[string]bool)
	}
	if emit == nil {
		emit = func(tourdate.Performance) {}
	}

	for day := r.Since; !day.After(r.Until.Time); day = day.Next() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("scan interrupted: %w", err)
		}
		logger.IncrCounter("scan.days")

		pageURL := s.scheduleURL(day)
		logger.Debug("fetching schedule", logger.Fields{"date": day.String(), "url": pageURL})
		document, err := s.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			logger.IncrCounter("scan.schedule_fetch_failures")
			logger.Warn("fetching schedule page", logger.Fields{
				"date":  day.String(),
				"error": err.Error(),
			})
			continue
		}

		for _, ref := range s.extractor.GameReferences(document, day) {
			if r.Seen[ref.GameID] {
				continue
			}
			r.Seen[ref.GameID] = true

			fetchStart := time.Now()
			box, err := s.fetcher.Fetch(ctx, s.boxScoreURL(ref.URL))
			if err != nil {
				logger.IncrCounter("scan.box_score_fetch_failures")
				logger.Warn("fetching box score", logger.Fields{
					"game_id": ref.GameID,
					"date":    ref.Date.String(),
					"error":   err.Error(),
				})
				continue
			}
			logger.RecordTiming("scan.box_score_fetch", time.Since(fetchStart))

			for _, line := range s.extractor.ShootingLines(box) {
				emit(tourdate.Performance{
					Season:       r.Season,
					PlayerName:   line.PlayerName,
					TeamAbbr:     line.TeamAbbr,
					OpponentAbbr: line.OpponentAbbr,
					GameID:       ref.GameID,
					GameDate:     ref.Date,
					FGM:          line.Made,
					FGA:          line.Attempted,
					FGPct:        line.Percent,
				})
			}
		}
	}
	return nil
}

// scheduleURL is the page listing every game played on day.
func (s *Scanner) scheduleURL(day tourdate.Date) string {
	return s.baseURL + "/games?date=" + day.String()
}

// boxScoreURL resolves a schedule link against the base URL and appends
// the box score path segment.
func (s *Scanner) boxScoreURL(href string) string {
	return strings.TrimRight(joinURL(s.baseURL, href), "/") + "/box-score"
}

func joinURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return b.ResolveReference(ref).String()
}
