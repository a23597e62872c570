package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/parth/tourdates/internal/tourdate"
)

const performanceColumns = "season, player_name, team_abbr, opponent_abbr, game_id, game_date, fgm, fga, fg_pct"

// KnownGameIDs returns every game id already stored for the season. The
// scanner seeds its dedup set with this so finished games are not fetched
// again on later runs.
func (s *Store) KnownGameIDs(ctx context.Context, season string) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT game_id FROM tour_dates WHERE season = ?`, season)
	if err != nil {
		return nil, fmt.Errorf("querying known game ids: %w", err)
	}
	defer rows.Close()

	known := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning game id: %w", err)
		}
		known[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading game ids: %w", err)
	}
	return known, nil
}

// KnownSlots returns the calendar cells already announced for the season.
func (s *Store) KnownSlots(ctx context.Context, season string) (map[tourdate.Slot]bool, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT fgm, fga FROM tour_dates WHERE season = ?`, season)
	if err != nil {
		return nil, fmt.Errorf("querying known slots: %w", err)
	}
	defer rows.Close()

	known := make(map[tourdate.Slot]bool)
	for rows.Next() {
		var slot tourdate.Slot
		if err := rows.Scan(&slot.Month, &slot.Day); err != nil {
			return nil, fmt.Errorf("scanning slot: %w", err)
		}
		known[slot] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading slots: %w", err)
	}
	return known, nil
}

// LatestGameDate returns the most recent game date stored for the season.
// The second return reports whether any row exists.
func (s *Store) LatestGameDate(ctx context.Context, season string) (tourdate.Date, bool, error) {
	var latest sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT MAX(game_date) FROM tour_dates WHERE season = ?`, season).Scan(&latest)
	if err != nil {
		return tourdate.Date{}, false, fmt.Errorf("querying latest game date: %w", err)
	}
	if !latest.Valid {
		return tourdate.Date{}, false, nil
	}
	d, err := tourdate.ParseDate(latest.String)
	if err != nil {
		return tourdate.Date{}, false, fmt.Errorf("parsing stored game date: %w", err)
	}
	return d, true, nil
}

// PerformancesBySeason returns every stored tour date for the season in
// chronological order, players in name order within a date.
func (s *Store) PerformancesBySeason(ctx context.Context, season string) ([]tourdate.Performance, error) {
	return s.queryPerformances(ctx, `
		SELECT `+performanceColumns+`
		FROM tour_dates
		WHERE season = ?
		ORDER BY game_date ASC, player_name ASC
	`, season)
}

// RecentPerformances returns the latest stored tour dates, newest first.
// A non-positive limit selects a default of ten rows.
func (s *Store) RecentPerformances(ctx context.Context, season string, limit int) ([]tourdate.Performance, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryPerformances(ctx, `
		SELECT `+performanceColumns+`
		FROM tour_dates
		WHERE season = ?
		ORDER BY game_date DESC, player_name ASC
		LIMIT ?
	`, season, limit)
}

func (s *Store) queryPerformances(ctx context.Context, query string, args ...any) ([]tourdate.Performance, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying performances: %w", err)
	}
	defer rows.Close()

	var performances []tourdate.Performance
	for rows.Next() {
		var p tourdate.Performance
		var date string
		err := rows.Scan(&p.Season, &p.PlayerName, &p.TeamAbbr, &p.OpponentAbbr,
			&p.GameID, &date, &p.FGM, &p.FGA, &p.FGPct)
		if err != nil {
			return nil, fmt.Errorf("scanning performance: %w", err)
		}
		d, err := tourdate.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("parsing stored game date: %w", err)
		}
		p.GameDate = d
		performances = append(performances, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading performances: %w", err)
	}
	return performances, nil
}
