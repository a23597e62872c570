package storage

import (
	"context"
	"fmt"

	"github.com/parth/tourdates/internal/tourdate"
)

// UpsertPerformances writes eligible performances, replacing the shooting
// line of any row already stored under the same (season, game id, player)
// key. Ineligible candidates are filtered out here as a final guard, so
// callers may pass raw scan output. Returns the number of eligible rows
// written, counting replacements as well as inserts.
func (s *Store) UpsertPerformances(ctx context.Context, performances []tourdate.Performance) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tour_dates (season, player_name, team_abbr, opponent_abbr, game_id, game_date, fgm, fga, fg_pct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (season, game_id, player_name) DO UPDATE SET
			fgm = excluded.fgm,
			fga = excluded.fga,
			fg_pct = excluded.fg_pct
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	written := 0
	for _, p := range performances {
		if !p.Eligible() {
			continue
		}
		_, err := stmt.ExecContext(ctx,
			p.Season, p.PlayerName, p.TeamAbbr, p.OpponentAbbr,
			p.GameID, p.GameDate.String(), p.FGM, p.FGA, p.FGPct)
		if err != nil {
			return 0, fmt.Errorf("upserting %s: %w", p.Key(), err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return written, nil
}

// SeedPerformances inserts starter rows, leaving any row that already
// exists untouched. Ineligible rows are skipped. Returns the number of
// rows actually inserted.
func (s *Store) SeedPerformances(ctx context.Context, performances []tourdate.Performance) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tour_dates (season, player_name, team_abbr, opponent_abbr, game_id, game_date, fgm, fga, fg_pct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (season, game_id, player_name) DO NOTHING
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing seed insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, p := range performances {
		if !p.Eligible() {
			continue
		}
		res, err := stmt.ExecContext(ctx,
			p.Season, p.PlayerName, p.TeamAbbr, p.OpponentAbbr,
			p.GameID, p.GameDate.String(), p.FGM, p.FGA, p.FGPct)
		if err != nil {
			return 0, fmt.Errorf("seeding %s: %w", p.Key(), err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("counting seeded rows: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return inserted, nil
}
