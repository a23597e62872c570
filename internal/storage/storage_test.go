package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parth/tourdates/internal/tourdate"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "tourdates.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// Two eligible lines and one that shoots too well to qualify.
func testPerformances() []tourdate.Performance {
	return []tourdate.Performance{
		{
			Season: "2025-26", PlayerName: "Jordan Poole", TeamAbbr: "WAS", OpponentAbbr: "BOS",
			GameID: "0022500010", GameDate: tourdate.NewDate(2025, time.October, 24),
			FGM: 3, FGA: 14, FGPct: 0.214,
		},
		{
			Season: "2025-26", PlayerName: "Santi Aldama", TeamAbbr: "MEM", OpponentAbbr: "MIA",
			GameID: "0022500011", GameDate: tourdate.NewDate(2025, time.October, 25),
			FGM: 2, FGA: 5, FGPct: 0.4,
		},
		{
			Season: "2025-26", PlayerName: "Bam Adebayo", TeamAbbr: "MIA", OpponentAbbr: "MEM",
			GameID: "0022500011", GameDate: tourdate.NewDate(2025, time.October, 25),
			FGM: 8, FGA: 15, FGPct: 0.533,
		},
	}
}

func TestUpsertPerformances(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	written, err := s.UpsertPerformances(ctx, testPerformances())
	if err != nil {
		t.Fatalf("UpsertPerformances() failed: %v", err)
	}
	if written != 2 {
		t.Errorf("UpsertPerformances() wrote %d rows, want 2 (ineligible line filtered)", written)
	}

	stored, err := s.PerformancesBySeason(ctx, "2025-26")
	if err != nil {
		t.Fatalf("PerformancesBySeason() failed: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("stored %d rows, want 2", len(stored))
	}

	// Chronological order: Poole's game predates Aldama's.
	if stored[0].PlayerName != "Jordan Poole" {
		t.Errorf("first stored row = %q, want Jordan Poole", stored[0].PlayerName)
	}
	if stored[0].GameDate.String() != "2025-10-24" {
		t.Errorf("first stored date = %s, want 2025-10-24", stored[0].GameDate)
	}
	if stored[1].PlayerName != "Santi Aldama" {
		t.Errorf("second stored row = %q, want Santi Aldama", stored[1].PlayerName)
	}
}

func TestUpsertPerformances_Idempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.UpsertPerformances(ctx, testPerformances()); err != nil {
		t.Fatalf("first UpsertPerformances() failed: %v", err)
	}
	written, err := s.UpsertPerformances(ctx, testPerformances())
	if err != nil {
		t.Fatalf("second UpsertPerformances() failed: %v", err)
	}
	if written != 2 {
		t.Errorf("second UpsertPerformances() wrote %d rows, want 2", written)
	}

	stored, err := s.PerformancesBySeason(ctx, "2025-26")
	if err != nil {
		t.Fatalf("PerformancesBySeason() failed: %v", err)
	}
	if len(stored) != 2 {
		t.Errorf("stored %d rows after repeat upsert, want 2", len(stored))
	}
}

func TestUpsertPerformances_ReplacesShootingLine(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	original := testPerformances()[:1]
	if _, err := s.UpsertPerformances(ctx, original); err != nil {
		t.Fatalf("UpsertPerformances() failed: %v", err)
	}

	corrected := original[0]
	corrected.FGA = 13
	corrected.FGPct = 0.231
	if _, err := s.UpsertPerformances(ctx, []tourdate.Performance{corrected}); err != nil {
		t.Fatalf("UpsertPerformances() failed: %v", err)
	}

	stored, err := s.PerformancesBySeason(ctx, "2025-26")
	if err != nil {
		t.Fatalf("PerformancesBySeason() failed: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("stored %d rows, want 1", len(stored))
	}
	if stored[0].FGA != 13 {
		t.Errorf("stored FGA = %d, want 13 after correction", stored[0].FGA)
	}
	if stored[0].FGPct != 0.231 {
		t.Errorf("stored FGPct = %v, want 0.231 after correction", stored[0].FGPct)
	}
}

func TestSeedPerformances(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	inserted, err := s.SeedPerformances(ctx, testPerformances())
	if err != nil {
		t.Fatalf("SeedPerformances() failed: %v", err)
	}
	if inserted != 2 {
		t.Errorf("SeedPerformances() inserted %d rows, want 2", inserted)
	}

	// Seeding again must not touch existing rows.
	changed := testPerformances()
	changed[0].FGA = 12
	inserted, err = s.SeedPerformances(ctx, changed)
	if err != nil {
		t.Fatalf("second SeedPerformances() failed: %v", err)
	}
	if inserted != 0 {
		t.Errorf("second SeedPerformances() inserted %d rows, want 0", inserted)
	}

	stored, err := s.PerformancesBySeason(ctx, "2025-26")
	if err != nil {
		t.Fatalf("PerformancesBySeason() failed: %v", err)
	}
	if stored[0].FGA != 14 {
		t.Errorf("stored FGA = %d, want original 14 after repeat seed", stored[0].FGA)
	}
}

func TestKnownGameIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	performances := testPerformances()
	other := performances[0]
	other.Season = "2024-25"
	other.GameID = "0022400099"
	if _, err := s.UpsertPerformances(ctx, append(performances, other)); err != nil {
		t.Fatalf("UpsertPerformances() failed: %v", err)
	}

	known, err := s.KnownGameIDs(ctx, "2025-26")
	if err != nil {
		t.Fatalf("KnownGameIDs() failed: %v", err)
	}
	if len(known) != 2 {
		t.Errorf("KnownGameIDs() returned %d ids, want 2", len(known))
	}
	if !known["0022500010"] || !known["0022500011"] {
		t.Errorf("KnownGameIDs() = %v, missing expected ids", known)
	}
	if known["0022400099"] {
		t.Error("KnownGameIDs() leaked an id from another season")
	}
}

func TestKnownSlots(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.UpsertPerformances(ctx, testPerformances()); err != nil {
		t.Fatalf("UpsertPerformances() failed: %v", err)
	}

	known, err := s.KnownSlots(ctx, "2025-26")
	if err != nil {
		t.Fatalf("KnownSlots() failed: %v", err)
	}
	if len(known) != 2 {
		t.Errorf("KnownSlots() returned %d slots, want 2", len(known))
	}
	if !known[tourdate.Slot{Month: 3, Day: 14}] {
		t.Error("expected slot March 14 to be known")
	}
	if !known[tourdate.Slot{Month: 2, Day: 5}] {
		t.Error("expected slot February 5 to be known")
	}
}

func TestLatestGameDate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, ok, err := s.LatestGameDate(ctx, "2025-26"); err != nil {
		t.Fatalf("LatestGameDate() failed: %v", err)
	} else if ok {
		t.Error("LatestGameDate() reported a date for an empty store")
	}

	if _, err := s.UpsertPerformances(ctx, testPerformances()); err != nil {
		t.Fatalf("UpsertPerformances() failed: %v", err)
	}

	latest, ok, err := s.LatestGameDate(ctx, "2025-26")
	if err != nil {
		t.Fatalf("LatestGameDate() failed: %v", err)
	}
	if !ok {
		t.Fatal("LatestGameDate() found no rows after upsert")
	}
	if latest.String() != "2025-10-25" {
		t.Errorf("LatestGameDate() = %s, want 2025-10-25", latest)
	}
}

func TestRecentPerformances(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.UpsertPerformances(ctx, testPerformances()); err != nil {
		t.Fatalf("UpsertPerformances() failed: %v", err)
	}

	recent, err := s.RecentPerformances(ctx, "2025-26", 1)
	if err != nil {
		t.Fatalf("RecentPerformances() failed: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("RecentPerformances() returned %d rows, want 1", len(recent))
	}
	if recent[0].PlayerName != "Santi Aldama" {
		t.Errorf("most recent row = %q, want Santi Aldama", recent[0].PlayerName)
	}

	// A non-positive limit falls back to the default.
	recent, err = s.RecentPerformances(ctx, "2025-26", 0)
	if err != nil {
		t.Fatalf("RecentPerformances() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("RecentPerformances() with default limit returned %d rows, want 2", len(recent))
	}
	if recent[0].GameDate.Before(recent[1].GameDate.Time) {
		t.Error("RecentPerformances() rows are not newest first")
	}
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "tourdates.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file missing: %v", err)
	}
}

func TestInitialise(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tourdates.db")
	ctx := context.Background()

	s, err := Initialise(path, false)
	if err != nil {
		t.Fatalf("Initialise() failed: %v", err)
	}
	if _, err := s.UpsertPerformances(ctx, testPerformances()); err != nil {
		t.Fatalf("UpsertPerformances() failed: %v", err)
	}
	s.Close()

	// Without force, an existing database is refused.
	if _, err := Initialise(path, false); err == nil {
		t.Fatal("Initialise() succeeded against an existing database without force")
	}

	// With force, the database starts over.
	s, err = Initialise(path, true)
	if err != nil {
		t.Fatalf("Initialise(force) failed: %v", err)
	}
	defer s.Close()
	stored, err := s.PerformancesBySeason(ctx, "2025-26")
	if err != nil {
		t.Fatalf("PerformancesBySeason() failed: %v", err)
	}
	if len(stored) != 0 {
		t.Errorf("stored %d rows after forced initialise, want 0", len(stored))
	}
}
