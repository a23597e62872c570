package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/parth/tourdates/internal/storage"
	"github.com/parth/tourdates/internal/tourdate"
)

func newTestServer(t *testing.T) (*Server, *storage.Store) {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "tourdates.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	srv, err := NewServer(store, "2025-26")
	if err != nil {
		t.Fatalf("NewServer() failed: %v", err)
	}
	return srv, store
}

func seedTestData(t *testing.T, store *storage.Store) {
	t.Helper()

	_, err := store.UpsertPerformances(context.Background(), []tourdate.Performance{
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
	})
	if err != nil {
		t.Fatalf("UpsertPerformances() failed: %v", err)
	}
}

func TestHandleIndex(t *testing.T) {
	srv, store := newTestServer(t)
	seedTestData(t, store)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}

	body := rec.Body.String()
	for _, want := range []string{"2025-26", "Jordan Poole", "21.4%", "March", "Just announced"} {
		if !strings.Contains(body, want) {
			t.Errorf("index page missing %q", want)
		}
	}

	// Aldama's game is the most recent, so he leads the announcements.
	if strings.Index(body, "Santi Aldama") > strings.Index(body, "Jordan Poole") {
		t.Error("recent announcements are not newest first")
	}
}

func TestHandleCalendar(t *testing.T) {
	srv, store := newTestServer(t)
	seedTestData(t, store)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/calendar", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/calendar status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp calendarResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Season != "2025-26" {
		t.Errorf("season = %q, want 2025-26", resp.Season)
	}
	if len(resp.Months) != 12 {
		t.Fatalf("calendar has %d months, want 12", len(resp.Months))
	}

	march := resp.Months[2]
	day := march.Days[13]
	if !day.Announced {
		t.Error("March 14 should be announced")
	}
	if len(day.Entries) != 1 || day.Entries[0].PlayerName != "Jordan Poole" {
		t.Errorf("March 14 entries = %v, want Jordan Poole", day.Entries)
	}
	if february := resp.Months[1]; len(february.Days) != 28 {
		t.Errorf("February has %d days, want 28", len(february.Days))
	}
}

func TestHandleCalendar_Empty(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/calendar", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/calendar status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp calendarResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(resp.Months) != 12 {
		t.Errorf("empty calendar has %d months, want 12", len(resp.Months))
	}
	for _, m := range resp.Months {
		for _, d := range m.Days {
			if d.Announced {
				t.Fatalf("%s %d announced in an empty calendar", m.Name, d.Day)
			}
		}
	}
}

func TestHandleRecent(t *testing.T) {
	srv, store := newTestServer(t)
	seedTestData(t, store)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/recent?limit=1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/recent status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp recentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(resp.TourDates) != 1 {
		t.Fatalf("recent returned %d tour dates, want 1", len(resp.TourDates))
	}
	if resp.TourDates[0].PlayerName != "Santi Aldama" {
		t.Errorf("most recent tour date = %q, want Santi Aldama", resp.TourDates[0].PlayerName)
	}
}

func TestHandleRecent_InvalidLimit(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, query := range []string{"?limit=abc", "?limit=0", "?limit=-3"} {
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/recent"+query, nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("GET /api/recent%s status = %d, want %d", query, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestHandleHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /healthz status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want ok", resp["status"])
	}
}

func TestRouter_CORS(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Error("expected CORS headers on cross-origin request")
	}
}
