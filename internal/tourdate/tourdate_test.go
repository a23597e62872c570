package tourdate

import (
	"encoding/json"
	"testing"
	"time"
)

func samplePerformance() Performance {
	return Performance{
		Season:       "2025-26",
		PlayerName:   "Jordan Poole",
		TeamAbbr:     "WAS",
		OpponentAbbr: "BOS",
		GameID:       "0042400123",
		GameDate:     NewDate(2025, time.October, 24),
		FGM:          3,
		FGA:          14,
		FGPct:        0.214,
	}
}

func TestPerformanceKey(t *testing.T) {
	p := samplePerformance()
	expected := "2025-26|0042400123|Jordan Poole"
	if p.Key() != expected {
		t.Errorf("Key() = %q, expected %q", p.Key(), expected)
	}

	other := p
	other.PlayerName = "Someone Else"
	if p.Key() == other.Key() {
		t.Error("different players in the same game should have different keys")
	}
}

func TestPerformanceEligible(t *testing.T) {
	p := samplePerformance()
	if !p.Eligible() {
		t.Errorf("expected %d-%d at %v to be eligible", p.FGM, p.FGA, p.FGPct)
	}

	p.FGPct = 0.60
	if p.Eligible() {
		t.Error("expected a 60% line to be ineligible")
	}
}

func TestPerformanceSlot(t *testing.T) {
	p := samplePerformance()
	slot := p.Slot()
	if slot.Month != 3 || slot.Day != 14 {
		t.Errorf("Slot() = %+v, expected month 3 day 14", slot)
	}
	if slot.String() != "March 14" {
		t.Errorf("Slot.String() = %q, expected %q", slot.String(), "March 14")
	}
}

func TestPerformanceJSONShape(t *testing.T) {
	data, err := json.Marshal(samplePerformance())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	for _, field := range []string{
		"season", "player_name", "team_abbr", "opponent_abbr",
		"game_id", "game_date", "fgm", "fga", "fg_pct",
	} {
		if _, ok := decoded[field]; !ok {
			t.Errorf("expected field %q in JSON output", field)
		}
	}

	if decoded["game_date"] != "2025-10-24" {
		t.Errorf("game_date = %v, expected ISO date string", decoded["game_date"])
	}
}

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0.452, "45.2%"},
		{0.5, "50.0%"},
		{0.0, "0.0%"},
		{1.2, "120.0%"},
	}

	for _, tt := range tests {
		if got := FormatPercentage(tt.value); got != tt.expected {
			t.Errorf("FormatPercentage(%v) = %q, expected %q", tt.value, got, tt.expected)
		}
	}
}
