package tourdate

import "testing"

func TestTeamAbbreviation(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		known    bool
	}{
		{"Boston Celtics", "BOS", true},
		{"LA Clippers", "LAC", true},
		{"Philadelphia 76ers", "PHI", true},
		{"  Utah Jazz  ", "UTA", true}, // surrounding whitespace is tolerated
		{"Los Angeles Clippers", "", false},
		{"Seattle SuperSonics", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			abbr, ok := TeamAbbreviation(tt.name)
			if ok != tt.known {
				t.Fatalf("TeamAbbreviation(%q) ok = %v, expected %v", tt.name, ok, tt.known)
			}
			if abbr != tt.expected {
				t.Errorf("TeamAbbreviation(%q) = %q, expected %q", tt.name, abbr, tt.expected)
			}
		})
	}
}

func TestTeamAbbreviationCoversAllThirty(t *testing.T) {
	if len(teamAbbreviations) != 30 {
		t.Errorf("expected 30 teams, got %d", len(teamAbbreviations))
	}

	seen := make(map[string]bool)
	for name, abbr := range teamAbbreviations {
		if len(abbr) != 3 {
			t.Errorf("abbreviation for %q is %q, expected three letters", name, abbr)
		}
		if seen[abbr] {
			t.Errorf("abbreviation %q appears twice", abbr)
		}
		seen[abbr] = true
	}
}
