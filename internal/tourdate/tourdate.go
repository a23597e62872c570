package tourdate

import (
	"fmt"
	"time"
)

// DefaultSeason labels rows when no season override is given.
const DefaultSeason = "2025-26"

// Performance represents one player's shooting line in one game. The JSON
// shape doubles as the export format and the web API payload.
type Performance struct {
	Season       string  `json:"season"`
	PlayerName   string  `json:"player_name"`
	TeamAbbr     string  `json:"team_abbr"`
	OpponentAbbr string  `json:"opponent_abbr"`
	GameID       string  `json:"game_id"`
	GameDate     Date    `json:"game_date"`
	FGM          int     `json:"fgm"`
	FGA          int     `json:"fga"`
	FGPct        float64 `json:"fg_pct"`
}

// Key returns the natural identity used for dedup and persistence: the store
// keeps at most one row per (season, game id, player name).
func (p Performance) Key() string {
	return p.Season + "|" + p.GameID + "|" + p.PlayerName
}

// Eligible reports whether this line qualifies as a tour date.
func (p Performance) Eligible() bool {
	return IsEligible(p.FGM, p.FGA, p.FGPct)
}

// Slot returns the calendar cell this performance announces, reading FGM as
// the month and FGA as the day. Only meaningful when Eligible is true.
func (p Performance) Slot() Slot {
	return Slot{Month: p.FGM, Day: p.FGA}
}

// GameReference points at one game discovered on a schedule page. It lives
// only for the scan iteration that decides whether to fetch the box score.
type GameReference struct {
	GameID string
	URL    string
	Date   Date
}

// Slot is a (month, day) calendar cell. It serves both as the target of the
// eligibility rule and as a grid position in the calendar projection.
type Slot struct {
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (s Slot) String() string {
	return fmt.Sprintf("%s %d", time.Month(s.Month), s.Day)
}

// FormatPercentage renders a fraction for display, e.g. 0.452 as "45.2%".
func FormatPercentage(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
