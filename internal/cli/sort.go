package cli

import (
	"sort"
	"strings"

	"github.com/parth/tourdates/internal/tourdate"
)

// SortPerformances orders tour dates by game date, then case-insensitive
// player name, then game id, so reports are stable across runs.
func SortPerformances(performances []tourdate.Performance) {
	sort.Slice(performances, func(i, j int) bool {
		a, b := performances[i], performances[j]
		if !a.GameDate.Equal(b.GameDate.Time) {
			return a.GameDate.Before(b.GameDate.Time)
		}
		nameA, nameB := strings.ToLower(a.PlayerName), strings.ToLower(b.PlayerName)
		if nameA != nameB {
			return nameA < nameB
		}
		return a.GameID < b.GameID
	})
}
