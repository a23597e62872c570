package main

import (
	"fmt"
	"time"

	"github.com/parth/tourdates/internal/calendar"
	"github.com/parth/tourdates/internal/tourdate"
)

func main() {
	// A few sample performances to project onto the calendar
	performances := []tourdate.Performance{
		{
			Season: "2025-26", PlayerName: "Jordan Poole", TeamAbbr: "WAS", OpponentAbbr: "DAL",
			GameID: "0022500012", GameDate: tourdate.NewDate(2025, time.October, 24),
			FGM: 3, FGA: 14, FGPct: 0.214,
		},
		{
			Season: "2025-26", PlayerName: "Cole Anthony", TeamAbbr: "MIL", OpponentAbbr: "CLE",
			GameID: "0022500031", GameDate: tourdate.NewDate(2025, time.October, 28),
			FGM: 2, FGA: 9, FGPct: 0.222,
		},
		{
			Season: "2025-26", PlayerName: "Josh Giddey", TeamAbbr: "CHI", OpponentAbbr: "NYK",
			GameID: "0022500044", GameDate: tourdate.NewDate(2025, time.November, 1),
			FGM: 5, FGA: 12, FGPct: 0.417,
		},
	}

	months := calendar.Build(performances)

	fmt.Printf("✅ Built a calendar from %d sample performances\n\n", len(performances))
	fmt.Println("Announced dates:")
	announced := 0
	for _, month := range months {
		for _, day := range month.Days {
			if !day.Announced {
				continue
			}
			announced++
			for _, entry := range day.Entries {
				fmt.Printf("  %s %d: %s went %d-for-%d (%s) vs %s\n",
					month.Name, day.Day, entry.PlayerName,
					entry.FGM, entry.FGA, tourdate.FormatPercentage(entry.FGPct),
					entry.OpponentAbbr)
			}
		}
	}

	known := make(map[tourdate.Slot]bool)
	for _, p := range performances {
		known[p.Slot()] = true
	}
	missing := calendar.MissingSlots(known)

	fmt.Printf("\n%d of %d calendar slots announced, %d still open\n",
		announced, announced+len(missing), len(missing))
}
