// Package calendar projects stored tour dates onto a twelve month wall
// calendar. A performance lands on the cell named by its shooting line
// (month from makes, day from attempts), not on the night it happened.
package calendar

import (
	"time"

	"github.com/parth/tourdates/internal/tourdate"
)

// Day is one cell of the wall calendar.
type Day struct {
	Day       int                    `json:"day"`
	Announced bool                   `json:"announced"`
	Entries   []tourdate.Performance `json:"entries,omitempty"`
}

// Month is one page of the wall calendar.
type Month struct {
	Month int    `json:"month"`
	Name  string `json:"name"`
	Days  []Day  `json:"days"`
}

// Build lays out the full grid for the given performances. Every month
// carries its complete run of days, with February fixed at 28, whether or
// not anything is announced. Entries within a cell keep the order they
// were passed in.
func Build(performances []tourdate.Performance) []Month {
	bySlot := make(map[tourdate.Slot][]tourdate.Performance)
	for _, p := range performances {
		bySlot[p.Slot()] = append(bySlot[p.Slot()], p)
	}

	months := make([]Month, 0, 12)
	for m := 1; m <= 12; m++ {
		days := make([]Day, 0, tourdate.DaysInMonth(m))
		for d := 1; d <= tourdate.DaysInMonth(m); d++ {
			entries := bySlot[tourdate.Slot{Month: m, Day: d}]
			days = append(days, Day{
				Day:       d,
				Announced: len(entries) > 0,
				Entries:   entries,
			})
		}
		months = append(months, Month{
			Month: m,
			Name:  time.Month(m).String(),
			Days:  days,
		})
	}
	return months
}

// MissingSlots lists every calendar cell not yet announced, in month then
// day order. With nothing known it returns all 365 cells.
func MissingSlots(known map[tourdate.Slot]bool) []tourdate.Slot {
	var missing []tourdate.Slot
	for m := 1; m <= 12; m++ {
		for d := 1; d <= tourdate.DaysInMonth(m); d++ {
			slot := tourdate.Slot{Month: m, Day: d}
			if !known[slot] {
				missing = append(missing, slot)
			}
		}
	}
	return missing
}
