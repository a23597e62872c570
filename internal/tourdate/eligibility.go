package tourdate

// monthDayLimits holds the day count for each month with no leap-year
// handling: February is always 28.
var monthDayLimits = map[int]int{
	1:  31,
	2:  28,
	3:  31,
	4:  30,
	5:  31,
	6:  30,
	7:  31,
	8:  31,
	9:  30,
	10: 31,
	11: 30,
	12: 31,
}

// DaysInMonth returns the number of days in month (1-12), or 0 when the
// month is out of range.
func DaysInMonth(month int) int {
	return monthDayLimits[month]
}

// IsEligible reports whether a shooting line qualifies as a tour date:
// made maps to a month, attempted maps to a day that exists in that month,
// attempted strictly exceeds made, attempted never passes 31, and the
// percentage is under .500. Pure and total; zero-attempt lines are filtered
// out upstream and never reach this rule.
func IsEligible(made, attempted int, pct float64) bool {
	if made < 1 || made > 12 {
		return false
	}
	if attempted > DaysInMonth(made) {
		return false
	}
	if attempted <= made {
		return false
	}
	if attempted > 31 {
		return false
	}
	return pct < 0.50
}
