// Package tourdate provides types and the validation rule for NBA tour date
// performances.
//
// A tour date is a shooting line whose box score numbers spell a real calendar
// date: field goals made maps to a month (1-12), field goals attempted maps to
// a day that exists in that month, and the percentage stays under fifty. The
// package holds the Performance entity with its natural (season, game, player)
// identity, the pure eligibility predicate, the calendar Date type shared by
// the scanner and store, and the fixed enumeration of NBA team names.
package tourdate
