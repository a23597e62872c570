package tourdate

import (
	"fmt"
	"strings"
	"time"
)

// ISODate is the layout used in storage, on the wire, and on the command
// line.
const ISODate = "2006-01-02"

// Date is a calendar day with no time-of-day component, pinned to UTC.
// The zero value means "no date".
type Date struct {
	time.Time
}

// NewDate builds a Date at UTC midnight.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current UTC date.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// ParseDate parses a calendar date. It accepts the ISO form used everywhere
// internally ("2025-10-24") plus the slash and dotted forms that show up in
// hand-typed input ("10/24/2025", "10.24.2025").
func ParseDate(s string) (Date, error) {
	layouts := []string{
		ISODate,
		"01/02/2006",
		"1/2/2006",
		"01.02.2006",
		"1.2.2006",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t.Year(), t.Month(), t.Day()), nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date %q", s)
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	t := d.AddDate(0, 0, 1)
	return NewDate(t.Year(), t.Month(), t.Day())
}

// String renders the ISO form.
func (d Date) String() string {
	return d.Format(ISODate)
}

// MarshalJSON encodes the date as an ISO "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes an ISO "YYYY-MM-DD" string; null and the empty
// string decode to the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
