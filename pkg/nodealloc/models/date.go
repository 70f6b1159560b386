package models

import (
	"fmt"
	"time"
)

// DateLayout is the textual form of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time of day. Dates compare with ==.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return DateOf(t), nil
}

// DateFromParts combines numeric day, month and year values into a Date.
// Combinations that time.Date would normalise, such as 31 February, are rejected.
func DateFromParts(day, month, year int64) (Date, error) {
	invalid := &InvalidDateError{Year: year, Month: month, Day: day}
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 || year > 9999 {
		return Date{}, invalid
	}
	d := Date{Year: int(year), Month: time.Month(month), Day: int(day)}
	if DateOf(d.Time()) != d {
		return Date{}, invalid
	}
	return d, nil
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week d falls on.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
