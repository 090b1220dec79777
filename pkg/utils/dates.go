package utils

import (
	"time"
)

const (
	DateLayout     = "02/01/2006"
	DayMonthLayout = "02/01"
)

// Day truncates t to its calendar day, expressed at midnight UTC.
// The wall-clock date of t is kept regardless of its location.
func Day(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the calendar day that is days after day (D+X).
func AddDays(day time.Time, days int) time.Time {
	return Day(day).AddDate(0, 0, days)
}

// DaysBetween counts whole calendar days from "from" to "to".
// Negative when "to" comes first.
func DaysBetween(from, to time.Time) int {
	return int(Day(to).Sub(Day(from)) / (24 * time.Hour))
}

// Today returns the current calendar day in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return Day(now)
	}
	return Day(now.In(loc))
}

// StartOfWeek returns the Monday of the week containing day.
func StartOfWeek(day time.Time) time.Time {
	day = Day(day)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// StartOfMonth returns the first day of the month containing day.
func StartOfMonth(day time.Time) time.Time {
	year, month, _ := day.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func FormatDate(day time.Time) string {
	return day.Format(DateLayout)
}

func FormatDayMonth(day time.Time) string {
	return day.Format(DayMonthLayout)
}
