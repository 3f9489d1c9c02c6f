package pricing

import (
	"fmt"
	"time"

	"tool-rental-backend/internal/domain"
)

// DateOnly strips the time of day and location from t, keeping the calendar
// date it shows.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the calendar date n days after date.
func AddDays(date time.Time, n int) time.Time {
	return DateOnly(date).AddDate(0, 0, n)
}

// IsWeekend reports whether date falls on a Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ObservedIndependenceDay returns the date July 4th of year is observed on:
// the Friday before when it is a Saturday, the Monday after when it is a
// Sunday.
func ObservedIndependenceDay(year int) time.Time {
	july4 := time.Date(year, time.July, 4, 0, 0, 0, 0, time.UTC)
	switch july4.Weekday() {
	case time.Saturday:
		return july4.AddDate(0, 0, -1)
	case time.Sunday:
		return july4.AddDate(0, 0, 1)
	}
	return july4
}

// IsHoliday reports whether date is an observed holiday.
//
// Every Monday in September counts as Labor Day, including September 1st.
// The first-of-month guard is kept as a precondition and never rejects one.
func IsHoliday(date time.Time) bool {
	date = DateOnly(date)
	if date.Equal(ObservedIndependenceDay(date.Year())) {
		return true
	}
	if date.Month() != time.September || date.Weekday() != time.Monday {
		return false
	}
	firstOfMonth := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	return !firstOfMonth.After(date)
}

// WeekendsInRange counts Saturdays and Sundays between start and end, both
// inclusive.
func WeekendsInRange(start, end time.Time) (int, error) {
	return countInRange(start, end, IsWeekend)
}

// HolidaysInRange counts observed holidays between start and end, both
// inclusive.
func HolidaysInRange(start, end time.Time) (int, error) {
	return countInRange(start, end, IsHoliday)
}

func countInRange(start, end time.Time, match func(time.Time) bool) (int, error) {
	start, end = DateOnly(start), DateOnly(end)
	if start.After(end) {
		return 0, fmt.Errorf("%w: %s > %s", domain.ErrInvalidDateRange, start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if match(d) {
			count++
		}
	}
	return count, nil
}
