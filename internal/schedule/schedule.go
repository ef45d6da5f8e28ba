// Package schedule turns a dermatologist's weekly availability into bookable
// dates and times of day.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidWeekday = errors.New("invalid weekday name")
	ErrNoWeekdays     = errors.New("at least one weekday is required")
	ErrInvalidTime    = errors.New("invalid time of day")
)

// ParseWeekday accepts full English weekday names in any case ("monday", "MONDAY").
func ParseWeekday(name string) (time.Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == n {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
}

// ParseWeekdays parses every name, failing on the first bad one.
func ParseWeekdays(names []string) ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(names))
	for _, n := range names {
		d, err := ParseWeekday(n)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// isoIndex numbers weekdays Monday=0 .. Sunday=6.
func isoIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextAvailableDates returns the next count dates, starting at from, that fall
// on one of the given weekdays.
//
// The scan walks week by week. For each weekday, in the order given, it takes
// that weekday inside the Monday-to-Sunday week containing the current anchor
// and keeps it when it is not before from. The anchor then moves 7 days on.
// Dates come back in scan order; duplicate weekdays produce duplicate dates.
func NextAvailableDates(from time.Time, weekdays []time.Weekday, count int) ([]time.Time, error) {
	if count <= 0 {
		return []time.Time{}, nil
	}
	if len(weekdays) == 0 {
		return nil, ErrNoWeekdays
	}

	start := dateOnly(from)
	anchor := start
	dates := make([]time.Time, 0, count)
	for len(dates) < count {
		offset := isoIndex(anchor.Weekday())
		for _, wd := range weekdays {
			candidate := anchor.AddDate(0, 0, isoIndex(wd)-offset)
			if !candidate.Before(start) && len(dates) < count {
				dates = append(dates, candidate)
			}
		}
		anchor = anchor.AddDate(0, 0, 7)
	}
	return dates, nil
}

// TimeOfDay is a wall-clock time as minutes after midnight.
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM" (24-hour).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return TimeOfDay(h*60 + m), nil
}

// Clock builds a TimeOfDay from hour and minute.
func Clock(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// TimeSlots emits start, start+interval, ... while strictly before end.
// end itself is never emitted.
func TimeSlots(start, end TimeOfDay, intervalMinutes int) []TimeOfDay {
	if intervalMinutes <= 0 {
		return []TimeOfDay{}
	}
	var slots []TimeOfDay
	for t := start; t < end; t += TimeOfDay(intervalMinutes) {
		slots = append(slots, t)
	}
	return slots
}

// FormatDates renders dates as YYYY-MM-DD.
func FormatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format("2006-01-02")
	}
	return out
}

// FormatTimes renders times as HH:MM.
func FormatTimes(times []TimeOfDay) []string {
	out := make([]string, len(times))
	for i, t := range times {
		out[i] = t.String()
	}
	return out
}
