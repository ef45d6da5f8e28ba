package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-appointments/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday("MONDAY")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, d)

	d, err = ParseWeekday("sunday")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, d)

	_, err = ParseWeekday("FUNDAY")
	assert.True(t, errors.Is(err, ErrInvalidWeekday))

	_, err = ParseWeekdays([]string{"MONDAY", "MON"})
	assert.True(t, errors.Is(err, ErrInvalidWeekday))
}

func TestNextAvailableDatesMondays(t *testing.T) {
	// Every weekday of one week as the starting point.
	for offset := 0; offset < 7; offset++ {
		from := day(2026, time.October, 12).AddDate(0, 0, offset)
		dates, err := NextAvailableDates(from, []time.Weekday{time.Monday}, 5)
		require.NoError(t, err)
		require.Len(t, dates, 5)

		for i, d := range dates {
			assert.Equal(t, time.Monday, d.Weekday())
			assert.False(t, d.Before(from), "date %s before %s", d, from)
			if i > 0 {
				assert.Equal(t, 7*24*time.Hour, d.Sub(dates[i-1]))
			}
		}
	}
}

func TestNextAvailableDatesKeepsSameDay(t *testing.T) {
	monday := day(2026, time.October, 19)
	dates, err := NextAvailableDates(monday.Add(14*time.Hour), []time.Weekday{time.Monday}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-19", "2026-10-26"}, FormatDates(dates))
}

func TestNextAvailableDatesFromSunday(t *testing.T) {
	// 2026-10-18 is a Sunday, the last day of its ISO week.
	sunday := day(2026, time.October, 18)
	days := []time.Weekday{time.Monday, time.Wednesday, time.Friday}

	dates, err := NextAvailableDates(sunday, days, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-19", "2026-10-21", "2026-10-23", "2026-10-26", "2026-10-28"}, FormatDates(dates))
}

func TestNextAvailableDatesMidWeek(t *testing.T) {
	// Thursday: Monday and Wednesday of this week are already gone.
	thursday := day(2026, time.October, 22)
	days := []time.Weekday{time.Monday, time.Wednesday, time.Friday}

	dates, err := NextAvailableDates(thursday, days, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-23", "2026-10-26", "2026-10-28", "2026-10-30"}, FormatDates(dates))
}

func TestNextAvailableDatesFollowsGivenOrder(t *testing.T) {
	monday := day(2026, time.October, 19)
	dates, err := NextAvailableDates(monday, []time.Weekday{time.Sunday, time.Monday}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-25", "2026-10-19", "2026-11-01"}, FormatDates(dates))
}

func TestNextAvailableDatesDuplicates(t *testing.T) {
	monday := day(2026, time.October, 19)
	dates, err := NextAvailableDates(monday, []time.Weekday{time.Monday, time.Monday}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-19", "2026-10-19", "2026-10-26"}, FormatDates(dates))
}

func TestNextAvailableDatesEdgeCounts(t *testing.T) {
	dates, err := NextAvailableDates(day(2026, time.October, 19), []time.Weekday{time.Monday}, 0)
	require.NoError(t, err)
	assert.Empty(t, dates)

	_, err = NextAvailableDates(day(2026, time.October, 19), nil, 3)
	assert.ErrorIs(t, err, ErrNoWeekdays)
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:05")
	require.NoError(t, err)
	assert.Equal(t, Clock(9, 5), tod)
	assert.Equal(t, "09:05", tod.String())

	for _, bad := range []string{"25:00", "12:60", "noon", "12", "-1:30"} {
		_, err := ParseTimeOfDay(bad)
		assert.ErrorIs(t, err, ErrInvalidTime, bad)
	}
}

func TestTimeSlotsNineToFive(t *testing.T) {
	slots := TimeSlots(Clock(9, 0), Clock(17, 0), 15)
	require.Len(t, slots, 32)
	assert.Equal(t, "09:00", slots[0].String())
	assert.Equal(t, "16:45", slots[len(slots)-1].String())
	for _, s := range slots {
		assert.NotEqual(t, Clock(17, 0), s)
	}
}

func TestTimeSlotsPartialTail(t *testing.T) {
	slots := TimeSlots(Clock(10, 0), Clock(11, 0), 25)
	assert.Equal(t, []string{"10:00", "10:25", "10:50"}, FormatTimes(slots))
}

func TestTimeSlotsEmpty(t *testing.T) {
	assert.Empty(t, TimeSlots(Clock(12, 0), Clock(12, 0), 15))
	assert.Empty(t, TimeSlots(Clock(9, 0), Clock(17, 0), 0))
}

func TestPlanner(t *testing.T) {
	p := &Planner{
		Now:             func() time.Time { return time.Date(2026, time.October, 18, 11, 0, 0, 0, time.UTC) },
		IntervalMinutes: 15,
		Lookahead:       5,
	}
	perera := &models.Dermatologist{
		Name:          "Dr. Perera",
		AvailableDays: []string{"SATURDAY"},
		StartTime:     "10:00",
		EndTime:       "15:00",
	}

	dates, err := p.Dates(perera)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-24", "2026-10-31", "2026-11-07", "2026-11-14", "2026-11-21"}, dates)

	times, err := p.Times(perera)
	require.NoError(t, err)
	assert.Len(t, times, 20)
	assert.Equal(t, "10:00", times[0])
	assert.Equal(t, "14:45", times[19])

	legacy := &models.Dermatologist{Name: "Dr. Old", ScheduleText: "By appointment"}
	_, err = p.Dates(legacy)
	assert.ErrorIs(t, err, models.ErrNoStructuredAvailability)
	_, err = p.Times(legacy)
	assert.ErrorIs(t, err, models.ErrNoStructuredAvailability)
}
