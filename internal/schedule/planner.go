package schedule

import (
	"fmt"
	"time"

	"clinic-appointments/internal/models"
)

// Planner produces the date and time choices offered for a dermatologist.
type Planner struct {
	Now             func() time.Time
	IntervalMinutes int
	Lookahead       int
}

// NewPlanner returns a Planner on the system clock.
func NewPlanner(intervalMinutes, lookahead int) *Planner {
	return &Planner{Now: time.Now, IntervalMinutes: intervalMinutes, Lookahead: lookahead}
}

// Dates returns the next Lookahead dates the dermatologist works.
func (p *Planner) Dates(d *models.Dermatologist) ([]string, error) {
	if !d.HasStructuredAvailability() {
		return nil, fmt.Errorf("%s: %w", d.Name, models.ErrNoStructuredAvailability)
	}
	days, err := ParseWeekdays(d.AvailableDays)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}
	dates, err := NextAvailableDates(p.Now(), days, p.Lookahead)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}
	return FormatDates(dates), nil
}

// Times returns the slot start times within the dermatologist's window.
func (p *Planner) Times(d *models.Dermatologist) ([]string, error) {
	if !d.HasStructuredAvailability() {
		return nil, fmt.Errorf("%s: %w", d.Name, models.ErrNoStructuredAvailability)
	}
	start, err := ParseTimeOfDay(d.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%s start: %w", d.Name, err)
	}
	end, err := ParseTimeOfDay(d.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%s end: %w", d.Name, err)
	}
	return FormatTimes(TimeSlots(start, end, p.IntervalMinutes)), nil
}
