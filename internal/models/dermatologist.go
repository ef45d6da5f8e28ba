package models

import (
	"fmt"
	"slices"
	"strings"
)

// Dermatologist is a provider from the clinic directory.
//
// AvailableDays, StartTime and EndTime describe when slots can be generated.
// ScheduleText is a legacy free-text description; entries carrying only
// ScheduleText are shown to operators but cannot be booked through slots.
type Dermatologist struct {
	Name          string   `json:"name" yaml:"name"`
	AvailableDays []string `json:"availableDays,omitempty" yaml:"availableDays"`
	StartTime     string   `json:"startTime,omitempty" yaml:"startTime"`
	EndTime       string   `json:"endTime,omitempty" yaml:"endTime"`
	ScheduleText  string   `json:"schedule,omitempty" yaml:"schedule"`
}

// HasStructuredAvailability reports whether slots can be generated.
func (d *Dermatologist) HasStructuredAvailability() bool {
	return len(d.AvailableDays) > 0 && d.StartTime != "" && d.EndTime != ""
}

// Schedule renders availability for display, e.g. "MONDAY, FRIDAY 09:00-17:00".
func (d *Dermatologist) Schedule() string {
	if !d.HasStructuredAvailability() {
		return d.ScheduleText
	}
	return fmt.Sprintf("%s %s-%s", strings.Join(d.AvailableDays, ", "), d.StartTime, d.EndTime)
}

// Clone returns a copy that shares no slices with d.
func (d *Dermatologist) Clone() Dermatologist {
	out := *d
	out.AvailableDays = slices.Clone(d.AvailableDays)
	return out
}
