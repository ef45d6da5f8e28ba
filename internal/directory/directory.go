// Package directory holds the fixed roster of dermatologists.
package directory

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"clinic-appointments/internal/models"
	"clinic-appointments/internal/schedule"
)

//go:embed dermatologists.yaml
var rosterYAML []byte

type roster struct {
	Dermatologists []models.Dermatologist `yaml:"dermatologists"`
}

// Directory is read-only after Load.
type Directory struct {
	dermatologists []models.Dermatologist
}

// Load builds the clinic roster.
func Load() (*Directory, error) {
	return Parse(rosterYAML)
}

// Parse builds a Directory from a roster document.
func Parse(doc []byte) (*Directory, error) {
	var r roster
	if err := yaml.Unmarshal(doc, &r); err != nil {
		return nil, fmt.Errorf("decoding roster: %w", err)
	}
	if len(r.Dermatologists) == 0 {
		return nil, errors.New("roster has no dermatologists")
	}
	for i := range r.Dermatologists {
		if err := check(&r.Dermatologists[i]); err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i+1, err)
		}
	}
	return &Directory{dermatologists: r.Dermatologists}, nil
}

func check(d *models.Dermatologist) error {
	if d.Name == "" {
		return errors.New("name is required")
	}
	if !d.HasStructuredAvailability() {
		if d.ScheduleText == "" {
			return fmt.Errorf("%s: no availability given", d.Name)
		}
		return nil
	}
	if _, err := schedule.ParseWeekdays(d.AvailableDays); err != nil {
		return fmt.Errorf("%s: %w", d.Name, err)
	}
	start, err := schedule.ParseTimeOfDay(d.StartTime)
	if err != nil {
		return fmt.Errorf("%s: %w", d.Name, err)
	}
	end, err := schedule.ParseTimeOfDay(d.EndTime)
	if err != nil {
		return fmt.Errorf("%s: %w", d.Name, err)
	}
	if start >= end {
		return fmt.Errorf("%s: start %s is not before end %s", d.Name, start, end)
	}
	return nil
}

// List returns the roster in display order. The slice is a copy.
func (d *Directory) List() []models.Dermatologist {
	out := make([]models.Dermatologist, len(d.dermatologists))
	for i, derm := range d.dermatologists {
		out[i] = derm.Clone()
	}
	return out
}

// Len is the number of dermatologists.
func (d *Directory) Len() int {
	return len(d.dermatologists)
}

// Get selects by 1-based index, as shown in menus.
func (d *Directory) Get(index int) (models.Dermatologist, error) {
	if index < 1 || index > len(d.dermatologists) {
		return models.Dermatologist{}, fmt.Errorf("%w: index %d", models.ErrDermatologistNotFound, index)
	}
	return d.dermatologists[index-1].Clone(), nil
}
