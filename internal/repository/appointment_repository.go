// Package repository keeps appointments in process memory.
package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"clinic-appointments/internal/models"
)

// AppointmentRepository is the storage contract used by the services.
type AppointmentRepository interface {
	// Save assigns the next identifier to a and stores it.
	Save(ctx context.Context, a *models.Appointment) error
	// FindByID returns models.ErrAppointmentNotFound when id is unknown.
	FindByID(ctx context.Context, id int) (*models.Appointment, error)
	// FindAll returns appointments in insertion order.
	FindAll(ctx context.Context) ([]*models.Appointment, error)
	// Search matches the patient name case-insensitively, or the identifier.
	Search(ctx context.Context, query string) ([]*models.Appointment, error)
	// Update replaces a stored appointment with the same identifier.
	Update(ctx context.Context, a *models.Appointment) error
	// Modify applies fn to the stored appointment while no other write can
	// interleave. Nothing is stored when fn fails.
	Modify(ctx context.Context, id int, fn func(*models.Appointment) error) (*models.Appointment, error)
}

// MemoryAppointmentRepository is an AppointmentRepository backed by a slice
// for ordering and a map for lookups. Identifiers start at 1 per instance.
type MemoryAppointmentRepository struct {
	mu     sync.RWMutex
	nextID int
	order  []int
	byID   map[int]*models.Appointment
	now    func() time.Time
}

// NewMemoryAppointmentRepository creates an empty repository.
func NewMemoryAppointmentRepository() *MemoryAppointmentRepository {
	return &MemoryAppointmentRepository{
		nextID: 1,
		byID:   make(map[int]*models.Appointment),
		now:    time.Now,
	}
}

func (r *MemoryAppointmentRepository) Save(ctx context.Context, a *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	a.ID = r.nextID
	a.CreatedAt = now
	a.UpdatedAt = now
	r.nextID++

	r.byID[a.ID] = a.Clone()
	r.order = append(r.order, a.ID)
	return nil
}

func (r *MemoryAppointmentRepository) FindByID(ctx context.Context, id int) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", models.ErrAppointmentNotFound, id)
	}
	return a.Clone(), nil
}

func (r *MemoryAppointmentRepository) FindAll(ctx context.Context) ([]*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Appointment, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

func (r *MemoryAppointmentRepository) Search(ctx context.Context, query string) ([]*models.Appointment, error) {
	needle := strings.ToLower(query)
	id, idErr := strconv.Atoi(strings.TrimSpace(query))

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Appointment, 0)
	for _, aid := range r.order {
		a := r.byID[aid]
		if strings.Contains(strings.ToLower(a.Patient.Name), needle) || (idErr == nil && a.ID == id) {
			out = append(out, a.Clone())
		}
	}
	return out, nil
}

func (r *MemoryAppointmentRepository) Update(ctx context.Context, a *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[a.ID]; !ok {
		return fmt.Errorf("%w: id %d", models.ErrAppointmentNotFound, a.ID)
	}
	a.UpdatedAt = r.now()
	r.byID[a.ID] = a.Clone()
	return nil
}

func (r *MemoryAppointmentRepository) Modify(ctx context.Context, id int, fn func(*models.Appointment) error) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", models.ErrAppointmentNotFound, id)
	}

	a := stored.Clone()
	if err := fn(a); err != nil {
		return nil, err
	}
	a.ID = id
	a.UpdatedAt = r.now()
	r.byID[id] = a.Clone()
	return a, nil
}
