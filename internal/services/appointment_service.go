package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"clinic-appointments/internal/directory"
	"clinic-appointments/internal/metrics"
	"clinic-appointments/internal/models"
	"clinic-appointments/internal/repository"
	"clinic-appointments/internal/schedule"
	"clinic-appointments/internal/utils"
)

// BookAppointmentCommand carries everything collected at the front desk.
// DermatologistIndex is 1-based.
type BookAppointmentCommand struct {
	Patient            models.Patient
	DermatologistIndex int
	Date               string
	Time               string
	PaymentConfirmed   bool
}

// UpdateAppointmentCommand holds the fields to change. Nil fields are kept.
type UpdateAppointmentCommand struct {
	DermatologistIndex *int
	Date               *string
	Time               *string
}

// Slots are the choices offered for one dermatologist.
type Slots struct {
	Dermatologist models.Dermatologist `json:"dermatologist"`
	Dates         []string             `json:"dates"`
	Times         []string             `json:"times"`
}

type AppointmentService struct {
	repo    repository.AppointmentRepository
	dir     *directory.Directory
	planner *schedule.Planner
	metrics *metrics.Collector
	log     *zap.Logger
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	dir *directory.Directory,
	planner *schedule.Planner,
	m *metrics.Collector,
	log *zap.Logger,
) *AppointmentService {
	return &AppointmentService{repo: repo, dir: dir, planner: planner, metrics: m, log: log}
}

// Dermatologists lists the roster in menu order.
func (s *AppointmentService) Dermatologists() []models.Dermatologist {
	return s.dir.List()
}

// Slots returns the upcoming dates and time slots for the dermatologist at index.
func (s *AppointmentService) Slots(index int) (*Slots, error) {
	d, err := s.dir.Get(index)
	if err != nil {
		return nil, err
	}
	dates, err := s.planner.Dates(&d)
	if err != nil {
		return nil, err
	}
	times, err := s.planner.Times(&d)
	if err != nil {
		return nil, err
	}
	return &Slots{Dermatologist: d, Dates: dates, Times: times}, nil
}

// Book validates the command and stores a new unpaid appointment.
func (s *AppointmentService) Book(ctx context.Context, cmd *BookAppointmentCommand) (*models.Appointment, error) {
	var fields []string
	if err := utils.Validate(cmd.Patient); err != nil {
		fields = append(fields, utils.FormatValidationError(err)...)
	}
	fields = append(fields, s.checkDate(cmd.Date)...)
	fields = append(fields, checkTime(cmd.Time)...)
	if len(fields) > 0 {
		s.metrics.BookingRejections.WithLabelValues("invalid_input").Inc()
		return nil, &ValidationError{Fields: fields}
	}

	d, err := s.dir.Get(cmd.DermatologistIndex)
	if err != nil {
		s.metrics.BookingRejections.WithLabelValues("unknown_dermatologist").Inc()
		return nil, err
	}

	if !cmd.PaymentConfirmed {
		s.metrics.BookingRejections.WithLabelValues("payment_declined").Inc()
		return nil, models.ErrPaymentNotConfirmed
	}

	a := models.NewAppointment(cmd.Patient, d, cmd.Date, cmd.Time)
	if err := s.repo.Save(ctx, a); err != nil {
		s.log.Error("failed to save appointment", zap.Error(err))
		return nil, fmt.Errorf("saving appointment: %w", err)
	}

	s.metrics.AppointmentsBooked.Inc()
	s.log.Info("appointment booked",
		zap.Int("appointment_id", a.ID),
		zap.String("dermatologist", d.Name),
		zap.String("date", a.Date),
		zap.String("time", a.Time),
	)
	return a, nil
}

// Update changes the dermatologist, date or time of an appointment in place.
// Identifier, patient and paid flag are never touched.
func (s *AppointmentService) Update(ctx context.Context, id int, cmd *UpdateAppointmentCommand) (*models.Appointment, error) {
	var fields []string
	date, clock := "", ""
	if cmd.Date != nil {
		fields = append(fields, s.checkDate(*cmd.Date)...)
		date = *cmd.Date
	}
	if cmd.Time != nil {
		fields = append(fields, checkTime(*cmd.Time)...)
		clock = *cmd.Time
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	var derm *models.Dermatologist
	if cmd.DermatologistIndex != nil {
		d, err := s.dir.Get(*cmd.DermatologistIndex)
		if err != nil {
			return nil, err
		}
		derm = &d
	}

	a, err := s.repo.Modify(ctx, id, func(a *models.Appointment) error {
		a.Reschedule(derm, date, clock)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.AppointmentsUpdated.Inc()
	s.log.Info("appointment updated",
		zap.Int("appointment_id", a.ID),
		zap.String("dermatologist", a.Dermatologist.Name),
		zap.String("date", a.Date),
		zap.String("time", a.Time),
	)
	return a, nil
}

// MarkPaid settles the registration fee. Paying twice is a no-op.
func (s *AppointmentService) MarkPaid(ctx context.Context, id int) (*models.Appointment, error) {
	settled := false
	a, err := s.repo.Modify(ctx, id, func(a *models.Appointment) error {
		if !a.Paid {
			a.MarkPaid()
			settled = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !settled {
		return a, nil
	}

	s.metrics.AppointmentsPaid.Inc()
	s.log.Info("appointment paid", zap.Int("appointment_id", a.ID))
	return a, nil
}

func (s *AppointmentService) Get(ctx context.Context, id int) (*models.Appointment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AppointmentService) ListAll(ctx context.Context) ([]*models.Appointment, error) {
	return s.repo.FindAll(ctx)
}

func (s *AppointmentService) Search(ctx context.Context, query string) ([]*models.Appointment, error) {
	return s.repo.Search(ctx, query)
}

func (s *AppointmentService) checkDate(date string) []string {
	if !utils.IsValidDate(date) {
		return []string{"date: must be formatted as YYYY-MM-DD"}
	}
	if !utils.IsValidFutureDateAt(date, s.planner.Now()) {
		return []string{"date: must be a calendar date from today onwards"}
	}
	return nil
}

func checkTime(clock string) []string {
	if !utils.IsValidTime(clock) {
		return []string{"time: must be formatted as HH:MM"}
	}
	return nil
}
