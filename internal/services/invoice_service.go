package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clinic-appointments/internal/config"
	"clinic-appointments/internal/metrics"
	"clinic-appointments/internal/models"
	"clinic-appointments/internal/repository"
)

// InvoiceService bills the flat registration fee.
type InvoiceService struct {
	repo    repository.AppointmentRepository
	clinic  config.ClinicConfig
	metrics *metrics.Collector
	log     *zap.Logger
	now     func() time.Time
}

func NewInvoiceService(repo repository.AppointmentRepository, clinic config.ClinicConfig, m *metrics.Collector, log *zap.Logger) *InvoiceService {
	return &InvoiceService{repo: repo, clinic: clinic, metrics: m, log: log, now: time.Now}
}

// Generate builds the invoice for an appointment. The repository is not modified.
func (s *InvoiceService) Generate(ctx context.Context, id int) (*models.Invoice, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inv := &models.Invoice{
		Reference:   uuid.New(),
		Appointment: *a,
		Fee:         s.clinic.RegistrationFee,
		Currency:    s.clinic.Currency,
		IssuedAt:    s.now(),
	}

	s.metrics.InvoicesGenerated.Inc()
	s.log.Info("invoice generated",
		zap.Int("appointment_id", a.ID),
		zap.String("reference", inv.Reference.String()),
	)
	return inv, nil
}

// FeeLabel is the registration fee as shown to patients.
func (s *InvoiceService) FeeLabel() string {
	return s.clinic.FeeLabel()
}
