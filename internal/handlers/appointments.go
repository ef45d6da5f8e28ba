package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinic-appointments/internal/models"
	"clinic-appointments/internal/services"
	"clinic-appointments/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	appointments *services.AppointmentService
	invoices     *services.InvoiceService
	log          *zap.Logger
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointments *services.AppointmentService, invoices *services.InvoiceService, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments, invoices: invoices, log: log}
}

// CreateAppointmentRequest represents the request body for booking an appointment.
type CreateAppointmentRequest struct {
	NIC                string `json:"nic" validate:"nic"`
	Name               string `json:"name" validate:"personname"`
	Email              string `json:"email" validate:"clinicemail"`
	Phone              string `json:"phone" validate:"phone10"`
	DermatologistIndex int    `json:"dermatologistIndex" validate:"min=1"`
	Date               string `json:"date" validate:"isodate"`
	Time               string `json:"time" validate:"hhmm"`
	ConfirmPayment     bool   `json:"confirmPayment"`
}

// UpdateAppointmentRequest represents the request body for rescheduling.
// Omitted fields keep their current value.
type UpdateAppointmentRequest struct {
	DermatologistIndex *int    `json:"dermatologistIndex" validate:"omitempty,min=1"`
	Date               *string `json:"date" validate:"omitempty,isodate"`
	Time               *string `json:"time" validate:"omitempty,hhmm"`
}

// CreateAppointment books an appointment. The fee must be confirmed in the request.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	a, err := h.appointments.Book(c.Request.Context(), &services.BookAppointmentCommand{
		Patient: models.Patient{
			NIC:   strings.TrimSpace(req.NIC),
			Name:  strings.TrimSpace(req.Name),
			Email: strings.TrimSpace(req.Email),
			Phone: strings.TrimSpace(req.Phone),
		},
		DermatologistIndex: req.DermatologistIndex,
		Date:               req.Date,
		Time:               req.Time,
		PaymentConfirmed:   req.ConfirmPayment,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	utils.Created(c, "Appointment booked successfully", a)
}

// GetAppointments lists every appointment, or the matches for ?q= when given.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	var (
		list []*models.Appointment
		err  error
	)
	if q, ok := c.GetQuery("q"); ok {
		list, err = h.appointments.Search(c.Request.Context(), strings.TrimSpace(q))
	} else {
		list, err = h.appointments.ListAll(c.Request.Context())
	}
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	utils.Success(c, "Appointments retrieved successfully", list)
}

// GetAppointmentByID retrieves a single appointment.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	a, err := h.appointments.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	utils.Success(c, "Appointment retrieved successfully", a)
}

// UpdateAppointment changes the dermatologist, date or time.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if req.DermatologistIndex == nil && req.Date == nil && req.Time == nil {
		utils.BadRequest(c, "Nothing to update")
		return
	}

	a, err := h.appointments.Update(c.Request.Context(), id, &services.UpdateAppointmentCommand{
		DermatologistIndex: req.DermatologistIndex,
		Date:               req.Date,
		Time:               req.Time,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	utils.Success(c, "Appointment updated successfully", a)
}

// PayAppointment marks the registration fee as settled.
func (h *AppointmentHandler) PayAppointment(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	a, err := h.appointments.MarkPaid(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	utils.Success(c, "Payment recorded", a)
}

// GetInvoice issues the registration fee invoice for an appointment.
func (h *AppointmentHandler) GetInvoice(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	inv, err := h.invoices.Generate(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	utils.Success(c, "Invoice generated successfully", inv)
}
