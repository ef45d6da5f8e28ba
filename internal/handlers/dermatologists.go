package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinic-appointments/internal/services"
	"clinic-appointments/internal/utils"
)

// DermatologistHandler serves the clinic roster.
type DermatologistHandler struct {
	appointments *services.AppointmentService
	log          *zap.Logger
}

// NewDermatologistHandler creates a new DermatologistHandler.
func NewDermatologistHandler(appointments *services.AppointmentService, log *zap.Logger) *DermatologistHandler {
	return &DermatologistHandler{appointments: appointments, log: log}
}

// GetDermatologists lists the roster in menu order.
func (h *DermatologistHandler) GetDermatologists(c *gin.Context) {
	utils.Success(c, "Dermatologists retrieved successfully", h.appointments.Dermatologists())
}

// GetSlots returns the bookable dates and times of the dermatologist at the
// 1-based :index.
func (h *DermatologistHandler) GetSlots(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequest(c, "Invalid dermatologist index")
		return
	}

	slots, err := h.appointments.Slots(index)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	utils.Success(c, "Slots retrieved successfully", slots)
}
