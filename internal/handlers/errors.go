package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinic-appointments/internal/models"
	"clinic-appointments/internal/services"
	"clinic-appointments/internal/utils"
)

// respondError maps service errors onto the response envelope.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.ValidationFailed(c, verr.Fields)
	case services.IsNotFound(err):
		utils.NotFound(c, err.Error())
	case errors.Is(err, models.ErrPaymentNotConfirmed),
		errors.Is(err, models.ErrNoStructuredAvailability):
		utils.UnprocessableEntity(c, err.Error())
	default:
		log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		utils.InternalServerError(c, "Internal server error")
	}
}

func appointmentID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid appointment ID format")
		return 0, false
	}
	return id, true
}
