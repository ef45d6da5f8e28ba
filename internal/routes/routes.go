package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinic-appointments/internal/handlers"
	"clinic-appointments/internal/metrics"
	"clinic-appointments/internal/middleware"
	"clinic-appointments/internal/services"
)

// SetupRoutes configures the application routes.
func SetupRoutes(
	router *gin.Engine,
	appointments *services.AppointmentService,
	invoices *services.InvoiceService,
	m *metrics.Collector,
	log *zap.Logger,
) {
	router.Use(middleware.RequestLogger(log), middleware.RequestMetrics(m))

	dermatologistHandler := handlers.NewDermatologistHandler(appointments, log)
	appointmentHandler := handlers.NewAppointmentHandler(appointments, invoices, log)

	api := router.Group("/api/v1")
	{
		dermatologistRoutes := api.Group("/dermatologists")
		{
			dermatologistRoutes.GET("", dermatologistHandler.GetDermatologists)
			dermatologistRoutes.GET("/:index/slots", dermatologistHandler.GetSlots)
		}

		appointmentRoutes := api.Group("/appointments")
		{
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("", appointmentHandler.GetAppointments) // ?q= searches
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.PATCH("/:id", appointmentHandler.UpdateAppointment)
			appointmentRoutes.POST("/:id/pay", appointmentHandler.PayAppointment)
			appointmentRoutes.GET("/:id/invoice", appointmentHandler.GetInvoice)
		}
	}

	router.GET("/metrics", gin.WrapH(m.Handler()))

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
