package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the clinic counters and the registry they live in.
type Collector struct {
	registry *prometheus.Registry

	AppointmentsBooked  prometheus.Counter
	AppointmentsUpdated prometheus.Counter
	AppointmentsPaid    prometheus.Counter
	InvoicesGenerated   prometheus.Counter
	BookingRejections   *prometheus.CounterVec
	HTTPRequestsTotal   *prometheus.CounterVec
}

// NewCollector registers every counter on a fresh registry.
func NewCollector(namespace string) *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		AppointmentsBooked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointments",
			Name:      "booked_total",
			Help:      "Appointments booked.",
		}),
		AppointmentsUpdated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointments",
			Name:      "updated_total",
			Help:      "Appointments rescheduled or reassigned.",
		}),
		AppointmentsPaid: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointments",
			Name:      "paid_total",
			Help:      "Appointments marked as paid.",
		}),
		InvoicesGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "invoices",
			Name:      "generated_total",
			Help:      "Invoices printed.",
		}),
		BookingRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointments",
			Name:      "booking_rejections_total",
			Help:      "Bookings refused, by reason.",
		}, []string{"reason"}),
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
