package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorsAreIndependent(t *testing.T) {
	a := NewCollector("clinic")
	b := NewCollector("clinic")

	a.AppointmentsBooked.Inc()
	a.BookingRejections.WithLabelValues("payment_declined").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.AppointmentsBooked))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.AppointmentsBooked))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.BookingRejections.WithLabelValues("payment_declined")))
}

func TestHandlerServesCounters(t *testing.T) {
	c := NewCollector("clinic")
	c.InvoicesGenerated.Inc()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "clinic_invoices_generated_total 1")
}
