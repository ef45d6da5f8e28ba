package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clinic-appointments/internal/config"
	"clinic-appointments/internal/directory"
	"clinic-appointments/internal/metrics"
	"clinic-appointments/internal/repository"
	"clinic-appointments/internal/routes"
	"clinic-appointments/internal/schedule"
	"clinic-appointments/internal/services"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Details []string        `json:"details"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir, err := directory.Load()
	require.NoError(t, err)

	planner := schedule.NewPlanner(15, 5)
	planner.Now = func() time.Time { return time.Date(2026, 10, 19, 8, 0, 0, 0, time.Local) }

	repo := repository.NewMemoryAppointmentRepository()
	m := metrics.NewCollector("test")
	log := zap.NewNop()

	router := gin.New()
	routes.SetupRoutes(router,
		services.NewAppointmentService(repo, dir, planner, m, log),
		services.NewInvoiceService(repo, config.ClinicConfig{RegistrationFee: 500, Currency: "LKR"}, m, log),
		m, log,
	)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func bookingBody() map[string]interface{} {
	return map[string]interface{}{
		"nic":                "123456789",
		"name":               "John Doe",
		"email":              "john@x.com",
		"phone":              "0712345678",
		"dermatologistIndex": 1,
		"date":               "2026-10-21",
		"time":               "09:00",
		"confirmPayment":     true,
	}
}

func TestDermatologistRoutes(t *testing.T) {
	router := setupRouter(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/dermatologists", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var roster []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &roster))
	assert.Len(t, roster, 4)
	assert.Equal(t, "Dr. Silva", roster[0]["name"])

	w, env = do(t, router, http.MethodGet, "/api/v1/dermatologists/2/slots", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var slots services.Slots
	require.NoError(t, json.Unmarshal(env.Data, &slots))
	assert.Equal(t, "Dr. Perera", slots.Dermatologist.Name)
	assert.Equal(t, "2026-10-24", slots.Dates[0])
	assert.Equal(t, "10:00", slots.Times[0])

	w, _ = do(t, router, http.MethodGet, "/api/v1/dermatologists/5/slots", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, router, http.MethodGet, "/api/v1/dermatologists/first/slots", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAppointmentLifecycle(t *testing.T) {
	router := setupRouter(t)

	w, env := do(t, router, http.MethodPost, "/api/v1/appointments", bookingBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var booked map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &booked))
	assert.EqualValues(t, 1, booked["id"])
	assert.Equal(t, false, booked["paid"])

	w, env = do(t, router, http.MethodPatch, "/api/v1/appointments/1", map[string]interface{}{"time": "11:15"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "11:15", updated["time"])
	assert.Equal(t, "2026-10-21", updated["date"])

	w, env = do(t, router, http.MethodPost, "/api/v1/appointments/1/pay", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var paid map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &paid))
	assert.Equal(t, true, paid["paid"])

	w, env = do(t, router, http.MethodGet, "/api/v1/appointments/1/invoice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var inv map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &inv))
	assert.EqualValues(t, 500, inv["fee"])
	assert.Equal(t, "LKR", inv["currency"])
	assert.NotEmpty(t, inv["reference"])

	w, _ = do(t, router, http.MethodGet, "/api/v1/appointments/99/invoice", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = do(t, router, http.MethodGet, "/api/v1/appointments?q=john", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var found []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &found))
	assert.Len(t, found, 1)

	w, env = do(t, router, http.MethodGet, "/api/v1/appointments?q=nobody", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", string(env.Data))
}

func TestCreateAppointmentErrors(t *testing.T) {
	router := setupRouter(t)

	body := bookingBody()
	body["confirmPayment"] = false
	w, _ := do(t, router, http.MethodPost, "/api/v1/appointments", body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body = bookingBody()
	body["phone"] = "12345"
	body["nic"] = "1"
	w, env := do(t, router, http.MethodPost, "/api/v1/appointments", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.ElementsMatch(t, []string{"nic: must be at least 9 characters", "phone: must be exactly 10 digits"}, env.Details)

	body = bookingBody()
	body["date"] = "2026-10-01"
	w, env = do(t, router, http.MethodPost, "/api/v1/appointments", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Details, "date: must be a calendar date from today onwards")

	body = bookingBody()
	body["dermatologistIndex"] = 8
	w, _ = do(t, router, http.MethodPost, "/api/v1/appointments", body)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = do(t, router, http.MethodGet, "/api/v1/appointments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", string(env.Data))
}

func TestUpdateAppointmentErrors(t *testing.T) {
	router := setupRouter(t)

	w, _ := do(t, router, http.MethodPatch, "/api/v1/appointments/1", map[string]interface{}{"time": "10:00"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, router, http.MethodPost, "/api/v1/appointments", bookingBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = do(t, router, http.MethodPatch, "/api/v1/appointments/1", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := do(t, router, http.MethodPatch, "/api/v1/appointments/1", map[string]interface{}{"time": "ten"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"time: must be formatted as HH:MM"}, env.Details)

	w, _ = do(t, router, http.MethodGet, "/api/v1/appointments/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	router := setupRouter(t)

	health := httptest.NewRecorder()
	router.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, health.Code)
	assert.JSONEq(t, `{"status":"UP"}`, health.Body.String())

	w, _ := do(t, router, http.MethodPost, "/api/v1/appointments", bookingBody())
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_appointments_booked_total 1")
	assert.Contains(t, rec.Body.String(), `test_http_requests_total{method="POST",route="/api/v1/appointments",status="201"} 1`)
}
