package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"careplus/config"
	"careplus/models"
	"careplus/services/appointment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockAppointmentSvc struct {
	createFunc     func(input appointment.CreateAppointmentInput) (*models.Appointment, error)
	getFunc        func(id string) (*models.Appointment, error)
	updateFunc     func(id string, op appointment.UpdateOp) (*models.Appointment, error)
	listRecentFunc func() (*models.RecentAppointments, error)
}

func (m *mockAppointmentSvc) Create(input appointment.CreateAppointmentInput) (*models.Appointment, error) {
	if m.createFunc != nil {
		return m.createFunc(input)
	}
	return nil, nil
}

func (m *mockAppointmentSvc) Get(id string) (*models.Appointment, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return nil, nil
}

func (m *mockAppointmentSvc) Update(id string, op appointment.UpdateOp) (*models.Appointment, error) {
	if m.updateFunc != nil {
		return m.updateFunc(id, op)
	}
	return nil, nil
}

func (m *mockAppointmentSvc) ListRecent() (*models.RecentAppointments, error) {
	if m.listRecentFunc != nil {
		return m.listRecentFunc()
	}
	return nil, nil
}

func newUpdateRouter(t *testing.T, svc appointment.AppointmentService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAppointmentHandler(svc, zap.NewNop())
	router.PATCH("/api/admin/appointments/:id", h.UpdateAppointmentHandler)
	return router
}

func patchJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestUpdateScheduleRejectsOffHoursInstant(t *testing.T) {
	config.AppConfig.WorkStartHour = 9
	config.AppConfig.WorkEndHour = 17

	svc := &mockAppointmentSvc{
		updateFunc: func(id string, op appointment.UpdateOp) (*models.Appointment, error) {
			t.Fatal("an off-hours instant must be rejected before the service")
			return nil, nil
		},
	}
	router := newUpdateRouter(t, svc)

	rec := patchJSON(router, "/api/admin/appointments/appt-1",
		`{"type":"schedule","schedule":"2030-03-01T03:00:00Z"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "working hours")
}

func TestUpdateScheduleAcceptsWorkingHoursInstant(t *testing.T) {
	config.AppConfig.WorkStartHour = 9
	config.AppConfig.WorkEndHour = 17

	var gotOp appointment.UpdateOp
	svc := &mockAppointmentSvc{
		updateFunc: func(id string, op appointment.UpdateOp) (*models.Appointment, error) {
			gotOp = op
			return &models.Appointment{ID: id, Status: models.StatusScheduled}, nil
		},
	}
	router := newUpdateRouter(t, svc)

	rec := patchJSON(router, "/api/admin/appointments/appt-2",
		`{"type":"schedule","schedule":"2030-03-01T10:30:00Z"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	scheduleOp, ok := gotOp.(appointment.ScheduleOp)
	require.True(t, ok)
	assert.Equal(t, "2030-03-01T10:30:00Z", scheduleOp.Schedule)
}

func TestUpdateScheduleRejectsPastInstant(t *testing.T) {
	config.AppConfig.WorkStartHour = 9
	config.AppConfig.WorkEndHour = 17

	router := newUpdateRouter(t, &mockAppointmentSvc{
		updateFunc: func(id string, op appointment.UpdateOp) (*models.Appointment, error) {
			t.Fatal("a past instant must be rejected before the service")
			return nil, nil
		},
	})

	rec := patchJSON(router, "/api/admin/appointments/appt-3",
		`{"type":"schedule","schedule":"2020-03-01T10:30:00Z"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "future date")
}
