package cancel_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
)

type stubService struct {
	err error

	gotAppointmentID int64
	gotRequest       *models.CancelAppointmentRequest
}

func (s *stubService) Cancel(_ context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.gotAppointmentID = appointmentID
	s.gotRequest = req
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func setupRouter(svc *stubService) http.Handler {
	h := NewHandler(svc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", h.Handle).Methods(http.MethodPatch)
	return r
}

func doCancel(r http.Handler, path, userID string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, path, nil)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestHandle_Success(t *testing.T) {
	svc := &stubService{}
	r := setupRouter(svc)

	w := doCancel(r, "/api/v1/appointments/42/cancel", "100")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(42), svc.gotAppointmentID)
	require.NotNil(t, svc.gotRequest)
	assert.Equal(t, int64(100), svc.gotRequest.UserID)
}

func TestHandle_MissingUserID(t *testing.T) {
	svc := &stubService{}
	r := setupRouter(svc)

	w := doCancel(r, "/api/v1/appointments/42/cancel", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, svc.gotRequest)
}

func TestHandle_InvalidAppointmentID(t *testing.T) {
	svc := &stubService{}
	r := setupRouter(svc)

	w := doCancel(r, "/api/v1/appointments/abc/cancel", "100")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.gotRequest)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &stubService{err: appointments.ErrAppointmentNotFound}
	r := setupRouter(svc)

	w := doCancel(r, "/api/v1/appointments/42/cancel", "100")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandle_AccessDenied(t *testing.T) {
	svc := &stubService{err: appointments.ErrAccessDenied}
	r := setupRouter(svc)

	w := doCancel(r, "/api/v1/appointments/42/cancel", "100")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandle_TooLateToCancel(t *testing.T) {
	svc := &stubService{err: appointments.ErrTooLateToCancel}
	r := setupRouter(svc)

	w := doCancel(r, "/api/v1/appointments/42/cancel", "100")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, msgTooLateToCancel, resp.Error)
}

func TestHandle_AlreadyCancelled(t *testing.T) {
	svc := &stubService{err: appointments.ErrCannotCancel}
	r := setupRouter(svc)

	w := doCancel(r, "/api/v1/appointments/42/cancel", "100")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
