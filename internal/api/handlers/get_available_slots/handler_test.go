package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-BarberService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

type stubUseCase struct {
	response *getAvailableSlots.Response
	err      error

	gotRequest *getAvailableSlots.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.gotRequest = req
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func setupRouter(uc *stubUseCase) http.Handler {
	h := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/barbers/{barberId}/available-slots", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_Success(t *testing.T) {
	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	uc := &stubUseCase{
		response: &getAvailableSlots.Response{
			Date:                 date,
			BarberID:             1,
			TotalDurationMinutes: 30,
			TotalCost:            25.0,
			Slots: []types.TimeString{
				types.TimeString("10:00"),
				types.TimeString("10:30"),
			},
		},
	}
	r := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/barbers/1/available-slots?serviceIds=10,11&date=2025-06-16", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-06-16", resp.Date)
	assert.Equal(t, int64(1), resp.BarberID)
	assert.Equal(t, []string{"10:00", "10:30"}, resp.Slots)

	require.NotNil(t, uc.gotRequest)
	assert.Equal(t, []int64{10, 11}, uc.gotRequest.ServiceIDs)
	assert.True(t, uc.gotRequest.Date.Equal(date))
}

func TestHandle_MissingServiceIDs(t *testing.T) {
	uc := &stubUseCase{}
	r := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/barbers/1/available-slots?date=2025-06-16", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.gotRequest)
}

func TestHandle_InvalidDate(t *testing.T) {
	uc := &stubUseCase{}
	r := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/barbers/1/available-slots?serviceIds=10&date=16.06.2025", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.gotRequest)
}

func TestHandle_InvalidBarberID(t *testing.T) {
	uc := &stubUseCase{}
	r := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/barbers/abc/available-slots?serviceIds=10&date=2025-06-16", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_BarberNotFound(t *testing.T) {
	uc := &stubUseCase{err: getAvailableSlots.ErrBarberNotFound}
	r := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/barbers/99/available-slots?serviceIds=10&date=2025-06-16", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandle_ServiceNotFound(t *testing.T) {
	uc := &stubUseCase{err: getAvailableSlots.ErrServiceNotFound}
	r := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/barbers/1/available-slots?serviceIds=777&date=2025-06-16", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
