package reset_venue_policy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/policy"
)

type stubService struct{ err error }

func (s stubService) Reset(context.Context, int64, int64) error { return s.err }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		userID     int64
		err        error
		wantStatus int
	}{
		{name: "reset", userID: 100, wantStatus: http.StatusNoContent},
		{name: "no user", wantStatus: http.StatusUnauthorized},
		{name: "not manager", userID: 100, err: policy.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "venue missing", userID: 100, err: policy.ErrVenueNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", userID: 100, err: policy.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.HandleFunc("/api/v1/venues/{venueId}/policy", NewHandler(stubService{err: tt.err}, nopLogger{}).Handle)

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/venues/1/policy", nil)
			if tt.userID > 0 {
				req = req.WithContext(middleware.WithUserID(req.Context(), tt.userID))
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
