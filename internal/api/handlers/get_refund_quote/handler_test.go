package get_refund_quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	refundQuote "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_refund_quote"
)

type stubUseCase struct {
	resp *refundQuote.Response
	err  error
}

func (s *stubUseCase) Execute(context.Context, *refundQuote.Request) (*refundQuote.Response, error) {
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(uc *stubUseCase) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}/refund-quote", NewHandler(uc, nopLogger{}).Handle)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/5/refund-quote", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), 42))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	rec := get(&stubUseCase{resp: &refundQuote.Response{
		BookingID: 5, TotalAmount: 3125, RefundAmount: 1563, RefundPercentage: 50,
		HoursUntilBooking: 18, CancelStatus: domain.StatusCancelledByUser,
	}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"bookingId":5,"totalAmount":3125,"refundAmount":1563,"refundPercentage":50,
		"hoursUntilBooking":18,"cancelStatus":"cancelled_by_user"
	}`, rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: refundQuote.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{err: refundQuote.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{err: refundQuote.ErrCannotCancel, wantStatus: http.StatusConflict},
		{err: refundQuote.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, get(&stubUseCase{err: tt.err}).Code)
		})
	}
}
