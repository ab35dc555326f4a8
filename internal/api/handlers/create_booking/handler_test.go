package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
)

type stubUseCase struct {
	resp    *createBooking.Response
	err     error
	lastReq *createBooking.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.lastReq = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{"courtId":7,"bookingDate":"2026-05-12","startTime":"10:00","endTime":"11:30"}`

func post(uc *stubUseCase, body string, userID int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	created := time.Date(2026, 5, 11, 1, 0, 0, 0, time.UTC)
	uc := &stubUseCase{resp: &createBooking.Response{
		ID: 10, UserID: 42, VenueID: 1, CourtID: 7,
		BookingDate: time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00", EndTime: "11:30", DurationMinutes: 90, Status: "confirmed",
		Subtotal: 3000, Commission: 300, TotalAmount: 3000, VenuePayout: 2700,
		CreatedAt: created, UpdatedAt: created,
	}}

	rec := post(uc, validBody, 42)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(42), uc.lastReq.UserID)
	assert.Equal(t, "11:30", uc.lastReq.EndTime)
	assert.JSONEq(t, `{
		"id":10,"userId":42,"venueId":1,"courtId":7,"bookingDate":"2026-05-12",
		"startTime":"10:00","endTime":"11:30","durationMinutes":90,"status":"confirmed",
		"subtotal":3000,"commission":300,"totalAmount":3000,"venuePayout":2700,
		"createdAt":"2026-05-11T01:00:00Z","updatedAt":"2026-05-11T01:00:00Z"
	}`, rec.Body.String())
}

func TestHandler_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{
			name:       "format error",
			err:        fmt.Errorf("%w: %w", createBooking.ErrBookingRejected, domain.ErrInvalidFormat),
			wantStatus: http.StatusBadRequest,
			wantKind:   "format_error",
		},
		{
			name:       "ordering error",
			err:        fmt.Errorf("%w: %w", createBooking.ErrBookingRejected, domain.ErrInvalidTimeOrder),
			wantStatus: http.StatusBadRequest,
			wantKind:   "ordering_error",
		},
		{
			name:       "policy violation",
			err:        fmt.Errorf("%w: %w", createBooking.ErrBookingRejected, domain.ErrTooLong),
			wantStatus: http.StatusUnprocessableEntity,
			wantKind:   "policy_violation",
		},
		{
			name:       "venue closed",
			err:        createBooking.ErrVenueClosed,
			wantStatus: http.StatusUnprocessableEntity,
			wantKind:   "venue_closed",
		},
		{
			name:       "outside hours",
			err:        createBooking.ErrOutsideWorkingHours,
			wantStatus: http.StatusUnprocessableEntity,
			wantKind:   "outside_working_hours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(&stubUseCase{err: tt.err}, validBody, 42)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"kind":"`+tt.wantKind+`"`)
		})
	}
}

func TestHandler_RejectionMessages(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantKind    string
		wantMessage string
	}{
		{name: "past date", err: domain.ErrPastDate, wantStatus: http.StatusUnprocessableEntity, wantKind: "policy_violation", wantMessage: "нельзя забронировать корт на прошедшую дату"},
		{name: "too soon", err: domain.ErrTooSoon, wantStatus: http.StatusUnprocessableEntity, wantKind: "policy_violation", wantMessage: "бронирование нужно оформить заранее, до начала осталось слишком мало времени"},
		{name: "too far", err: domain.ErrTooFarInFuture, wantStatus: http.StatusUnprocessableEntity, wantKind: "policy_violation", wantMessage: "на эту дату бронирование ещё не открыто"},
		{name: "too short", err: domain.ErrTooShort, wantStatus: http.StatusUnprocessableEntity, wantKind: "policy_violation", wantMessage: "длительность бронирования меньше минимальной"},
		{name: "too long", err: domain.ErrTooLong, wantStatus: http.StatusUnprocessableEntity, wantKind: "policy_violation", wantMessage: "длительность бронирования больше максимальной"},
		{name: "bad format", err: domain.ErrInvalidFormat, wantStatus: http.StatusBadRequest, wantKind: "format_error", wantMessage: "некорректный формат времени, ожидается HH:MM"},
		{name: "bad order", err: domain.ErrInvalidTimeOrder, wantStatus: http.StatusBadRequest, wantKind: "ordering_error", wantMessage: "время окончания должно быть позже времени начала"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fmt.Errorf("%w: %w", createBooking.ErrBookingRejected, tt.err)

			rec := post(&stubUseCase{err: err}, validBody, 42)

			require.Equal(t, tt.wantStatus, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantKind, body.Kind)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		userID     int64
		err        error
		wantStatus int
	}{
		{name: "no user", body: validBody, wantStatus: http.StatusUnauthorized},
		{name: "bad json", body: `{"courtId":`, userID: 42, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"courtId":7,"price":1}`, userID: 42, wantStatus: http.StatusBadRequest},
		{name: "bad date", body: `{"courtId":7,"bookingDate":"12/05/2026","startTime":"10:00","endTime":"11:00"}`, userID: 42, wantStatus: http.StatusBadRequest},
		{name: "slot taken", body: validBody, userID: 42, err: createBooking.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{name: "court not found", body: validBody, userID: 42, err: createBooking.ErrCourtNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid input", body: validBody, userID: 42, err: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", body: validBody, userID: 42, err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(&stubUseCase{err: tt.err}, tt.body, tt.userID)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
