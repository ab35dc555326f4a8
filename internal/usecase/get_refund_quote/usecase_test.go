package get_refund_quote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
)

var jst = time.FixedZone("JST", 9*3600)

type stubRepo struct {
	booking *domain.Booking
	err     error
}

func (s stubRepo) GetByID(context.Context, int64) (*domain.Booking, error) {
	return s.booking, s.err
}

type stubVenueClient struct{}

func (stubVenueClient) GetVenue(_ context.Context, venueID int64) (*domain.Venue, error) {
	return &domain.Venue{ID: venueID, ManagerIDs: []int64{100}}, nil
}

type stubPolicyProvider struct {
	policy domain.Policy
}

func (s stubPolicyProvider) GetEffective(context.Context, int64) (domain.Policy, error) {
	return s.policy, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          10,
		UserID:      42,
		VenueID:     1,
		BookingDate: time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
		StartTime:   "18:00",
		EndTime:     "19:00",
		Status:      status,
		TotalAmount: 3125,
	}
}

func newUseCase(repo stubRepo, policy domain.Policy, now time.Time) *UseCase {
	uc := NewUseCase(repo, stubVenueClient{}, stubPolicyProvider{policy: policy}, jst, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
}

func TestExecute_RefundPreview(t *testing.T) {
	// 18 часов до начала: частичный возврат 50% от 3125 = 1562.5
	now := time.Date(2026, 5, 12, 0, 0, 0, 0, jst)

	tests := []struct {
		name       string
		rounding   domain.RoundingMode
		userID     int64
		wantAmount int64
		wantPct    int
		wantStatus domain.BookingStatus
	}{
		{name: "owner half up", rounding: domain.RoundHalfUp, userID: 42, wantAmount: 1563, wantPct: 50, wantStatus: domain.StatusCancelledByUser},
		{name: "owner half even", rounding: domain.RoundHalfEven, userID: 42, wantAmount: 1562, wantPct: 50, wantStatus: domain.StatusCancelledByUser},
		{name: "venue manager", rounding: domain.RoundHalfUp, userID: 100, wantAmount: 3125, wantPct: 100, wantStatus: domain.StatusCancelledByVenue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := domain.DefaultPolicy()
			policy.Rounding = tt.rounding
			uc := newUseCase(stubRepo{booking: testBooking(domain.StatusConfirmed)}, policy, now)

			resp, err := uc.Execute(context.Background(), &Request{BookingID: 10, UserID: tt.userID})
			require.NoError(t, err)

			assert.Equal(t, tt.wantAmount, resp.RefundAmount)
			assert.Equal(t, tt.wantPct, resp.RefundPercentage)
			assert.Equal(t, tt.wantStatus, resp.CancelStatus)
			assert.InDelta(t, 18.0, resp.HoursUntilBooking, 1e-9)
			assert.Equal(t, int64(3125), resp.TotalAmount)
		})
	}
}

func TestExecute_RefundPreviewErrors(t *testing.T) {
	now := time.Date(2026, 5, 12, 0, 0, 0, 0, jst)
	policy := domain.DefaultPolicy()

	_, err := newUseCase(stubRepo{err: bookingRepo.ErrBookingNotFound}, policy, now).
		Execute(context.Background(), &Request{BookingID: 10, UserID: 42})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = newUseCase(stubRepo{booking: testBooking(domain.StatusConfirmed)}, policy, now).
		Execute(context.Background(), &Request{BookingID: 10, UserID: 7})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = newUseCase(stubRepo{booking: testBooking(domain.StatusCompleted)}, policy, now).
		Execute(context.Background(), &Request{BookingID: 10, UserID: 42})
	assert.ErrorIs(t, err, ErrCannotCancel)

	_, err = newUseCase(stubRepo{booking: testBooking(domain.StatusConfirmed)}, policy, now).
		Execute(context.Background(), &Request{BookingID: 0, UserID: 42})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
