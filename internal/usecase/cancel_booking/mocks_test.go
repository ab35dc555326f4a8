package cancel_booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Копия, чтобы use case не менял общий экземпляр между вызовами
	b := *args.Get(0).(*domain.Booking)
	return &b, args.Error(1)
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id int64, params bookingRepo.CancelParams) error {
	return m.Called(ctx, id, params).Error(0)
}

type mockVenueClient struct {
	mock.Mock
}

func (m *mockVenueClient) GetVenue(ctx context.Context, venueID int64) (*domain.Venue, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

type stubPolicyProvider struct {
	policy domain.Policy
}

func (s stubPolicyProvider) GetEffective(context.Context, int64) (domain.Policy, error) {
	return s.policy, nil
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishBookingCancelled(ctx context.Context, booking *domain.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

type recordingMetrics struct {
	status     string
	percentage int
	amount     int64
	calls      int
}

func (m *recordingMetrics) IncBookingCancelled(status string, refundPercentage int, refundAmount int64) {
	m.status, m.percentage, m.amount = status, refundPercentage, refundAmount
	m.calls++
}

type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
