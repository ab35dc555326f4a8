package create_booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	switch v := args.Get(0).(type) {
	case func(context.Context, *domain.Booking) *domain.Booking:
		return v(ctx, booking), args.Error(1)
	case *domain.Booking:
		return v, args.Error(1)
	default:
		return nil, args.Error(1)
	}
}

func (m *mockBookingRepo) GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
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

func (m *mockVenueClient) GetCourt(ctx context.Context, courtID int64) (*domain.Court, error) {
	args := m.Called(ctx, courtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Court), args.Error(1)
}

type stubPolicyProvider struct {
	policy domain.Policy
	err    error
}

func (s stubPolicyProvider) GetEffective(context.Context, int64) (domain.Policy, error) {
	return s.policy, s.err
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishBookingCreated(ctx context.Context, booking *domain.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

type countingMetrics struct {
	created   int
	conflicts int
}

func (m *countingMetrics) IncBookingCreated() { m.created++ }
func (m *countingMetrics) IncSlotConflict()   { m.conflicts++ }

// inlineTxManager выполняет функцию без реальной транзакции
type inlineTxManager struct {
	calls int
}

func (m *inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
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
