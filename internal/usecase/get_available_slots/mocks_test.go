package get_available_slots

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

type mockBookingRepo struct {
	mock.Mock
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

type mockPolicyProvider struct {
	mock.Mock
}

func (m *mockPolicyProvider) GetEffective(ctx context.Context, venueID int64) (domain.Policy, error) {
	args := m.Called(ctx, venueID)
	return args.Get(0).(domain.Policy), args.Error(1)
}

type mockMetrics struct {
	available   int
	unavailable int
}

func (m *mockMetrics) AddSlotsGenerated(available, unavailable int) {
	m.available += available
	m.unavailable += unavailable
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
