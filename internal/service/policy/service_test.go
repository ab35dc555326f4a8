package policy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	policyRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/policy"
	venueClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/venueservice"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/policy/models"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

type mockPolicyRepo struct {
	mock.Mock
}

func (m *mockPolicyRepo) GetByVenue(ctx context.Context, venueID int64) (*domain.PolicyOverride, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PolicyOverride), args.Error(1)
}

func (m *mockPolicyRepo) Upsert(ctx context.Context, override *domain.PolicyOverride) error {
	return m.Called(ctx, override).Error(0)
}

func (m *mockPolicyRepo) DeleteByVenue(ctx context.Context, venueID int64) error {
	return m.Called(ctx, venueID).Error(0)
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const (
	venueID   = int64(1)
	managerID = int64(100)
)

func setup() (*Service, *mockPolicyRepo, *mockVenueClient) {
	repo := &mockPolicyRepo{}
	client := &mockVenueClient{}
	return NewService(repo, client, domain.DefaultPolicy(), nopLogger{}), repo, client
}

func venue() *domain.Venue {
	return &domain.Venue{ID: venueID, Name: "Court Club", ManagerIDs: []int64{managerID}}
}

func TestService_GetEffective_Global(t *testing.T) {
	svc, repo, _ := setup()
	repo.On("GetByVenue", mock.Anything, venueID).Return(nil, policyRepo.ErrPolicyNotFound)

	got, err := svc.GetEffective(context.Background(), venueID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPolicy(), got)
}

func TestService_GetEffective_Override(t *testing.T) {
	svc, repo, _ := setup()
	repo.On("GetByVenue", mock.Anything, venueID).Return(&domain.PolicyOverride{
		VenueID:        venueID,
		MinLeadHours:   ptr.Ptr(0),
		CommissionRate: ptr.Ptr(0.2),
	}, nil)

	got, err := svc.GetEffective(context.Background(), venueID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Booking.MinLeadHours)
	assert.Equal(t, 0.2, got.Booking.CommissionRate)
	assert.Equal(t, domain.DefaultMaxLeadDays, got.Booking.MaxLeadDays)
}

func TestService_GetEffective_InconsistentOverrideFallsBack(t *testing.T) {
	svc, repo, _ := setup()
	repo.On("GetByVenue", mock.Anything, venueID).Return(&domain.PolicyOverride{
		VenueID:            venueID,
		PartialRefundHours: ptr.Ptr(48.0),
	}, nil)

	got, err := svc.GetEffective(context.Background(), venueID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPolicy(), got)
}

func TestService_GetEffective_RepositoryError(t *testing.T) {
	svc, repo, _ := setup()
	repo.On("GetByVenue", mock.Anything, venueID).Return(nil, errors.New("connection refused"))

	_, err := svc.GetEffective(context.Background(), venueID)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_GetVenuePolicy(t *testing.T) {
	svc, repo, client := setup()
	client.On("GetVenue", mock.Anything, venueID).Return(venue(), nil)
	repo.On("GetByVenue", mock.Anything, venueID).Return(&domain.PolicyOverride{
		VenueID:             venueID,
		SlotDurationMinutes: ptr.Ptr(30),
	}, nil)

	got, err := svc.GetVenuePolicy(context.Background(), venueID)
	require.NoError(t, err)
	assert.True(t, got.Customized)
	assert.Equal(t, 30, got.SlotDurationMinutes)
	assert.Equal(t, "half_up", got.RoundingMode)
}

func TestService_GetVenuePolicy_VenueNotFound(t *testing.T) {
	svc, _, client := setup()
	client.On("GetVenue", mock.Anything, venueID).Return(nil, venueClient.ErrVenueNotFound)

	_, err := svc.GetVenuePolicy(context.Background(), venueID)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestService_Update(t *testing.T) {
	svc, repo, client := setup()
	client.On("GetVenue", mock.Anything, venueID).Return(venue(), nil)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(o *domain.PolicyOverride) bool {
		return o.VenueID == venueID && *o.MaxLeadDays == 14
	})).Return(nil)

	got, err := svc.Update(context.Background(), venueID, &models.UpdatePolicyRequest{
		UserID:      managerID,
		MaxLeadDays: ptr.Ptr(14),
	})
	require.NoError(t, err)
	assert.True(t, got.Customized)
	assert.Equal(t, 14, got.MaxLeadDays)
	repo.AssertExpectations(t)
}

func TestService_Update_AccessDenied(t *testing.T) {
	svc, repo, client := setup()
	client.On("GetVenue", mock.Anything, venueID).Return(venue(), nil)

	_, err := svc.Update(context.Background(), venueID, &models.UpdatePolicyRequest{
		UserID:      999,
		MaxLeadDays: ptr.Ptr(14),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestService_Update_InvalidMergedPolicy(t *testing.T) {
	svc, repo, client := setup()
	client.On("GetVenue", mock.Anything, venueID).Return(venue(), nil)

	_, err := svc.Update(context.Background(), venueID, &models.UpdatePolicyRequest{
		UserID:             managerID,
		MaxDurationMinutes: ptr.Ptr(15),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestService_Update_EmptyResets(t *testing.T) {
	svc, repo, client := setup()
	client.On("GetVenue", mock.Anything, venueID).Return(venue(), nil)
	repo.On("DeleteByVenue", mock.Anything, venueID).Return(policyRepo.ErrPolicyNotFound)

	got, err := svc.Update(context.Background(), venueID, &models.UpdatePolicyRequest{UserID: managerID})
	require.NoError(t, err)
	assert.False(t, got.Customized)
}

func TestService_Reset(t *testing.T) {
	svc, repo, client := setup()
	client.On("GetVenue", mock.Anything, venueID).Return(venue(), nil)
	repo.On("DeleteByVenue", mock.Anything, venueID).Return(nil)

	require.NoError(t, svc.Reset(context.Background(), venueID, managerID))
	repo.AssertExpectations(t)
}
