package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	venueClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/venueservice"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

var jst = time.FixedZone("JST", 9*3600)

const (
	userID  = int64(42)
	courtID = int64(7)
	venueID = int64(1)
)

func testVenue() *domain.Venue {
	day := domain.DaySchedule{IsOpen: true, OpenTime: ptr.Ptr("08:00"), CloseTime: ptr.Ptr("22:00")}
	return &domain.Venue{
		ID:         venueID,
		ManagerIDs: []int64{100},
		WorkingHours: domain.WorkingHours{
			Monday: day, Tuesday: day, Wednesday: day, Thursday: day, Friday: day, Saturday: day,
			Sunday: domain.DaySchedule{IsOpen: false},
		},
	}
}

type fixture struct {
	uc        *UseCase
	repo      *mockBookingRepo
	client    *mockVenueClient
	publisher *mockPublisher
	metrics   *countingMetrics
	tx        *inlineTxManager
}

// Понедельник 2026-05-11 10:00 по Токио
func newFixture() *fixture {
	f := &fixture{
		repo:      &mockBookingRepo{},
		client:    &mockVenueClient{},
		publisher: &mockPublisher{},
		metrics:   &countingMetrics{},
		tx:        &inlineTxManager{},
	}
	f.uc = NewUseCase(f.repo, f.client, stubPolicyProvider{policy: domain.DefaultPolicy()},
		f.publisher, f.metrics, f.tx, jst, nopLogger{})
	f.uc.timeProvider = fixedTimeProvider{now: time.Date(2026, 5, 11, 10, 0, 0, 0, jst)}

	f.client.On("GetCourt", mock.Anything, courtID).Return(&domain.Court{
		ID: courtID, VenueID: venueID, RateCard: domain.RateCard{PricePerHour: 2000, PricePerHalfHour: ptr.Ptr(int64(1200))},
	}, nil)
	f.client.On("GetVenue", mock.Anything, venueID).Return(testVenue(), nil)
	return f
}

func request(start, end string) *Request {
	return &Request{
		UserID:    userID,
		CourtID:   courtID,
		Date:      time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
		StartTime: start,
		EndTime:   end,
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()
	f.repo.On("GetByFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{
		{StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed},
		{StartTime: "11:30", EndTime: "12:30", Status: domain.StatusConfirmed},
	}, nil)
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Return(func(_ context.Context, b *domain.Booking) *domain.Booking {
			b.ID = 555
			return b
		}, nil)
	f.publisher.On("PublishBookingCreated", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.uc.Execute(context.Background(), request("10:00", "11:30"))
	require.NoError(t, err)

	assert.Equal(t, int64(555), resp.ID)
	assert.Equal(t, venueID, resp.VenueID)
	assert.Equal(t, time.Date(2026, 5, 12, 0, 0, 0, 0, jst), resp.BookingDate)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:30"), resp.EndTime)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, int64(3000), resp.Subtotal)
	assert.Equal(t, int64(300), resp.Commission)
	assert.Equal(t, int64(3000), resp.TotalAmount)
	assert.Equal(t, int64(2700), resp.VenuePayout)

	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, 1, f.metrics.created)
	f.publisher.AssertCalled(t, "PublishBookingCreated", mock.Anything, mock.Anything)
}

func TestExecute_HalfHourRate(t *testing.T) {
	f := newFixture()
	f.repo.On("GetByFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	f.repo.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, b *domain.Booking) *domain.Booking { return b }, nil)
	f.publisher.On("PublishBookingCreated", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.uc.Execute(context.Background(), request("18:00", "18:30"))
	require.NoError(t, err)

	assert.Equal(t, int64(1200), resp.TotalAmount)
	assert.Equal(t, int64(120), resp.Commission)
	assert.Equal(t, int64(1080), resp.VenuePayout)
}

func TestExecute_SlotTaken(t *testing.T) {
	f := newFixture()
	f.repo.On("GetByFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{
		{StartTime: "10:30", EndTime: "11:30", Status: domain.StatusConfirmed},
	}, nil)

	_, err := f.uc.Execute(context.Background(), request("10:00", "11:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	assert.Equal(t, 1, f.metrics.conflicts)
	assert.Zero(t, f.metrics.created)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishBookingCreated", mock.Anything, mock.Anything)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	f := newFixture()
	f.repo.On("GetByFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{
		{StartTime: "10:00", EndTime: "11:00", Status: domain.StatusCancelledByUser},
	}, nil)
	f.repo.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, b *domain.Booking) *domain.Booking { return b }, nil)
	f.publisher.On("PublishBookingCreated", mock.Anything, mock.Anything).Return(nil)

	_, err := f.uc.Execute(context.Background(), request("10:00", "11:00"))
	assert.NoError(t, err)
}

func TestExecute_UniqueConstraintConflict(t *testing.T) {
	f := newFixture()
	f.repo.On("GetByFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	f.repo.On("Create", mock.Anything, mock.Anything).
		Return(nil, errors.Join(bookingRepo.ErrSlotNotAvailable, errors.New("pq: 23505")))

	_, err := f.uc.Execute(context.Background(), request("10:00", "11:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 1, f.metrics.conflicts)
}

func TestExecute_PublishFailureDoesNotFail(t *testing.T) {
	f := newFixture()
	f.repo.On("GetByFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	f.repo.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, b *domain.Booking) *domain.Booking { return b }, nil)
	f.publisher.On("PublishBookingCreated", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	resp, err := f.uc.Execute(context.Background(), request("10:00", "11:00"))
	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, 1, f.metrics.created)
}

func TestExecute_RejectedByPolicy(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		start    string
		end      string
		wantKind domain.ErrorKind
		wantErr  error
	}{
		{name: "past date", date: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), start: "10:00", end: "11:00",
			wantKind: domain.KindPolicyViolation, wantErr: domain.ErrPastDate},
		{name: "too soon", date: time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC), start: "11:00", end: "12:00",
			wantKind: domain.KindPolicyViolation, wantErr: domain.ErrTooSoon},
		{name: "too far", date: time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC), start: "10:00", end: "11:00",
			wantKind: domain.KindPolicyViolation, wantErr: domain.ErrTooFarInFuture},
		{name: "bad format", date: time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC), start: "10:00", end: "1100",
			wantKind: domain.KindFormatError, wantErr: domain.ErrInvalidFormat},
		{name: "reversed", date: time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC), start: "11:00", end: "10:00",
			wantKind: domain.KindOrderingError, wantErr: domain.ErrInvalidTimeOrder},
		{name: "too short", date: time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC), start: "10:00", end: "10:15",
			wantKind: domain.KindPolicyViolation, wantErr: domain.ErrTooShort},
		{name: "too long", date: time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC), start: "10:00", end: "14:30",
			wantKind: domain.KindPolicyViolation, wantErr: domain.ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := request(tt.start, tt.end)
			req.Date = tt.date

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrBookingRejected)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantKind, domain.ErrorKindOf(err))
			assert.Zero(t, f.tx.calls)
		})
	}
}

func TestExecute_WorkingHours(t *testing.T) {
	t.Run("closed day", func(t *testing.T) {
		f := newFixture()
		req := request("10:00", "11:00")
		req.Date = time.Date(2026, 5, 17, 0, 0, 0, 0, time.UTC)

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrVenueClosed)
	})

	t.Run("after closing", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Execute(context.Background(), request("21:30", "22:30"))
		assert.ErrorIs(t, err, ErrOutsideWorkingHours)
	})

	t.Run("ends exactly at closing", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
		f.repo.On("Create", mock.Anything, mock.Anything).
			Return(func(_ context.Context, b *domain.Booking) *domain.Booking { return b }, nil)
		f.publisher.On("PublishBookingCreated", mock.Anything, mock.Anything).Return(nil)

		_, err := f.uc.Execute(context.Background(), request("21:00", "22:00"))
		assert.NoError(t, err)
	})
}

func TestExecute_InputAndDependencyErrors(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		f := newFixture()
		req := request("10:00", "11:00")
		req.UserID = 0
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("notes too long", func(t *testing.T) {
		f := newFixture()
		req := request("10:00", "11:00")
		notes := make([]byte, domain.MaxNotesLength+1)
		for i := range notes {
			notes[i] = 'a'
		}
		req.Notes = ptr.Ptr(string(notes))
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("court not found", func(t *testing.T) {
		f := newFixture()
		f.client.ExpectedCalls = nil
		f.client.On("GetCourt", mock.Anything, courtID).Return(nil, venueClient.ErrCourtNotFound)
		_, err := f.uc.Execute(context.Background(), request("10:00", "11:00"))
		assert.ErrorIs(t, err, ErrCourtNotFound)
	})

	t.Run("policy unavailable", func(t *testing.T) {
		f := newFixture()
		f.uc.policyProvider = stubPolicyProvider{err: errors.New("db down")}
		_, err := f.uc.Execute(context.Background(), request("10:00", "11:00"))
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByFilter", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
		_, err := f.uc.Execute(context.Background(), request("10:00", "11:00"))
		assert.ErrorIs(t, err, ErrInternal)
	})
}
