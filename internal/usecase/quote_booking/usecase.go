package quote_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	venueClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/venueservice"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Категории отказа, которые не относятся к ядру валидации
const (
	KindVenueClosed         domain.ErrorKind = "venue_closed"
	KindOutsideWorkingHours domain.ErrorKind = "outside_working_hours"
)

// UseCase use case для расчёта стоимости бронирования без сохранения
type UseCase struct {
	venueClient    VenueServiceClient
	policyProvider PolicyProvider
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueClient VenueServiceClient,
	policyProvider PolicyProvider,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueClient:    venueClient,
		policyProvider: policyProvider,
		timeProvider:   &RealTimeProvider{Location: location},
		logger:         logger,
	}
}

// Execute проверяет запрос теми же правилами, что и создание бронирования, и рассчитывает цену
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.CourtID <= 0 {
		return nil, fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	date := domain.LocalDate(req.Date, now.Location())

	// 2. Получаем корт и площадку
	court, err := uc.venueClient.GetCourt(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, venueClient.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("QuoteBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	venue, err := uc.venueClient.GetVenue(ctx, court.VenueID)
	if err != nil {
		if errors.Is(err, venueClient.ErrVenueNotFound) {
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("QuoteBooking: failed to get venue id=%d: %v", court.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Получаем действующую политику
	policy, err := uc.policyProvider.GetEffective(ctx, venue.ID)
	if err != nil {
		uc.logger.Error("QuoteBooking: failed to get policy for venue=%d: %v", venue.ID, err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	resp := &Response{
		CourtID:   court.ID,
		VenueID:   venue.ID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	// 4. Проверяем правила бронирования
	result := domain.ValidateBookingRequest(
		domain.BookingRequest{StartTime: req.StartTime, EndTime: req.EndTime},
		domain.BookingStartsAt(date, req.StartTime),
		now,
		policy.Booking,
	)
	if !result.Valid {
		resp.ErrorKind = domain.ErrorKindOf(result.Err)
		resp.Reason = result.Err.Error()
		resp.Err = result.Err
		return resp, nil
	}

	interval := domain.Interval{Start: types.TimeString(req.StartTime), End: types.TimeString(req.EndTime)}

	// 5. Проверяем часы работы
	schedule := venue.WorkingHours.ForDate(date)
	if _, _, ok := schedule.Hours(); !ok {
		resp.ErrorKind = KindVenueClosed
		resp.Reason = "venue is closed on this date"
		return resp, nil
	}
	if !schedule.Contains(interval) {
		resp.ErrorKind = KindOutsideWorkingHours
		resp.Reason = "booking is outside working hours"
		return resp, nil
	}

	// 6. Рассчитываем стоимость
	calc := domain.CalculateBookingPrice(
		court.RateCard,
		interval.DurationMinutes(),
		policy.Booking.CommissionRate,
		policy.Rounding,
	)

	resp.Valid = true
	resp.Calculation = &calc

	return resp, nil
}
