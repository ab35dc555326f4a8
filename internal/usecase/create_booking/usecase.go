package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	venueClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/venueservice"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	venueClient    VenueServiceClient
	policyProvider PolicyProvider
	publisher      EventPublisher
	metrics        Metrics
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	venueClient VenueServiceClient,
	policyProvider PolicyProvider,
	publisher EventPublisher,
	metrics Metrics,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		venueClient:    venueClient,
		policyProvider: policyProvider,
		publisher:      publisher,
		metrics:        metrics,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{Location: location},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, court=%d, date=%s, time=%s-%s",
		req.UserID, req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время, дата трактуется в часовом поясе площадки
	now := uc.timeProvider.Now()
	date := domain.LocalDate(req.Date, now.Location())

	// 3. Получаем корт
	court, err := uc.venueClient.GetCourt(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, venueClient.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 4. Получаем площадку
	venue, err := uc.venueClient.GetVenue(ctx, court.VenueID)
	if err != nil {
		if errors.Is(err, venueClient.ErrVenueNotFound) {
			uc.logger.Warn("CreateBooking: venue id=%d not found", court.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateBooking: failed to get venue id=%d: %v", court.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 5. Получаем действующую политику площадки
	policy, err := uc.policyProvider.GetEffective(ctx, venue.ID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get policy for venue=%d: %v", venue.ID, err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	// 6. Проверяем правила бронирования
	startsAt := domain.BookingStartsAt(date, req.StartTime)
	result := domain.ValidateBookingRequest(
		domain.BookingRequest{StartTime: req.StartTime, EndTime: req.EndTime},
		startsAt,
		now,
		policy.Booking,
	)
	if !result.Valid {
		uc.logger.Warn("CreateBooking: request rejected (%s): %v", domain.ErrorKindOf(result.Err), result.Err)
		return nil, fmt.Errorf("%w: %w", ErrBookingRejected, result.Err)
	}

	// После валидатора формат и порядок времени гарантированы
	interval := domain.Interval{Start: types.TimeString(req.StartTime), End: types.TimeString(req.EndTime)}

	// 7. Проверяем часы работы площадки
	if err := validateWorkingHours(venue.WorkingHours.ForDate(date), interval); err != nil {
		uc.logger.Warn("CreateBooking: venue=%d, date=%s: %v", venue.ID, date.Format(domain.DateFormat), err)
		return nil, err
	}

	// 8. Рассчитываем стоимость
	calc := domain.CalculateBookingPrice(
		court.RateCard,
		interval.DurationMinutes(),
		policy.Booking.CommissionRate,
		policy.Rounding,
	)

	var created *domain.Booking

	// 9. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Получаем активные бронирования корта на эту дату с блокировкой (FOR UPDATE)
		filter := domain.BookingsFilter{
			CourtID:   &court.ID,
			StartDate: &date,
			EndDate:   &date,
		}

		bookings, err := uc.bookingRepo.GetByFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 9.2. Повторно проверяем пересечения уже под блокировкой
		if !domain.IsSlotAvailable(interval.Start, interval.End, domain.ActiveIntervals(bookings)) {
			uc.logger.Warn("CreateBooking: court=%d, %s %s is already booked",
				court.ID, date.Format(domain.DateFormat), interval)
			return ErrSlotNotAvailable
		}

		// 9.3. Сохраняем бронирование
		booking := &domain.Booking{
			UserID:          req.UserID,
			VenueID:         venue.ID,
			CourtID:         court.ID,
			BookingDate:     date,
			StartTime:       interval.Start,
			EndTime:         interval.End,
			DurationMinutes: calc.DurationMinutes,
			Status:          domain.StatusConfirmed,
			Subtotal:        calc.Subtotal,
			Commission:      calc.Commission,
			TotalAmount:     calc.TotalAmount,
			VenuePayout:     calc.VenuePayout,
			Notes:           req.Notes,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateBooking: unique constraint rejected court=%d, %s %s",
					court.ID, date.Format(domain.DateFormat), interval)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.IncSlotConflict()
			return nil, err
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.metrics.IncBookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%d", created.ID, created.TotalAmount)

	// 10. Публикуем событие, ошибка публикации не отменяет бронирование
	if err := uc.publisher.PublishBookingCreated(ctx, created); err != nil {
		uc.logger.Error("CreateBooking: failed to publish event for booking id=%d: %v", created.ID, err)
	}

	return newResponse(created), nil
}
