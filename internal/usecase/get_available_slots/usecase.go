package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	venueClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/venueservice"
)

// UseCase use case для получения слотов корта на день
type UseCase struct {
	bookingRepo    BookingRepository
	venueClient    VenueServiceClient
	policyProvider PolicyProvider
	metrics        Metrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	venueClient VenueServiceClient,
	policyProvider PolicyProvider,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		venueClient:    venueClient,
		policyProvider: policyProvider,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{Location: location},
		logger:         logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: court=%d, date=%s", req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время, дата трактуется в часовом поясе площадки
	now := uc.timeProvider.Now()
	date := domain.LocalDate(req.Date, now.Location())

	// 3. Получаем корт
	court, err := uc.venueClient.GetCourt(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, venueClient.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailableSlots: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 4. Получаем площадку
	venue, err := uc.venueClient.GetVenue(ctx, court.VenueID)
	if err != nil {
		if errors.Is(err, venueClient.ErrVenueNotFound) {
			uc.logger.Warn("GetAvailableSlots: venue id=%d not found", court.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get venue id=%d: %v", court.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 5. Получаем действующую политику площадки
	policy, err := uc.policyProvider.GetEffective(ctx, venue.ID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get policy for venue=%d: %v", venue.ID, err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	// 6. Валидация даты с учетом политики
	if err := validateDate(date, now, policy.Booking.MaxLeadDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	response := &Response{
		Date:                date,
		CourtID:             court.ID,
		VenueID:             venue.ID,
		SlotDurationMinutes: policy.Booking.SlotDurationMinutes,
		Slots:               []Slot{},
	}

	// 7. Получаем рабочие часы на указанную дату
	openAt, closeAt, ok := venue.WorkingHours.ForDate(date).Hours()
	if !ok {
		uc.logger.Info("GetAvailableSlots: venue=%d is closed on %s", venue.ID, date.Format(domain.DateFormat))
		return response, nil
	}
	response.IsOpen = true

	// 8. Получаем активные бронирования корта на эту дату
	filter := domain.BookingsFilter{
		CourtID:   &court.ID,
		StartDate: &date,
		EndDate:   &date,
	}

	bookings, err := uc.bookingRepo.GetByFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 9. Генерируем слоты
	timeSlots, err := domain.GenerateTimeSlots(
		court.ID,
		court.RateCard.PricePerHour,
		openAt,
		closeAt,
		domain.ActiveIntervals(bookings),
		policy.Booking.SlotDurationMinutes,
		policy.Rounding,
	)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots for venue=%d (%s-%s): %v",
			venue.ID, openAt, closeAt, err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 10. Слоты внутри минимального времени до начала недоступны
	markTooSoon(timeSlots, date, now, policy.Booking.MinLeadHours)

	available := 0
	for _, s := range timeSlots {
		if s.IsAvailable {
			available++
		}
		response.Slots = append(response.Slots, Slot{
			ID:          s.ID,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			IsAvailable: s.IsAvailable,
			Price:       s.Price,
		})
	}
	uc.metrics.AddSlotsGenerated(available, len(timeSlots)-available)

	uc.logger.Info("GetAvailableSlots: generated %d slots (%d available) for court=%d, date=%s",
		len(timeSlots), available, court.ID, date.Format(domain.DateFormat))

	return response, nil
}
