package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	venueClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/venueservice"
)

// UseCase use case для отмены бронирования с расчётом возврата
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

// Execute выполняет отмену
// Владелец получает возврат по многоуровневой политике, менеджер площадки отменяет с полным возвратом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d, user=%d", req.BookingID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование для проверки прав
	booking, err := uc.getBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	// 3. Определяем, кто отменяет
	byVenue, err := uc.resolveCanceller(ctx, booking, req.UserID)
	if err != nil {
		return nil, err
	}

	// 4. Получаем политику возвратов площадки
	policy, err := uc.policyProvider.GetEffective(ctx, booking.VenueID)
	if err != nil {
		uc.logger.Error("CancelBooking: failed to get policy for venue=%d: %v", booking.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	var (
		refund domain.RefundResult
		status domain.BookingStatus
		now    time.Time
	)

	// 5. Отмена в сериализуемой транзакции: строка блокируется до записи возврата
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		locked, err := uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}

		if !locked.CanBeCancelled() {
			uc.logger.Warn("CancelBooking: booking id=%d has status %s", locked.ID, locked.Status)
			return fmt.Errorf("%w: status is %s", ErrCannotCancel, locked.Status)
		}

		now = uc.timeProvider.Now()

		// 5.1. Рассчитываем возврат
		if byVenue {
			status = domain.StatusCancelledByVenue
			refund = domain.FullRefund(locked.TotalAmount)
			refund.HoursUntilBooking = startsAt(locked, now).Sub(now).Hours()
		} else {
			status = domain.StatusCancelledByUser
			refund, err = domain.CalculateRefund(
				locked.TotalAmount,
				domain.LocalDate(locked.BookingDate, now.Location()),
				locked.StartTime,
				now,
				policy.Refund,
				policy.Rounding,
			)
			if err != nil {
				uc.logger.Error("CancelBooking: failed to calculate refund for booking id=%d: %v", locked.ID, err)
				return fmt.Errorf("%w: failed to calculate refund: %v", ErrInternal, err)
			}
		}

		// 5.2. Сохраняем отмену
		err = uc.bookingRepo.Cancel(txCtx, locked.ID, bookingRepo.CancelParams{
			Status:           status,
			Reason:           req.Reason,
			RefundAmount:     refund.RefundAmount,
			RefundPercentage: refund.RefundPercentage,
			CancelledAt:      now,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrCannotCancel) {
				return ErrCannotCancel
			}
			uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", locked.ID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		booking = locked
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrCannotCancel) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	booking.Status = status
	booking.CancellationReason = req.Reason
	booking.CancelledAt = &now
	booking.RefundAmount = &refund.RefundAmount
	booking.RefundPercentage = &refund.RefundPercentage

	uc.metrics.IncBookingCancelled(string(status), refund.RefundPercentage, refund.RefundAmount)
	uc.logger.Info("CancelBooking: booking id=%d cancelled (%s), refund %d%% = %d",
		booking.ID, status, refund.RefundPercentage, refund.RefundAmount)

	// 6. Публикуем событие с данными возврата для платёжного сервиса
	if err := uc.publisher.PublishBookingCancelled(ctx, booking); err != nil {
		uc.logger.Error("CancelBooking: failed to publish event for booking id=%d: %v", booking.ID, err)
	}

	return &Response{
		BookingID:          booking.ID,
		Status:             status,
		TotalAmount:        booking.TotalAmount,
		RefundAmount:       refund.RefundAmount,
		RefundPercentage:   refund.RefundPercentage,
		HoursUntilBooking:  refund.HoursUntilBooking,
		CancellationReason: req.Reason,
		CancelledAt:        now,
	}, nil
}

func (uc *UseCase) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

// resolveCanceller возвращает true, если отменяет менеджер площадки
// Владелец бронирования всегда отменяет как пользователь
func (uc *UseCase) resolveCanceller(ctx context.Context, booking *domain.Booking, userID int64) (bool, error) {
	if booking.UserID == userID {
		return false, nil
	}

	venue, err := uc.venueClient.GetVenue(ctx, booking.VenueID)
	if err != nil {
		if errors.Is(err, venueClient.ErrVenueNotFound) {
			uc.logger.Warn("CancelBooking: venue id=%d not found", booking.VenueID)
			return false, ErrAccessDenied
		}
		uc.logger.Error("CancelBooking: failed to get venue id=%d: %v", booking.VenueID, err)
		return false, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	if !venue.IsManager(userID) {
		uc.logger.Warn("CancelBooking: user=%d is not allowed to cancel booking id=%d", userID, booking.ID)
		return false, ErrAccessDenied
	}

	return true, nil
}

func startsAt(b *domain.Booking, now time.Time) time.Time {
	return domain.BookingStartsAt(domain.LocalDate(b.BookingDate, now.Location()), b.StartTime.String())
}
