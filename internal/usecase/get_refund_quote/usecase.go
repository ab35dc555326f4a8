package get_refund_quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	venueClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/venueservice"
)

// UseCase use case для предварительного расчёта возврата без отмены
type UseCase struct {
	bookingRepo    BookingRepository
	venueClient    VenueServiceClient
	policyProvider PolicyProvider
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	venueClient VenueServiceClient,
	policyProvider PolicyProvider,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		venueClient:    venueClient,
		policyProvider: policyProvider,
		timeProvider:   &RealTimeProvider{Location: location},
		logger:         logger,
	}
}

// Execute рассчитывает возврат по тем же правилам, что и отмена
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.BookingID <= 0 || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: bookingID and userID must be positive", ErrInvalidInput)
	}

	// 1. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("GetRefundQuote: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 2. Проверяем права
	byVenue := false
	if booking.UserID != req.UserID {
		venue, err := uc.venueClient.GetVenue(ctx, booking.VenueID)
		if err != nil && !errors.Is(err, venueClient.ErrVenueNotFound) {
			uc.logger.Error("GetRefundQuote: failed to get venue id=%d: %v", booking.VenueID, err)
			return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
		}
		if venue == nil || !venue.IsManager(req.UserID) {
			return nil, ErrAccessDenied
		}
		byVenue = true
	}

	if !booking.CanBeCancelled() {
		return nil, fmt.Errorf("%w: status is %s", ErrCannotCancel, booking.Status)
	}

	// 3. Получаем политику возвратов
	policy, err := uc.policyProvider.GetEffective(ctx, booking.VenueID)
	if err != nil {
		uc.logger.Error("GetRefundQuote: failed to get policy for venue=%d: %v", booking.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	// 4. Рассчитываем возврат
	now := uc.timeProvider.Now()
	date := domain.LocalDate(booking.BookingDate, now.Location())

	resp := &Response{BookingID: booking.ID, TotalAmount: booking.TotalAmount}

	if byVenue {
		refund := domain.FullRefund(booking.TotalAmount)
		resp.RefundAmount = refund.RefundAmount
		resp.RefundPercentage = refund.RefundPercentage
		resp.HoursUntilBooking = domain.BookingStartsAt(date, booking.StartTime.String()).Sub(now).Hours()
		resp.CancelStatus = domain.StatusCancelledByVenue
		return resp, nil
	}

	refund, err := domain.CalculateRefund(booking.TotalAmount, date, booking.StartTime, now, policy.Refund, policy.Rounding)
	if err != nil {
		uc.logger.Error("GetRefundQuote: failed to calculate refund for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to calculate refund: %v", ErrInternal, err)
	}

	resp.RefundAmount = refund.RefundAmount
	resp.RefundPercentage = refund.RefundPercentage
	resp.HoursUntilBooking = refund.HoursUntilBooking
	resp.CancelStatus = domain.StatusCancelledByUser

	return resp, nil
}
