package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	venueClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/venueservice"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований и ручной смены статуса
type Service struct {
	bookingRepo  BookingRepository
	venueClient  VenueServiceClient
	timeProvider TimeProvider
	logger       Logger
}

type realTimeProvider struct {
	location *time.Location
}

func (p realTimeProvider) Now() time.Time {
	if p.location == nil {
		return time.Now()
	}
	return time.Now().In(p.location)
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	venueClient VenueServiceClient,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		venueClient:  venueClient,
		timeProvider: realTimeProvider{location: location},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь может видеть только своё бронирование
// или если он является менеджером площадки
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Пользователь видит только свои бронирования
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	if req.UserID != req.RequesterID {
		s.logger.Warn("GetUserBookings: user=%d requested bookings of user=%d", req.RequesterID, req.UserID)
		return nil, ErrAccessDenied
	}

	filter := domain.BookingsFilter{
		UserID:          &req.UserID,
		IncludeInactive: req.IncludeInactive,
	}

	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetVenueBookings получает бронирования площадки с фильтрацией
// Поддерживает фильтрацию по корту, периоду, статусу и включению неактивных бронирований
// Доступно только менеджерам площадки
func (s *Service) GetVenueBookings(ctx context.Context, req *models.GetVenueBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetVenueBookings: fetching bookings for venue=%d, user=%d", req.VenueID, req.UserID)
	if req.CourtID != nil {
		logMsg += fmt.Sprintf(", court=%d", *req.CourtID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	s.logger.Info(logMsg)

	if err := s.checkManagerAccess(ctx, req.VenueID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetVenueBookings: invalid filter for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetVenueBookings: repository error for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: GetVenueBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetVenueBookings: successfully fetched %d bookings for venue=%d", len(bookings), req.VenueID)
	return models.FromDomainBookingList(bookings), nil
}

// MarkNoShow отмечает неявку игрока
// Доступно только менеджерам площадки и только после начала сессии
func (s *Service) MarkNoShow(ctx context.Context, bookingID int64, userID int64) error {
	s.logger.Info("MarkNoShow: booking id=%d by user=%d", bookingID, userID)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := s.checkManagerAccess(ctx, booking.VenueID, userID); err != nil {
		return err
	}

	now := s.timeProvider.Now()
	startsAt := domain.LocalDate(booking.BookingDate, now.Location())
	if booking.Status != domain.StatusConfirmed || domain.BookingStartsAt(startsAt, booking.StartTime.String()).After(now) {
		s.logger.Warn("MarkNoShow: booking id=%d with status=%s cannot be marked as no-show", bookingID, booking.Status)
		return ErrInvalidStatusTransition
	}

	if err := s.bookingRepo.MarkNoShow(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrInvalidStatusTransition
		}
		s.logger.Error("MarkNoShow: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: MarkNoShow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkNoShow: booking id=%d marked as no-show", bookingID)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Пользователь может видеть своё бронирование или если он менеджер площадки
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.UserID == userID {
		return nil
	}

	if err := s.checkManagerAccess(ctx, booking.VenueID, userID); err != nil {
		if errors.Is(err, ErrInternal) {
			return err
		}
		return ErrAccessDenied
	}

	return nil
}

// checkManagerAccess проверяет, что пользователь является менеджером площадки
func (s *Service) checkManagerAccess(ctx context.Context, venueID int64, userID int64) error {
	venue, err := s.venueClient.GetVenue(ctx, venueID)
	if err != nil {
		if errors.Is(err, venueClient.ErrVenueNotFound) {
			s.logger.Warn("checkManagerAccess: venue id=%d not found", venueID)
			return ErrVenueNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get venue id=%d: %v", venueID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get venue: %v", ErrInternal, err)
	}

	if !venue.IsManager(userID) {
		s.logger.Warn("checkManagerAccess: user=%d is not a manager of venue=%d", userID, venueID)
		return ErrAccessDenied
	}

	return nil
}
