package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidInput        = "некорректные данные бронирования"
	msgSlotNotAvailable    = "выбранный интервал уже занят"
	msgCourtNotFound       = "корт не найден"
	msgVenueNotFound       = "площадка не найдена"
	msgVenueClosed         = "площадка закрыта в выбранную дату"
	msgOutsideWorkingHours = "интервал выходит за часы работы площадки"

	kindVenueClosed         = "venue_closed"
	kindOutsideWorkingHours = "outside_working_hours"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid booking date: %q", req.BookingDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrBookingRejected):
			h.logger.Warn("POST /bookings - Booking rejected: user_id=%d, court_id=%d, reason=%v",
				userID, req.CourtID, err)
			h.respondRejected(w, err)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, court_id=%d, %s-%s",
				userID, req.CourtID, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrVenueClosed):
			h.logger.Warn("POST /bookings - Venue closed: court_id=%d, date=%s", req.CourtID, req.BookingDate)
			handlers.RespondErrorWithKind(w, http.StatusUnprocessableEntity, kindVenueClosed, msgVenueClosed)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: court_id=%d, %s-%s",
				req.CourtID, req.StartTime, req.EndTime)
			handlers.RespondErrorWithKind(w, http.StatusUnprocessableEntity, kindOutsideWorkingHours, msgOutsideWorkingHours)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, court_id=%d, error=%v",
				userID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, court_id=%d",
		result.ID, userID, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// respondRejected ошибки формата и порядка - 400, нарушения правил площадки - 422
func (h *Handler) respondRejected(w http.ResponseWriter, err error) {
	msg := handlers.RuleViolationMessage(err)

	switch kind := domain.ErrorKindOf(err); kind {
	case domain.KindFormatError, domain.KindOrderingError:
		handlers.RespondErrorWithKind(w, http.StatusBadRequest, string(kind), msg)
	default:
		handlers.RespondErrorWithKind(w, http.StatusUnprocessableEntity, string(domain.KindPolicyViolation), msg)
	}
}
