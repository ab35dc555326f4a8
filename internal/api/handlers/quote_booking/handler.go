package quote_booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	quoteBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/quote_booking"
)

const (
	msgInvalidCourtID = "некорректный ID корта"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingParams  = "необходимо указать date, startTime и endTime"
	msgCourtNotFound  = "корт не найден"
	msgVenueNotFound  = "площадка не найдена"
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/quote?date=&startTime=&endTime=
// Нарушения правил бронирования возвращаются с кодом 200 и valid=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID, err := strconv.ParseInt(mux.Vars(r)["courtId"], 10, 64)
	if err != nil || courtID <= 0 {
		h.logger.Warn("GET /courts/{id}/quote - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	query := r.URL.Query()
	dateStr, startTime, endTime := query.Get("date"), query.Get("startTime"), query.Get("endTime")
	if dateStr == "" || startTime == "" || endTime == "" {
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/quote - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &quoteBooking.Request{
		CourtID:   courtID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, quoteBooking.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/quote - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, quoteBooking.ErrVenueNotFound):
			h.logger.Warn("GET /courts/{id}/quote - Venue not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, quoteBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCourtID)

		default:
			h.logger.Error("GET /courts/{id}/quote - Failed to quote: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/quote - Quote calculated: court_id=%d, valid=%t", courtID, result.Valid)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
