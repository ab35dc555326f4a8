package get_venue_policy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/policy"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgVenueNotFound  = "площадка не найдена"
)

type Handler struct {
	service PolicyService
	logger  Logger
}

func NewHandler(service PolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/policy
// Публичный endpoint - без авторизации
// Без переопределений возвращается глобальная политика с customized=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/policy - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	result, err := h.service.GetVenuePolicy(r.Context(), venueID)
	if err != nil {
		if errors.Is(err, policy.ErrVenueNotFound) {
			h.logger.Warn("GET /venues/{id}/policy - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)
			return
		}

		h.logger.Error("GET /venues/{id}/policy - Failed to get policy: venue_id=%d, error=%v", venueID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venues/{id}/policy - Policy retrieved successfully: venue_id=%d, customized=%t",
		venueID, result.Customized)
	handlers.RespondJSON(w, http.StatusOK, result)
}
