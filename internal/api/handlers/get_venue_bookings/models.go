package get_venue_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// date задаёт один день, from/to задают период; date имеет приоритет
func ToServiceRequest(venueID int64, userID int64, query url.Values) (*models.GetVenueBookingsRequest, error) {
	req := &models.GetVenueBookingsRequest{
		UserID:  userID,
		VenueID: venueID,
	}

	if courtIDStr := query.Get("courtId"); courtIDStr != "" {
		courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid courtId: %w", err)
		}
		req.CourtID = &courtID
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
		var err error
		if req.StartDate, err = parseOptionalDate(query.Get("from")); err != nil {
			return nil, fmt.Errorf("invalid from: %w", err)
		}
		if req.EndDate, err = parseOptionalDate(query.Get("to")); err != nil {
			return nil, fmt.Errorf("invalid to: %w", err)
		}
	}

	if includeInactiveStr := query.Get("includeInactive"); includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	date, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
