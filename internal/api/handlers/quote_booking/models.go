package quote_booking

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	quoteBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/quote_booking"
)

// QuoteResponse HTTP response model
// Поля расчёта заполняются только для допустимого бронирования
type QuoteResponse struct {
	CourtID         int64  `json:"courtId"`
	VenueID         int64  `json:"venueId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Valid           bool   `json:"valid"`
	ErrorKind       string `json:"errorKind,omitempty"`
	Reason          string `json:"reason,omitempty"`
	DurationMinutes *int   `json:"durationMinutes,omitempty"`
	Subtotal        *int64 `json:"subtotal,omitempty"`
	Commission      *int64 `json:"commission,omitempty"`
	TotalAmount     *int64 `json:"totalAmount,omitempty"`
	VenuePayout     *int64 `json:"venuePayout,omitempty"`
}

const (
	msgVenueClosed         = "площадка закрыта в выбранную дату"
	msgOutsideWorkingHours = "интервал выходит за часы работы площадки"
)

func reasonMessage(resp *quoteBooking.Response) string {
	switch {
	case resp.Valid:
		return ""
	case resp.Err != nil:
		return handlers.RuleViolationMessage(resp.Err)
	case resp.ErrorKind == quoteBooking.KindVenueClosed:
		return msgVenueClosed
	case resp.ErrorKind == quoteBooking.KindOutsideWorkingHours:
		return msgOutsideWorkingHours
	default:
		return resp.Reason
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteBooking.Response) *QuoteResponse {
	out := &QuoteResponse{
		CourtID:   resp.CourtID,
		VenueID:   resp.VenueID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime,
		EndTime:   resp.EndTime,
		Valid:     resp.Valid,
		ErrorKind: string(resp.ErrorKind),
		Reason:    reasonMessage(resp),
	}

	if calc := resp.Calculation; calc != nil {
		out.DurationMinutes = &calc.DurationMinutes
		out.Subtotal = &calc.Subtotal
		out.Commission = &calc.Commission
		out.TotalAmount = &calc.TotalAmount
		out.VenuePayout = &calc.VenuePayout
	}

	return out
}
