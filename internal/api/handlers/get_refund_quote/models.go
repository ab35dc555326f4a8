package get_refund_quote

import refundQuote "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_refund_quote"

// RefundQuoteResponse HTTP response model
type RefundQuoteResponse struct {
	BookingID         int64   `json:"bookingId"`
	TotalAmount       int64   `json:"totalAmount"`
	RefundAmount      int64   `json:"refundAmount"`
	RefundPercentage  int     `json:"refundPercentage"`
	HoursUntilBooking float64 `json:"hoursUntilBooking"`
	CancelStatus      string  `json:"cancelStatus"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *refundQuote.Response) *RefundQuoteResponse {
	return &RefundQuoteResponse{
		BookingID:         resp.BookingID,
		TotalAmount:       resp.TotalAmount,
		RefundAmount:      resp.RefundAmount,
		RefundPercentage:  resp.RefundPercentage,
		HoursUntilBooking: resp.HoursUntilBooking,
		CancelStatus:      string(resp.CancelStatus),
	}
}
