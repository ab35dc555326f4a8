package cancel_booking

import (
	"time"

	cancelBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model
// Тело запроса необязательно
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	BookingID          int64   `json:"bookingId"`
	Status             string  `json:"status"`
	TotalAmount        int64   `json:"totalAmount"`
	RefundAmount       int64   `json:"refundAmount"`
	RefundPercentage   int     `json:"refundPercentage"`
	HoursUntilBooking  float64 `json:"hoursUntilBooking"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        string  `json:"cancelledAt"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CancelBookingRequest) ToUseCaseRequest(bookingID int64, userID int64) *cancelBooking.Request {
	return &cancelBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
		Reason:    r.CancellationReason,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		BookingID:          resp.BookingID,
		Status:             string(resp.Status),
		TotalAmount:        resp.TotalAmount,
		RefundAmount:       resp.RefundAmount,
		RefundPercentage:   resp.RefundPercentage,
		HoursUntilBooking:  resp.HoursUntilBooking,
		CancellationReason: resp.CancellationReason,
		CancelledAt:        resp.CancelledAt.Format(time.RFC3339),
	}
}
