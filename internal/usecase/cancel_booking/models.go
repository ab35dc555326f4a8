package cancel_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID int64   // ID бронирования
	UserID    int64   // ID пользователя, выполняющего отмену
	Reason    *string // Причина отмены (опционально)
}

// Response модель ответа на отмену
type Response struct {
	BookingID          int64
	Status             domain.BookingStatus
	TotalAmount        int64
	RefundAmount       int64
	RefundPercentage   int
	HoursUntilBooking  float64
	CancellationReason *string
	CancelledAt        time.Time
}
