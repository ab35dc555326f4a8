package booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// CancelParams данные отмены бронирования
type CancelParams struct {
	Status           domain.BookingStatus
	Reason           *string
	RefundAmount     int64
	RefundPercentage int
	CancelledAt      time.Time
}
