package get_refund_quote

import "github.com/m04kA/SMC-CourtBookingService/internal/domain"

// Request модель запроса на расчёт возврата
type Request struct {
	BookingID int64
	UserID    int64
}

// Response возврат, который получит пользователь при отмене прямо сейчас
type Response struct {
	BookingID         int64
	TotalAmount       int64
	RefundAmount      int64
	RefundPercentage  int
	HoursUntilBooking float64
	CancelStatus      domain.BookingStatus // Статус, с которым будет отменено бронирование
}
