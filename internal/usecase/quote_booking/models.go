package quote_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модель запроса на предварительный расчёт бронирования
type Request struct {
	CourtID   int64
	Date      time.Time
	StartTime string
	EndTime   string
}

// Response результат проверки и расчёта
// При Valid = false расчёт не заполняется, а ErrorKind и Reason описывают первую нарушенную проверку
// Err заполняется только для ошибок правил бронирования
type Response struct {
	CourtID     int64
	VenueID     int64
	Date        time.Time
	StartTime   string
	EndTime     string
	Valid       bool
	ErrorKind   domain.ErrorKind
	Reason      string
	Err         error
	Calculation *domain.BookingCalculation
}
