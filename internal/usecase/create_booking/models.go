package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64     // ID пользователя
	CourtID   int64     // ID корта
	Date      time.Time // Дата бронирования (без времени)
	StartTime string    // Время начала "HH:MM"
	EndTime   string    // Время окончания "HH:MM"
	Notes     *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	UserID          int64
	VenueID         int64
	CourtID         int64
	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Status          string

	Subtotal    int64
	Commission  int64
	TotalAmount int64
	VenuePayout int64

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newResponse(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		UserID:          b.UserID,
		VenueID:         b.VenueID,
		CourtID:         b.CourtID,
		BookingDate:     b.BookingDate,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		Subtotal:        b.Subtotal,
		Commission:      b.Commission,
		TotalAmount:     b.TotalAmount,
		VenuePayout:     b.VenuePayout,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
