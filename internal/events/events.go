package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Ключи маршрутизации событий
const (
	RoutingKeyBookingCreated   = "booking.created"
	RoutingKeyBookingCancelled = "booking.cancelled"
)

// Envelope общая обёртка события
type Envelope struct {
	EventID    string      `json:"eventId"`
	EventType  string      `json:"eventType"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// BookingPayload данные бронирования в событии
type BookingPayload struct {
	BookingID       int64  `json:"bookingId"`
	UserID          int64  `json:"userId"`
	VenueID         int64  `json:"venueId"`
	CourtID         int64  `json:"courtId"`
	BookingDate     string `json:"bookingDate"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	Subtotal        int64  `json:"subtotal"`
	Commission      int64  `json:"commission"`
	TotalAmount     int64  `json:"totalAmount"`
	VenuePayout     int64  `json:"venuePayout"`
}

// CancellationPayload данные отмены, включая возврат для платёжного сервиса
type CancellationPayload struct {
	BookingPayload
	RefundAmount       int64   `json:"refundAmount"`
	RefundPercentage   int     `json:"refundPercentage"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

func newEnvelope(eventType string, payload interface{}, now time.Time) Envelope {
	return Envelope{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OccurredAt: now.UTC(),
		Payload:    payload,
	}
}

func bookingPayload(b *domain.Booking) BookingPayload {
	return BookingPayload{
		BookingID:       b.ID,
		UserID:          b.UserID,
		VenueID:         b.VenueID,
		CourtID:         b.CourtID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		Subtotal:        b.Subtotal,
		Commission:      b.Commission,
		TotalAmount:     b.TotalAmount,
		VenuePayout:     b.VenuePayout,
	}
}

// BookingCreated событие создания бронирования
func BookingCreated(b *domain.Booking, now time.Time) Envelope {
	return newEnvelope(RoutingKeyBookingCreated, bookingPayload(b), now)
}

// BookingCancelled событие отмены бронирования
func BookingCancelled(b *domain.Booking, now time.Time) Envelope {
	payload := CancellationPayload{
		BookingPayload:     bookingPayload(b),
		CancellationReason: b.CancellationReason,
	}
	if b.RefundAmount != nil {
		payload.RefundAmount = *b.RefundAmount
	}
	if b.RefundPercentage != nil {
		payload.RefundPercentage = *b.RefundPercentage
	}
	return newEnvelope(RoutingKeyBookingCancelled, payload, now)
}
