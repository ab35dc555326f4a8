package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending          BookingStatus = "pending"
	StatusConfirmed        BookingStatus = "confirmed"
	StatusCompleted        BookingStatus = "completed"
	StatusCancelledByUser  BookingStatus = "cancelled_by_user"
	StatusCancelledByVenue BookingStatus = "cancelled_by_venue"
	StatusNoShow           BookingStatus = "no_show"
)

// Booking represents a court reservation at a partner venue
type Booking struct {
	ID              int64
	UserID          int64
	VenueID         int64
	CourtID         int64
	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Расчёт стоимости на момент бронирования (иены)
	Subtotal    int64
	Commission  int64
	TotalAmount int64
	VenuePayout int64

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time
	RefundAmount       *int64
	RefundPercentage   *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies the court
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByVenue &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByVenue
}

// Interval returns the booked interval
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// StartsAt returns the booking start moment
func (b *Booking) StartsAt() time.Time {
	return BookingStartsAt(b.BookingDate, b.StartTime.String())
}

// EndsAt returns the booking end moment
func (b *Booking) EndsAt() time.Time {
	return BookingStartsAt(b.BookingDate, b.EndTime.String())
}

// Calculation returns the stored price breakdown
func (b *Booking) Calculation() BookingCalculation {
	return BookingCalculation{
		Subtotal:        b.Subtotal,
		Commission:      b.Commission,
		TotalAmount:     b.TotalAmount,
		VenuePayout:     b.VenuePayout,
		DurationMinutes: b.DurationMinutes,
	}
}

// ActiveIntervals возвращает интервалы активных бронирований
// Используется как входные данные для IsSlotAvailable и GenerateTimeSlots
func ActiveIntervals(bookings []*Booking) []Interval {
	intervals := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		if b == nil || !b.IsActive() {
			continue
		}
		intervals = append(intervals, b.Interval())
	}
	return intervals
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	CourtID         *int64
	VenueID         *int64
	UserID          *int64
	StartDate       *time.Time     // Начало периода (включительно)
	EndDate         *time.Time     // Конец периода (включительно)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и no-show
}

// IsSingleDay returns true if the filter targets exactly one date
func (f BookingsFilter) IsSingleDay() bool {
	return f.StartDate != nil && f.EndDate != nil && f.StartDate.Equal(*f.EndDate)
}
