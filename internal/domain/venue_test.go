package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

func openDay(openAt, closeAt string) DaySchedule {
	return DaySchedule{IsOpen: true, OpenTime: ptr.Ptr(openAt), CloseTime: ptr.Ptr(closeAt)}
}

func TestWorkingHours_ForDate(t *testing.T) {
	wh := WorkingHours{
		Monday:   openDay("09:00", "21:00"),
		Saturday: openDay("08:00", "23:00"),
	}

	// 2026-05-11 понедельник, 2026-05-16 суббота, 2026-05-17 воскресенье
	openAt, closeAt, ok := wh.ForDate(time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC)).Hours()
	assert.True(t, ok)
	assert.Equal(t, "09:00", openAt)
	assert.Equal(t, "21:00", closeAt)

	openAt, _, ok = wh.ForDate(time.Date(2026, 5, 16, 0, 0, 0, 0, time.UTC)).Hours()
	assert.True(t, ok)
	assert.Equal(t, "08:00", openAt)

	_, _, ok = wh.ForDate(time.Date(2026, 5, 17, 0, 0, 0, 0, time.UTC)).Hours()
	assert.False(t, ok)
}

func TestDaySchedule_Contains(t *testing.T) {
	day := openDay("09:00", "21:00")

	assert.True(t, day.Contains(interval(t, "09:00", "10:00")))
	assert.True(t, day.Contains(interval(t, "20:00", "21:00")))
	assert.False(t, day.Contains(interval(t, "08:30", "09:30")))
	assert.False(t, day.Contains(interval(t, "20:30", "21:30")))

	closed := DaySchedule{IsOpen: false}
	assert.False(t, closed.Contains(interval(t, "10:00", "11:00")))
}

func TestVenue_IsManager(t *testing.T) {
	v := &Venue{ID: 1, ManagerIDs: []int64{10, 20}}
	assert.True(t, v.IsManager(20))
	assert.False(t, v.IsManager(30))
}

func TestBooking_Status(t *testing.T) {
	b := &Booking{Status: StatusConfirmed}
	assert.True(t, b.IsActive())
	assert.True(t, b.CanBeCancelled())
	assert.False(t, b.IsCancelled())

	b.Status = StatusCompleted
	assert.True(t, b.IsActive())
	assert.False(t, b.CanBeCancelled())

	b.Status = StatusCancelledByVenue
	assert.False(t, b.IsActive())
	assert.True(t, b.IsCancelled())
}

func TestActiveIntervals(t *testing.T) {
	bookings := []*Booking{
		{StartTime: "09:00", EndTime: "10:00", Status: StatusConfirmed},
		{StartTime: "10:00", EndTime: "11:00", Status: StatusCancelledByUser},
		nil,
		{StartTime: "12:00", EndTime: "13:30", Status: StatusPending},
	}

	got := ActiveIntervals(bookings)
	assert.Equal(t, []Interval{
		{Start: "09:00", End: "10:00"},
		{Start: "12:00", End: "13:30"},
	}, got)
}

func TestDates(t *testing.T) {
	now := time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)

	assert.True(t, IsSameDay(now, time.Date(2026, 5, 10, 1, 0, 0, 0, time.UTC)))
	assert.True(t, IsDateInPast(time.Date(2026, 5, 9, 23, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateBeyondHorizon(time.Date(2026, 6, 9, 0, 0, 0, 0, time.UTC), now, 30))
	assert.True(t, IsDateBeyondHorizon(time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), now, 30))

	tokyo := time.FixedZone("JST", 9*3600)
	local := LocalDate(time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), tokyo)
	assert.Equal(t, time.Date(2026, 5, 10, 0, 0, 0, 0, tokyo), local)
}
