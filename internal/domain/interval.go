package domain

import (
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Interval полуоткрытый интервал времени [Start, End) в пределах одних суток
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// NewInterval создает интервал с проверкой формата и порядка границ
func NewInterval(start, end string) (Interval, error) {
	startTime, err := types.NewTimeStringFromString(start)
	if err != nil {
		return Interval{}, err
	}

	endTime, err := types.NewTimeStringFromString(end)
	if err != nil {
		return Interval{}, err
	}

	if !startTime.IsBefore(endTime) {
		return Interval{}, fmt.Errorf("%w: %s-%s", ErrInvalidTimeOrder, start, end)
	}

	return Interval{Start: startTime, End: endTime}, nil
}

// DurationMinutes возвращает длительность интервала в минутах
func (i Interval) DurationMinutes() int {
	d, err := types.CalculateDuration(i.Start.String(), i.End.String())
	if err != nil {
		return 0
	}
	return d
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов
// Интервалы, касающиеся границами (10:00 конец и 10:00 начало), не пересекаются
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.IsBefore(other.End) && other.Start.IsBefore(i.End)
}

// String возвращает интервал в виде HH:MM-HH:MM
func (i Interval) String() string {
	return i.Start.String() + "-" + i.End.String()
}

// IsSlotAvailable проверяет, что интервал [start, end) не пересекается ни с одним из существующих бронирований
func IsSlotAvailable(start, end types.TimeString, existing []Interval) bool {
	candidate := Interval{Start: start, End: end}

	for _, reservation := range existing {
		if candidate.Overlaps(reservation) {
			return false
		}
	}

	return true
}
