package domain

import (
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// TimeSlot кандидат для бронирования корта
// Создаётся заново при каждом запросе доступности и не сохраняется
type TimeSlot struct {
	ID          string
	CourtID     int64
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
	Price       int64
}

// Interval возвращает интервал слота
func (s TimeSlot) Interval() Interval {
	return Interval{Start: s.StartTime, End: s.EndTime}
}

// GenerateTimeSlots генерирует слоты фиксированной длины от openTime до closeTime
// Последний неполный слот не создаётся: условие цикла start + duration <= closeTime
// Если openTime >= closeTime, площадка закрыта и возвращается пустой список
// slotDurationMinutes = 0 означает длительность по умолчанию (60 минут)
func GenerateTimeSlots(
	courtID int64,
	pricePerHour int64,
	openTime string,
	closeTime string,
	existing []Interval,
	slotDurationMinutes int,
	rounding RoundingMode,
) ([]TimeSlot, error) {
	if slotDurationMinutes == 0 {
		slotDurationMinutes = DefaultSlotDurationMinutes
	}
	if slotDurationMinutes < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSlotDuration, slotDurationMinutes)
	}

	openMinutes, err := types.TimeToMinutes(openTime)
	if err != nil {
		return nil, err
	}

	closeMinutes, err := types.TimeToMinutes(closeTime)
	if err != nil {
		return nil, err
	}

	slots := make([]TimeSlot, 0)
	if openMinutes >= closeMinutes {
		return slots, nil
	}

	// Цена одинакова для всех слотов корта
	price := rounding.Round(float64(pricePerHour) * float64(slotDurationMinutes) / 60)

	for current := openMinutes; current+slotDurationMinutes <= closeMinutes; current += slotDurationMinutes {
		start := types.TimeString(types.MinutesToTime(current))
		end := types.TimeString(types.MinutesToTime(current + slotDurationMinutes))

		slots = append(slots, TimeSlot{
			ID:          fmt.Sprintf("%d-%d", courtID, len(slots)+1),
			CourtID:     courtID,
			StartTime:   start,
			EndTime:     end,
			IsAvailable: IsSlotAvailable(start, end, existing),
			Price:       price,
		})
	}

	return slots, nil
}
