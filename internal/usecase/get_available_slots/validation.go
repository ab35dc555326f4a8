package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно бронирования
func validateDate(date, now time.Time, maxLeadDays int) error {
	if domain.IsDateInPast(date, now) {
		return ErrInvalidDate
	}

	if domain.IsDateBeyondHorizon(date, now, maxLeadDays) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxLeadDays)
	}

	return nil
}

// markTooSoon помечает занятыми слоты, начинающиеся раньше now + minLeadHours
// Слоты не удаляются, чтобы количество слотов дня не зависело от времени запроса
func markTooSoon(slots []domain.TimeSlot, date, now time.Time, minLeadHours int) {
	earliest := now.Add(time.Duration(minLeadHours) * time.Hour)

	for i := range slots {
		startsAt, err := slots[i].StartTime.OnDate(date)
		if err != nil {
			continue
		}
		if startsAt.Before(earliest) {
			slots[i].IsAvailable = false
		}
	}
}
