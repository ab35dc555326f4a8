package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Формат и порядок времени проверяет domain.ValidateBookingRequest
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime == "" || req.EndTime == "" {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateWorkingHours проверяет, что интервал попадает в часы работы площадки
func validateWorkingHours(schedule domain.DaySchedule, interval domain.Interval) error {
	if _, _, ok := schedule.Hours(); !ok {
		return ErrVenueClosed
	}

	if !schedule.Contains(interval) {
		return fmt.Errorf("%w: %s", ErrOutsideWorkingHours, interval)
	}

	return nil
}
