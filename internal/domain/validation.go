package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// BookingRequest временные параметры запроса на бронирование
type BookingRequest struct {
	StartTime string
	EndTime   string
}

// ValidationResult результат проверки запроса
// Err содержит первую нарушенную проверку
type ValidationResult struct {
	Valid bool
	Err   error
}

func invalid(err error) ValidationResult {
	return ValidationResult{Valid: false, Err: err}
}

// ValidateBookingRequest проверяет запрос на бронирование
// Проверки выполняются строго по порядку и останавливаются на первой ошибке:
//
//  1. дата не в прошлом
//  2. до начала не меньше MinLeadHours часов
//  3. до начала не больше MaxLeadDays полных дней
//  4. время начала и окончания в формате HH:MM
//  5. начало строго раньше окончания
//  6. длительность не меньше MinDurationMinutes
//  7. длительность не больше MaxDurationMinutes
func ValidateBookingRequest(req BookingRequest, bookingDate, now time.Time, policy BookingPolicy) ValidationResult {
	if bookingDate.Before(now) {
		return invalid(ErrPastDate)
	}

	until := bookingDate.Sub(now)

	if until.Hours() < float64(policy.MinLeadHours) {
		return invalid(fmt.Errorf("%w: must book at least %d hours in advance", ErrTooSoon, policy.MinLeadHours))
	}

	// Считаются только полные сутки
	if days := int(until.Hours() / 24); days > policy.MaxLeadDays {
		return invalid(fmt.Errorf("%w: can only book %d days in advance", ErrTooFarInFuture, policy.MaxLeadDays))
	}

	startMinutes, err := types.TimeToMinutes(req.StartTime)
	if err != nil {
		return invalid(err)
	}

	endMinutes, err := types.TimeToMinutes(req.EndTime)
	if err != nil {
		return invalid(err)
	}

	if startMinutes >= endMinutes {
		return invalid(fmt.Errorf("%w: %s-%s", ErrInvalidTimeOrder, req.StartTime, req.EndTime))
	}

	duration := endMinutes - startMinutes

	if duration < policy.MinDurationMinutes {
		return invalid(fmt.Errorf("%w: minimum is %d minutes", ErrTooShort, policy.MinDurationMinutes))
	}

	if duration > policy.MaxDurationMinutes {
		return invalid(fmt.Errorf("%w: maximum is %d minutes", ErrTooLong, policy.MaxDurationMinutes))
	}

	return ValidationResult{Valid: true}
}

// BookingStartsAt собирает момент начала бронирования из даты и времени начала
// Если время некорректно, возвращается последняя минута дня: сегодняшняя дата не считается прошедшей,
// и ошибку формата сообщит ValidateBookingRequest
func BookingStartsAt(date time.Time, startTime string) time.Time {
	start, err := types.TimeString(startTime).OnDate(date)
	if err != nil {
		y, m, d := date.Date()
		return time.Date(y, m, d, 23, 59, 0, 0, date.Location())
	}
	return start
}
