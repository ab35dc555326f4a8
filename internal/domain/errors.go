package domain

import (
	"errors"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// ErrorKind категория ошибки ядра бронирования
type ErrorKind string

const (
	KindNone            ErrorKind = ""
	KindFormatError     ErrorKind = "format_error"
	KindOrderingError   ErrorKind = "ordering_error"
	KindPolicyViolation ErrorKind = "policy_violation"
)

var (
	// ErrInvalidFormat время не соответствует формату HH:MM
	ErrInvalidFormat = types.ErrInvalidFormat

	// ErrInvalidTimeOrder время начала не раньше времени окончания
	ErrInvalidTimeOrder = errors.New("start time must be before end time")

	// ErrPastDate дата бронирования в прошлом
	ErrPastDate = errors.New("booking date is in the past")

	// ErrTooSoon до начала бронирования меньше минимального времени
	ErrTooSoon = errors.New("booking starts too soon")

	// ErrTooFarInFuture бронирование слишком далеко в будущем
	ErrTooFarInFuture = errors.New("booking date is too far in the future")

	// ErrTooShort длительность меньше минимальной
	ErrTooShort = errors.New("booking duration is too short")

	// ErrTooLong длительность больше максимальной
	ErrTooLong = errors.New("booking duration is too long")

	// ErrInvalidSlotDuration недопустимая длительность слота
	ErrInvalidSlotDuration = errors.New("slot duration must be positive")

	// ErrInvalidPolicy недопустимые значения политики бронирования
	ErrInvalidPolicy = errors.New("invalid booking policy")
)

// ErrorKindOf возвращает категорию ошибки ядра
func ErrorKindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidFormat):
		return KindFormatError
	case errors.Is(err, ErrInvalidTimeOrder):
		return KindOrderingError
	case errors.Is(err, ErrPastDate),
		errors.Is(err, ErrTooSoon),
		errors.Is(err, ErrTooFarInFuture),
		errors.Is(err, ErrTooShort),
		errors.Is(err, ErrTooLong):
		return KindPolicyViolation
	default:
		return KindNone
	}
}
