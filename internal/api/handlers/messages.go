package handlers

import (
	"errors"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

const (
	msgRuleInvalidFormat = "некорректный формат времени, ожидается HH:MM"
	msgRuleInvalidOrder  = "время окончания должно быть позже времени начала"
	msgRulePastDate      = "нельзя забронировать корт на прошедшую дату"
	msgRuleTooSoon       = "бронирование нужно оформить заранее, до начала осталось слишком мало времени"
	msgRuleTooFar        = "на эту дату бронирование ещё не открыто"
	msgRuleTooShort      = "длительность бронирования меньше минимальной"
	msgRuleTooLong       = "длительность бронирования больше максимальной"
	msgRuleViolation     = "бронирование нарушает правила площадки"
)

// RuleViolationMessage возвращает сообщение для пользователя по первой нарушенной проверке бронирования
func RuleViolationMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidFormat):
		return msgRuleInvalidFormat
	case errors.Is(err, domain.ErrInvalidTimeOrder):
		return msgRuleInvalidOrder
	case errors.Is(err, domain.ErrPastDate):
		return msgRulePastDate
	case errors.Is(err, domain.ErrTooSoon):
		return msgRuleTooSoon
	case errors.Is(err, domain.ErrTooFarInFuture):
		return msgRuleTooFar
	case errors.Is(err, domain.ErrTooShort):
		return msgRuleTooShort
	case errors.Is(err, domain.ErrTooLong):
		return msgRuleTooLong
	default:
		return msgRuleViolation
	}
}
