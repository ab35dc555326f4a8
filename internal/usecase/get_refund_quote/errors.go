package get_refund_quote

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("get_refund_quote: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец и не менеджер площадки
	ErrAccessDenied = errors.New("get_refund_quote: access denied")

	// ErrCannotCancel возвращается, когда бронирование уже нельзя отменить
	ErrCannotCancel = errors.New("get_refund_quote: booking cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_refund_quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_refund_quote: internal error")
)
