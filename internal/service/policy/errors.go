package policy

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venue not found")

	// ErrAccessDenied возвращается, когда пользователь не менеджер площадки
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается, когда итоговая политика не проходит валидацию
	ErrInvalidInput = errors.New("invalid policy values")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("policy service: internal error")
)
