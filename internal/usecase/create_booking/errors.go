package create_booking

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrBookingRejected возвращается, когда запрос нарушает правила бронирования
	// Оборачивает ошибку ядра, категорию можно получить через domain.ErrorKindOf
	ErrBookingRejected = errors.New("create_booking: booking request rejected")

	// ErrVenueClosed возвращается, когда площадка закрыта в указанную дату
	ErrVenueClosed = errors.New("create_booking: venue is closed on this date")

	// ErrOutsideWorkingHours возвращается, когда интервал выходит за часы работы площадки
	ErrOutsideWorkingHours = errors.New("create_booking: booking is outside working hours")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с активным бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
