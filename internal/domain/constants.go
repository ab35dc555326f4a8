package domain

// Значения политики бронирования по умолчанию
const (
	DefaultMinLeadHours        = 2
	DefaultMaxLeadDays         = 30
	DefaultMinDurationMinutes  = 30
	DefaultMaxDurationMinutes  = 240 // 4 часа
	DefaultSlotDurationMinutes = 60
	DefaultCommissionRate      = 0.10
)

// Значения политики возвратов по умолчанию
const (
	DefaultFullRefundHours    = 24
	DefaultPartialRefundHours = 12
	DefaultPartialRefundRate  = 0.5
)

// HalfHourMinutes длительность, для которой действует отдельная цена за полчаса
const HalfHourMinutes = 30

// Ограничения для значений политики (валидация конфигурации площадки)
const (
	MaxLeadHoursLimit        = 168 // 1 неделя
	MaxLeadDaysLimit         = 365
	MaxBookingDurationLimit  = 24 * 60
	MaxNotesLength           = 500
	MaxCancellationReasonLen = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Неактивные бронирования не занимают корт
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByVenue,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
