package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// VenueServiceClient интерфейс клиента для VenueService
type VenueServiceClient interface {
	GetVenue(ctx context.Context, venueID int64) (*domain.Venue, error)
	GetCourt(ctx context.Context, courtID int64) (*domain.Court, error)
}

// PolicyProvider возвращает действующую политику площадки
type PolicyProvider interface {
	GetEffective(ctx context.Context, venueID int64) (domain.Policy, error)
}

// Metrics бизнес-метрики генерации слотов
type Metrics interface {
	AddSlotsGenerated(available, unavailable int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
// Время возвращается в часовом поясе площадок
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
