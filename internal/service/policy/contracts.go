package policy

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// PolicyRepository интерфейс репозитория переопределений политики
type PolicyRepository interface {
	GetByVenue(ctx context.Context, venueID int64) (*domain.PolicyOverride, error)
	Upsert(ctx context.Context, override *domain.PolicyOverride) error
	DeleteByVenue(ctx context.Context, venueID int64) error
}

// VenueServiceClient интерфейс клиента для VenueService
type VenueServiceClient interface {
	GetVenue(ctx context.Context, venueID int64) (*domain.Venue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
