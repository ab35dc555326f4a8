package update_venue_policy

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/policy/models"
)

type PolicyService interface {
	Update(ctx context.Context, venueID int64, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
