package reset_venue_policy

import "context"

type PolicyService interface {
	Reset(ctx context.Context, venueID int64, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
