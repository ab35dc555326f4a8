package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

func TestCalculateRefund(t *testing.T) {
	bookingDate := time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)
	startTime := types.TimeString("18:00")
	startsAt := time.Date(2026, 5, 12, 18, 0, 0, 0, time.UTC)
	policy := DefaultPolicy().Refund

	tests := []struct {
		name           string
		hoursBefore    float64
		wantAmount     int64
		wantPercentage int
	}{
		{name: "full refund", hoursBefore: 30, wantAmount: 3000, wantPercentage: 100},
		{name: "exactly 24 hours", hoursBefore: 24, wantAmount: 3000, wantPercentage: 100},
		{name: "partial refund", hoursBefore: 18, wantAmount: 1500, wantPercentage: 50},
		{name: "exactly 12 hours", hoursBefore: 12, wantAmount: 1500, wantPercentage: 50},
		{name: "no refund", hoursBefore: 5, wantAmount: 0, wantPercentage: 0},
		{name: "already started", hoursBefore: -1, wantAmount: 0, wantPercentage: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := startsAt.Add(-time.Duration(tt.hoursBefore * float64(time.Hour)))

			got, err := CalculateRefund(3000, bookingDate, startTime, now, policy, RoundHalfUp)
			require.NoError(t, err)

			assert.Equal(t, tt.wantAmount, got.RefundAmount)
			assert.Equal(t, tt.wantPercentage, got.RefundPercentage)
			assert.InDelta(t, tt.hoursBefore, got.HoursUntilBooking, 1e-9)
		})
	}
}

func TestCalculateRefund_RoundsAmount(t *testing.T) {
	bookingDate := time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)

	// 1125 * 50% = 562.5
	got, err := CalculateRefund(1125, bookingDate, "16:00", now, DefaultPolicy().Refund, RoundHalfUp)
	require.NoError(t, err)
	assert.Equal(t, int64(563), got.RefundAmount)

	got, err = CalculateRefund(1125, bookingDate, "16:00", now, DefaultPolicy().Refund, RoundHalfEven)
	require.NoError(t, err)
	assert.Equal(t, int64(562), got.RefundAmount)
}

func TestCalculateRefund_InvalidStartTime(t *testing.T) {
	_, err := CalculateRefund(1000, time.Now(), "25:00", time.Now(), DefaultPolicy().Refund, RoundHalfUp)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestFullRefund(t *testing.T) {
	got := FullRefund(4200)
	assert.Equal(t, int64(4200), got.RefundAmount)
	assert.Equal(t, FullRefundPercentage, got.RefundPercentage)
}
