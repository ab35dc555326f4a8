package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Проценты возврата
const (
	FullRefundPercentage = 100
	NoRefundPercentage   = 0
)

// RefundResult результат расчёта возврата при отмене
type RefundResult struct {
	RefundAmount      int64
	RefundPercentage  int
	HoursUntilBooking float64
}

// CalculateRefund рассчитывает возврат по многоуровневой политике
// hoursUntilBooking может быть отрицательным, если сессия уже началась
//   - >= FullRefundHours          → 100%
//   - >= PartialRefundHours       → PartialRefundRate
//   - иначе                       → 0%
func CalculateRefund(
	totalAmount int64,
	bookingDate time.Time,
	startTime types.TimeString,
	now time.Time,
	policy RefundPolicy,
	rounding RoundingMode,
) (RefundResult, error) {
	startsAt, err := startTime.OnDate(bookingDate)
	if err != nil {
		return RefundResult{}, err
	}

	hours := startsAt.Sub(now).Hours()
	percentage := refundPercentage(hours, policy, rounding)

	return RefundResult{
		RefundAmount:      rounding.Round(float64(totalAmount) * float64(percentage) / 100),
		RefundPercentage:  percentage,
		HoursUntilBooking: hours,
	}, nil
}

func refundPercentage(hours float64, policy RefundPolicy, rounding RoundingMode) int {
	switch {
	case hours >= policy.FullRefundHours:
		return FullRefundPercentage
	case hours >= policy.PartialRefundHours:
		return int(rounding.Round(policy.PartialRefundRate * 100))
	default:
		return NoRefundPercentage
	}
}

// FullRefund возврат полной суммы (отмена по инициативе площадки)
func FullRefund(totalAmount int64) RefundResult {
	return RefundResult{RefundAmount: totalAmount, RefundPercentage: FullRefundPercentage}
}
