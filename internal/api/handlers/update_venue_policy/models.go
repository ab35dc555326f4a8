package update_venue_policy

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/service/policy/models"
)

// UpdateVenuePolicyRequest HTTP request model
// Отсутствующее поле возвращается к глобальному значению
type UpdateVenuePolicyRequest struct {
	MinLeadHours        *int     `json:"minLeadHours,omitempty"`
	MaxLeadDays         *int     `json:"maxLeadDays,omitempty"`
	MinDurationMinutes  *int     `json:"minDurationMinutes,omitempty"`
	MaxDurationMinutes  *int     `json:"maxDurationMinutes,omitempty"`
	SlotDurationMinutes *int     `json:"slotDurationMinutes,omitempty"`
	CommissionRate      *float64 `json:"commissionRate,omitempty"`
	FullRefundHours     *float64 `json:"fullRefundHours,omitempty"`
	PartialRefundHours  *float64 `json:"partialRefundHours,omitempty"`
	PartialRefundRate   *float64 `json:"partialRefundRate,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateVenuePolicyRequest) ToServiceRequest(userID int64) *models.UpdatePolicyRequest {
	return &models.UpdatePolicyRequest{
		UserID:              userID,
		MinLeadHours:        r.MinLeadHours,
		MaxLeadDays:         r.MaxLeadDays,
		MinDurationMinutes:  r.MinDurationMinutes,
		MaxDurationMinutes:  r.MaxDurationMinutes,
		SlotDurationMinutes: r.SlotDurationMinutes,
		CommissionRate:      r.CommissionRate,
		FullRefundHours:     r.FullRefundHours,
		PartialRefundHours:  r.PartialRefundHours,
		PartialRefundRate:   r.PartialRefundRate,
	}
}
