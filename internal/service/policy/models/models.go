package models

import "github.com/m04kA/SMC-CourtBookingService/internal/domain"

// UpdatePolicyRequest запрос на изменение политики площадки
// Переданные поля переопределяют глобальные значения, null возвращает поле к глобальному
type UpdatePolicyRequest struct {
	UserID              int64    `json:"-"`
	MinLeadHours        *int     `json:"minLeadHours"`
	MaxLeadDays         *int     `json:"maxLeadDays"`
	MinDurationMinutes  *int     `json:"minDurationMinutes"`
	MaxDurationMinutes  *int     `json:"maxDurationMinutes"`
	SlotDurationMinutes *int     `json:"slotDurationMinutes"`
	CommissionRate      *float64 `json:"commissionRate"`
	FullRefundHours     *float64 `json:"fullRefundHours"`
	PartialRefundHours  *float64 `json:"partialRefundHours"`
	PartialRefundRate   *float64 `json:"partialRefundRate"`
}

// ToDomainOverride конвертирует request в переопределение политики
func (r *UpdatePolicyRequest) ToDomainOverride(venueID int64) *domain.PolicyOverride {
	return &domain.PolicyOverride{
		VenueID:             venueID,
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

// PolicyResponse действующая политика площадки
type PolicyResponse struct {
	VenueID             int64   `json:"venueId"`
	Customized          bool    `json:"customized"` // true, если у площадки есть переопределения
	MinLeadHours        int     `json:"minLeadHours"`
	MaxLeadDays         int     `json:"maxLeadDays"`
	MinDurationMinutes  int     `json:"minDurationMinutes"`
	MaxDurationMinutes  int     `json:"maxDurationMinutes"`
	SlotDurationMinutes int     `json:"slotDurationMinutes"`
	CommissionRate      float64 `json:"commissionRate"`
	FullRefundHours     float64 `json:"fullRefundHours"`
	PartialRefundHours  float64 `json:"partialRefundHours"`
	PartialRefundRate   float64 `json:"partialRefundRate"`
	RoundingMode        string  `json:"roundingMode"`
}

// FromDomainPolicy конвертирует domain модель в DTO
func FromDomainPolicy(venueID int64, p domain.Policy, customized bool) *PolicyResponse {
	return &PolicyResponse{
		VenueID:             venueID,
		Customized:          customized,
		MinLeadHours:        p.Booking.MinLeadHours,
		MaxLeadDays:         p.Booking.MaxLeadDays,
		MinDurationMinutes:  p.Booking.MinDurationMinutes,
		MaxDurationMinutes:  p.Booking.MaxDurationMinutes,
		SlotDurationMinutes: p.Booking.SlotDurationMinutes,
		CommissionRate:      p.Booking.CommissionRate,
		FullRefundHours:     p.Refund.FullRefundHours,
		PartialRefundHours:  p.Refund.PartialRefundHours,
		PartialRefundRate:   p.Refund.PartialRefundRate,
		RoundingMode:        string(p.Rounding),
	}
}
