package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

func TestDefaultPolicy_IsValid(t *testing.T) {
	assert.NoError(t, DefaultPolicy().Validate())
}

func TestPolicy_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Policy)
	}{
		{name: "negative lead hours", mutate: func(p *Policy) { p.Booking.MinLeadHours = -1 }},
		{name: "zero lead days", mutate: func(p *Policy) { p.Booking.MaxLeadDays = 0 }},
		{name: "zero min duration", mutate: func(p *Policy) { p.Booking.MinDurationMinutes = 0 }},
		{name: "max below min", mutate: func(p *Policy) { p.Booking.MaxDurationMinutes = 15 }},
		{name: "zero slot", mutate: func(p *Policy) { p.Booking.SlotDurationMinutes = 0 }},
		{name: "commission above one", mutate: func(p *Policy) { p.Booking.CommissionRate = 1.5 }},
		{name: "refund breakpoints swapped", mutate: func(p *Policy) { p.Refund.PartialRefundHours = 48 }},
		{name: "partial rate negative", mutate: func(p *Policy) { p.Refund.PartialRefundRate = -0.1 }},
		{name: "unknown rounding", mutate: func(p *Policy) { p.Rounding = "ceil" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPolicy()
			tt.mutate(&p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidPolicy)
		})
	}
}

func TestPolicyOverride_Apply(t *testing.T) {
	base := DefaultPolicy()

	var nilOverride *PolicyOverride
	assert.True(t, nilOverride.IsEmpty())
	assert.Equal(t, base, nilOverride.Apply(base))

	empty := &PolicyOverride{VenueID: 1}
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, base, empty.Apply(base))

	override := &PolicyOverride{
		VenueID:             1,
		MinLeadHours:        ptr.Ptr(6),
		SlotDurationMinutes: ptr.Ptr(30),
		CommissionRate:      ptr.Ptr(0.15),
		PartialRefundRate:   ptr.Ptr(0.25),
	}
	assert.False(t, override.IsEmpty())

	got := override.Apply(base)
	assert.Equal(t, 6, got.Booking.MinLeadHours)
	assert.Equal(t, 30, got.Booking.SlotDurationMinutes)
	assert.Equal(t, 0.15, got.Booking.CommissionRate)
	assert.Equal(t, 0.25, got.Refund.PartialRefundRate)

	// Остальные значения наследуются
	assert.Equal(t, base.Booking.MaxLeadDays, got.Booking.MaxLeadDays)
	assert.Equal(t, base.Refund.FullRefundHours, got.Refund.FullRefundHours)
	assert.Equal(t, base.Rounding, got.Rounding)

	// base не изменяется
	assert.Equal(t, DefaultMinLeadHours, base.Booking.MinLeadHours)
}
