package domain

import "fmt"

// BookingPolicy правила валидации бронирований и расчёта цены
type BookingPolicy struct {
	MinLeadHours        int
	MaxLeadDays         int
	MinDurationMinutes  int
	MaxDurationMinutes  int
	SlotDurationMinutes int
	CommissionRate      float64
}

// RefundPolicy правила возврата средств при отмене
type RefundPolicy struct {
	FullRefundHours    float64
	PartialRefundHours float64
	PartialRefundRate  float64
}

// Policy полная конфигурация движка бронирований
type Policy struct {
	Booking  BookingPolicy
	Refund   RefundPolicy
	Rounding RoundingMode
}

// DefaultPolicy возвращает политику со значениями по умолчанию
func DefaultPolicy() Policy {
	return Policy{
		Booking: BookingPolicy{
			MinLeadHours:        DefaultMinLeadHours,
			MaxLeadDays:         DefaultMaxLeadDays,
			MinDurationMinutes:  DefaultMinDurationMinutes,
			MaxDurationMinutes:  DefaultMaxDurationMinutes,
			SlotDurationMinutes: DefaultSlotDurationMinutes,
			CommissionRate:      DefaultCommissionRate,
		},
		Refund: RefundPolicy{
			FullRefundHours:    DefaultFullRefundHours,
			PartialRefundHours: DefaultPartialRefundHours,
			PartialRefundRate:  DefaultPartialRefundRate,
		},
		Rounding: RoundHalfUp,
	}
}

// Validate проверяет согласованность значений политики
func (p Policy) Validate() error {
	b := p.Booking

	if b.MinLeadHours < 0 || b.MinLeadHours > MaxLeadHoursLimit {
		return fmt.Errorf("%w: minLeadHours must be between 0 and %d", ErrInvalidPolicy, MaxLeadHoursLimit)
	}
	if b.MaxLeadDays <= 0 || b.MaxLeadDays > MaxLeadDaysLimit {
		return fmt.Errorf("%w: maxLeadDays must be between 1 and %d", ErrInvalidPolicy, MaxLeadDaysLimit)
	}
	if b.MinDurationMinutes <= 0 {
		return fmt.Errorf("%w: minDurationMinutes must be positive", ErrInvalidPolicy)
	}
	if b.MaxDurationMinutes < b.MinDurationMinutes || b.MaxDurationMinutes > MaxBookingDurationLimit {
		return fmt.Errorf("%w: maxDurationMinutes must be between minDurationMinutes and %d",
			ErrInvalidPolicy, MaxBookingDurationLimit)
	}
	if b.SlotDurationMinutes <= 0 || b.SlotDurationMinutes > MaxBookingDurationLimit {
		return fmt.Errorf("%w: slotDurationMinutes must be between 1 and %d", ErrInvalidPolicy, MaxBookingDurationLimit)
	}
	if b.CommissionRate < 0 || b.CommissionRate > 1 {
		return fmt.Errorf("%w: commissionRate must be between 0 and 1", ErrInvalidPolicy)
	}

	r := p.Refund
	if r.PartialRefundHours < 0 || r.FullRefundHours < r.PartialRefundHours {
		return fmt.Errorf("%w: refund breakpoints must satisfy 0 <= partialRefundHours <= fullRefundHours",
			ErrInvalidPolicy)
	}
	if r.PartialRefundRate < 0 || r.PartialRefundRate > 1 {
		return fmt.Errorf("%w: partialRefundRate must be between 0 and 1", ErrInvalidPolicy)
	}

	if _, err := ParseRoundingMode(string(p.Rounding)); err != nil {
		return err
	}

	return nil
}

// PolicyOverride переопределение политики для конкретной площадки
// nil-поле означает наследование глобального значения
type PolicyOverride struct {
	VenueID             int64
	MinLeadHours        *int
	MaxLeadDays         *int
	MinDurationMinutes  *int
	MaxDurationMinutes  *int
	SlotDurationMinutes *int
	CommissionRate      *float64
	FullRefundHours     *float64
	PartialRefundHours  *float64
	PartialRefundRate   *float64
}

// IsEmpty возвращает true, если переопределение не меняет ни одного значения
func (o *PolicyOverride) IsEmpty() bool {
	return o == nil || (o.MinLeadHours == nil && o.MaxLeadDays == nil &&
		o.MinDurationMinutes == nil && o.MaxDurationMinutes == nil &&
		o.SlotDurationMinutes == nil && o.CommissionRate == nil &&
		o.FullRefundHours == nil && o.PartialRefundHours == nil && o.PartialRefundRate == nil)
}

// Apply возвращает политику base с применёнными переопределениями
func (o *PolicyOverride) Apply(base Policy) Policy {
	if o == nil {
		return base
	}

	p := base
	if o.MinLeadHours != nil {
		p.Booking.MinLeadHours = *o.MinLeadHours
	}
	if o.MaxLeadDays != nil {
		p.Booking.MaxLeadDays = *o.MaxLeadDays
	}
	if o.MinDurationMinutes != nil {
		p.Booking.MinDurationMinutes = *o.MinDurationMinutes
	}
	if o.MaxDurationMinutes != nil {
		p.Booking.MaxDurationMinutes = *o.MaxDurationMinutes
	}
	if o.SlotDurationMinutes != nil {
		p.Booking.SlotDurationMinutes = *o.SlotDurationMinutes
	}
	if o.CommissionRate != nil {
		p.Booking.CommissionRate = *o.CommissionRate
	}
	if o.FullRefundHours != nil {
		p.Refund.FullRefundHours = *o.FullRefundHours
	}
	if o.PartialRefundHours != nil {
		p.Refund.PartialRefundHours = *o.PartialRefundHours
	}
	if o.PartialRefundRate != nil {
		p.Refund.PartialRefundRate = *o.PartialRefundRate
	}
	return p
}
