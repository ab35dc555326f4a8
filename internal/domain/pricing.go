package domain

// RateCard тарифы корта в иенах
// PricePerHalfHour, если задан, используется для ровно 30-минутного бронирования вместо почасовой пропорции
type RateCard struct {
	PricePerHour     int64
	PricePerHalfHour *int64
}

// BookingCalculation расчёт стоимости бронирования
// Subtotal = Commission + VenuePayout, TotalAmount = Subtotal
type BookingCalculation struct {
	Subtotal        int64
	Commission      int64
	TotalAmount     int64
	VenuePayout     int64
	DurationMinutes int
}

// CalculateBookingPrice рассчитывает стоимость, комиссию платформы и выплату площадке
// Округление выполняется на каждом шаге отдельно: сначала subtotal, затем комиссия
func CalculateBookingPrice(rate RateCard, durationMinutes int, commissionRate float64, rounding RoundingMode) BookingCalculation {
	var subtotal int64
	if durationMinutes == HalfHourMinutes && rate.PricePerHalfHour != nil {
		subtotal = *rate.PricePerHalfHour
	} else {
		subtotal = rounding.Round(float64(rate.PricePerHour) * float64(durationMinutes) / 60)
	}

	commission := rounding.Round(float64(subtotal) * commissionRate)

	return BookingCalculation{
		Subtotal:        subtotal,
		Commission:      commission,
		TotalAmount:     subtotal,
		VenuePayout:     subtotal - commission,
		DurationMinutes: durationMinutes,
	}
}
