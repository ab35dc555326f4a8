package domain

import (
	"fmt"
	"math"
)

// RoundingMode способ округления денежных сумм до целых иен
type RoundingMode string

const (
	// RoundHalfUp 0.5 округляется вверх (по умолчанию)
	RoundHalfUp RoundingMode = "half_up"

	// RoundHalfEven банковское округление: 0.5 к ближайшему чётному
	RoundHalfEven RoundingMode = "half_even"
)

// ParseRoundingMode разбирает строку из конфигурации, пустая строка означает half_up
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch RoundingMode(s) {
	case "", RoundHalfUp:
		return RoundHalfUp, nil
	case RoundHalfEven:
		return RoundHalfEven, nil
	default:
		return "", fmt.Errorf("%w: unknown rounding mode %q", ErrInvalidPolicy, s)
	}
}

// Round округляет сумму до целых иен
// Суммы в ядре неотрицательны, поэтому half_up совпадает с округлением от нуля
func (m RoundingMode) Round(v float64) int64 {
	if m == RoundHalfEven {
		return int64(math.RoundToEven(v))
	}
	return int64(math.Floor(v + 0.5))
}
