package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

func TestGenerateTimeSlots_FullMorning(t *testing.T) {
	slots, err := GenerateTimeSlots(7, 1000, "09:00", "12:00", nil, 60, RoundHalfUp)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	want := []TimeSlot{
		{ID: "7-1", CourtID: 7, StartTime: "09:00", EndTime: "10:00", IsAvailable: true, Price: 1000},
		{ID: "7-2", CourtID: 7, StartTime: "10:00", EndTime: "11:00", IsAvailable: true, Price: 1000},
		{ID: "7-3", CourtID: 7, StartTime: "11:00", EndTime: "12:00", IsAvailable: true, Price: 1000},
	}
	assert.Equal(t, want, slots)
}

func TestGenerateTimeSlots_DropsPartialSlot(t *testing.T) {
	slots, err := GenerateTimeSlots(1, 1000, "09:00", "10:30", nil, 60, RoundHalfUp)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), slots[0].EndTime)
}

func TestGenerateTimeSlots_ReservationBlocksSlot(t *testing.T) {
	existing := []Interval{interval(t, "10:00", "11:00")}

	slots, err := GenerateTimeSlots(1, 1000, "09:00", "12:00", existing, 60, RoundHalfUp)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	assert.True(t, slots[0].IsAvailable)
	assert.False(t, slots[1].IsAvailable)
	assert.True(t, slots[2].IsAvailable)
}

func TestGenerateTimeSlots_ClosedVenue(t *testing.T) {
	for _, hours := range [][2]string{{"12:00", "12:00"}, {"18:00", "09:00"}} {
		slots, err := GenerateTimeSlots(1, 1000, hours[0], hours[1], nil, 60, RoundHalfUp)
		require.NoError(t, err)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	}
}

func TestGenerateTimeSlots_PriceRounding(t *testing.T) {
	// 1500 * 45 / 60 = 1125; 1550 * 45 / 60 = 1162.5 → half_up 1163, half_even 1162
	slots, err := GenerateTimeSlots(1, 1500, "09:00", "09:45", nil, 45, RoundHalfUp)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, int64(1125), slots[0].Price)

	slots, err = GenerateTimeSlots(1, 1550, "09:00", "09:45", nil, 45, RoundHalfUp)
	require.NoError(t, err)
	assert.Equal(t, int64(1163), slots[0].Price)

	slots, err = GenerateTimeSlots(1, 1550, "09:00", "09:45", nil, 45, RoundHalfEven)
	require.NoError(t, err)
	assert.Equal(t, int64(1162), slots[0].Price)
}

func TestGenerateTimeSlots_DefaultDuration(t *testing.T) {
	slots, err := GenerateTimeSlots(1, 1000, "09:00", "11:00", nil, 0, RoundHalfUp)
	require.NoError(t, err)
	assert.Len(t, slots, 2)
}

func TestGenerateTimeSlots_Errors(t *testing.T) {
	_, err := GenerateTimeSlots(1, 1000, "09:00", "12:00", nil, -30, RoundHalfUp)
	assert.ErrorIs(t, err, ErrInvalidSlotDuration)

	_, err = GenerateTimeSlots(1, 1000, "9am", "12:00", nil, 60, RoundHalfUp)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = GenerateTimeSlots(1, 1000, "09:00", "24:00", nil, 60, RoundHalfUp)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestGenerateTimeSlots_Deterministic(t *testing.T) {
	existing := []Interval{interval(t, "13:30", "14:30")}

	first, err := GenerateTimeSlots(3, 2000, "08:00", "22:00", existing, 30, RoundHalfUp)
	require.NoError(t, err)
	second, err := GenerateTimeSlots(3, 2000, "08:00", "22:00", existing, 30, RoundHalfUp)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 28)
	assert.Equal(t, "3-28", first[27].ID)
}
