package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Court корт площадки с тарифами
type Court struct {
	ID       int64
	VenueID  int64
	Name     string
	RateCard RateCard
}

// Venue площадка-партнёр
type Venue struct {
	ID           int64
	Name         string
	ManagerIDs   []int64
	WorkingHours WorkingHours
}

// IsManager returns true if the user manages the venue
func (v *Venue) IsManager(userID int64) bool {
	for _, id := range v.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// DaySchedule часы работы в конкретный день недели
type DaySchedule struct {
	IsOpen    bool
	OpenTime  *string
	CloseTime *string
}

// Hours возвращает время открытия и закрытия, ok = false если площадка закрыта
func (d DaySchedule) Hours() (openAt, closeAt string, ok bool) {
	if !d.IsOpen || d.OpenTime == nil || d.CloseTime == nil {
		return "", "", false
	}
	return *d.OpenTime, *d.CloseTime, true
}

// Contains проверяет, что интервал целиком попадает в часы работы
func (d DaySchedule) Contains(i Interval) bool {
	openAt, closeAt, ok := d.Hours()
	if !ok {
		return false
	}
	openTime, err := types.NewTimeStringFromString(openAt)
	if err != nil {
		return false
	}
	closeTime, err := types.NewTimeStringFromString(closeAt)
	if err != nil {
		return false
	}
	return !i.Start.IsBefore(openTime) && !i.End.IsAfter(closeTime)
}

// WorkingHours расписание работы по дням недели
type WorkingHours struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// ForDate возвращает расписание на день недели указанной даты
func (w WorkingHours) ForDate(date time.Time) DaySchedule {
	switch date.Weekday() {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}
