package venueservice

import "github.com/m04kA/SMC-CourtBookingService/internal/domain"

// Venue модель площадки из VenueService
type Venue struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	ManagerIDs   []int64      `json:"manager_ids"`
	WorkingHours WorkingHours `json:"working_hours"`
}

// WorkingHours расписание работы площадки
type WorkingHours struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// DaySchedule часы работы в день недели
type DaySchedule struct {
	IsOpen    bool    `json:"is_open"`
	OpenTime  *string `json:"open_time,omitempty"`  // HH:MM
	CloseTime *string `json:"close_time,omitempty"` // HH:MM
}

// Court модель корта из VenueService
type Court struct {
	ID               int64  `json:"id"`
	VenueID          int64  `json:"venue_id"`
	Name             string `json:"name"`
	PricePerHour     int64  `json:"price_per_hour"`
	PricePerHalfHour *int64 `json:"price_per_half_hour,omitempty"`
}

// ErrorResponse модель ошибки от VenueService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (d DaySchedule) toDomain() domain.DaySchedule {
	return domain.DaySchedule{
		IsOpen:    d.IsOpen,
		OpenTime:  d.OpenTime,
		CloseTime: d.CloseTime,
	}
}

// ToDomain преобразует ответ VenueService в доменную модель
func (v *Venue) ToDomain() *domain.Venue {
	return &domain.Venue{
		ID:         v.ID,
		Name:       v.Name,
		ManagerIDs: v.ManagerIDs,
		WorkingHours: domain.WorkingHours{
			Monday:    v.WorkingHours.Monday.toDomain(),
			Tuesday:   v.WorkingHours.Tuesday.toDomain(),
			Wednesday: v.WorkingHours.Wednesday.toDomain(),
			Thursday:  v.WorkingHours.Thursday.toDomain(),
			Friday:    v.WorkingHours.Friday.toDomain(),
			Saturday:  v.WorkingHours.Saturday.toDomain(),
			Sunday:    v.WorkingHours.Sunday.toDomain(),
		},
	}
}

// ToDomain преобразует ответ VenueService в доменную модель
func (c *Court) ToDomain() *domain.Court {
	return &domain.Court{
		ID:      c.ID,
		VenueID: c.VenueID,
		Name:    c.Name,
		RateCard: domain.RateCard{
			PricePerHour:     c.PricePerHour,
			PricePerHalfHour: c.PricePerHalfHour,
		},
	}
}
