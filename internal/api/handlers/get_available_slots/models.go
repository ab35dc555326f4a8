package get_available_slots

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	getSlots "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date                string         `json:"date"`
	CourtID             int64          `json:"courtId"`
	VenueID             int64          `json:"venueId"`
	IsOpen              bool           `json:"isOpen"`
	SlotDurationMinutes int            `json:"slotDurationMinutes"`
	Slots               []SlotResponse `json:"slots"`
}

// SlotResponse временной слот
type SlotResponse struct {
	ID          string `json:"id"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
	Price       int64  `json:"price"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			ID:          s.ID,
			StartTime:   s.StartTime.String(),
			EndTime:     s.EndTime.String(),
			IsAvailable: s.IsAvailable,
			Price:       s.Price,
		})
	}

	return &SlotsResponse{
		Date:                resp.Date.Format(domain.DateFormat),
		CourtID:             resp.CourtID,
		VenueID:             resp.VenueID,
		IsOpen:              resp.IsOpen,
		SlotDurationMinutes: resp.SlotDurationMinutes,
		Slots:               slots,
	}
}
