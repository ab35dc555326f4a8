package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Request модель запроса на получение слотов корта
type Request struct {
	CourtID int64     // ID корта
	Date    time.Time // Дата (без времени)
}

// Response модель ответа со слотами на день
type Response struct {
	Date                time.Time // Дата, на которую запрашивались слоты
	CourtID             int64     // ID корта
	VenueID             int64     // ID площадки
	IsOpen              bool      // Работает ли площадка в этот день
	SlotDurationMinutes int       // Длительность слота по политике площадки
	Slots               []Slot    // Все слоты дня, включая занятые
}

// Slot модель временного слота
type Slot struct {
	ID          string           // Идентификатор "<courtId>-<n>"
	StartTime   types.TimeString // Время начала
	EndTime     types.TimeString // Время окончания
	IsAvailable bool             // Свободен ли слот
	Price       int64            // Цена слота в иенах
}
