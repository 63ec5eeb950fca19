package get_available_slots

import (
	"time"

	"github.com/cortafila/CF-BookingService/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	ProfessionalID int64     // ID профессионала
	ServiceID      int64     // ID услуги
	Date           time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date           time.Time // Дата, на которую запрашивались слоты
	ProfessionalID int64     // ID профессионала
	ServiceID      int64     // ID услуги
	Slots          []Slot    // Все слоты рабочего дня с флагом доступности
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота, например "10:00"
	Available bool             // Свободен ли слот
}
