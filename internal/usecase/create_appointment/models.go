package create_appointment

import (
	"time"

	"github.com/cortafila/CF-BookingService/internal/domain"
	"github.com/cortafila/CF-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ServiceID      int64                // ID услуги
	ProfessionalID int64                // ID профессионала
	Date           time.Time            // Дата записи (без времени)
	StartTime      types.TimeString     // Время начала, например "10:00"
	ClientName     string               // Имя клиента
	ClientPhone    string               // Телефон клиента (ключ поиска)
	ClientEmail    *string              // Email клиента, опционально
	Products       []domain.ProductLine // Дополнительные товары, опционально
}

// Response модель ответа с созданной записью и подтверждением для WhatsApp
type Response struct {
	Appointment     *domain.Appointment // Созданная запись
	WhatsAppMessage string              // Заполненный шаблон подтверждения
	WhatsAppLink    string              // Ссылка wa.me с этим сообщением
}
