package get_available_professionals

import "time"

// Request модель запроса на получение доступных профессионалов
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата для проверки доступности (без времени)
}

// Response модель ответа со списком доступных профессионалов
type Response struct {
	ServiceID     int64          // ID услуги
	Date          time.Time      // Дата, на которую проверялась доступность
	Professionals []Professional // Профессионалы в порядке отображения
}

// Professional краткая карточка профессионала для выбора в клиентском флоу
type Professional struct {
	ID     int64   // ID профессионала
	Name   string  // Имя
	Avatar string  // Инициалы для аватара
	Photo  *string // Ссылка на фото, опционально
	Role   string  // Должность
}
