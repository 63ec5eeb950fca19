package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrServiceNotOffered возвращается, когда профессионал не выполняет услугу
	ErrServiceNotOffered = errors.New("professional does not offer this service")

	// ErrInvalidDate возвращается для даты в прошлом или за пределами окна бронирования
	ErrInvalidDate = errors.New("invalid appointment date")

	// ErrSlotUnavailable возвращается, когда слот нельзя предложить:
	// вне рабочих часов, не по сетке, в прошлом или заблокирован
	ErrSlotUnavailable = errors.New("slot is not available for booking")

	// ErrSlotConflict возвращается при проигрыше гонки за слот:
	// пересечение с активной записью, обнаруженное при коммите
	ErrSlotConflict = errors.New("slot conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
