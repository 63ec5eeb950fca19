package professionals

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrUnknownService возвращается, когда в offeredServices указана
	// несуществующая услуга
	ErrUnknownService = errors.New("unknown service in offered services")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
