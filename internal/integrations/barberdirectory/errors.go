package barberdirectory

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден в справочнике
	ErrBarberNotFound = errors.New("barber not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("barberdirectory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("barberdirectory client: invalid response")
)
