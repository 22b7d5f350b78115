package allocator

import "errors"

var (
	// ErrValidation возвращается при неполных или некорректных входных данных
	// (не выбран барбер, пустой набор услуг, не задана дата или время)
	ErrValidation = errors.New("allocator: validation failed")

	// ErrSlotUnavailable возвращается, когда выбранный слот занят на момент проверки
	// Вызывающая сторона должна заново запросить список доступных слотов
	ErrSlotUnavailable = errors.New("allocator: slot is no longer available")

	// ErrTooLateToCancel возвращается при попытке отменить запись
	// позже, чем за окно отмены до её начала
	ErrTooLateToCancel = errors.New("allocator: too late to cancel")
)
