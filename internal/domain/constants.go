package domain

// Default booking configuration values
const (
	DefaultOpenTime                  = "09:00"
	DefaultCloseTime                 = "17:00"
	DefaultSlotStepMinutes           = 30
	DefaultCancellationWindowMinutes = 180 // 3 hours
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MinDiscountPercent        = 0
	MaxDiscountPercent        = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses appointment statuses excluded from availability checks
var InactiveStatuses = []AppointmentStatus{
	StatusCanceled,
}

// ValidStatuses all recognized appointment statuses
var ValidStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusCompleted,
	StatusCanceled,
}
