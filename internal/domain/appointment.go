package domain

import (
	"time"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"
)

// Appointment represents a confirmed barbershop appointment
type Appointment struct {
	ID       int64
	UserID   int64
	BarberID int64

	// Denormalized barber name for history views
	BarberName string

	// Ordered service bundle selected by the customer.
	// Stored denormalized so the appointment survives catalog changes.
	Services []ServiceItem

	AppointmentDate time.Time
	StartTime       types.TimeString
	DurationMinutes int
	TotalCost       float64
	Status          AppointmentStatus

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime returns the appointment end time (start + total duration)
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}

// IsScheduled returns true if the appointment is still scheduled
func (a *Appointment) IsScheduled() bool {
	return a.Status == StatusScheduled
}

// CanBeCancelled returns true if the appointment status permits cancellation.
// The cancellation lead-time policy is checked separately by the allocator.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// CanBeRescheduled returns true if the appointment can still be moved
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusScheduled
}

// StartsAt combines the appointment date and start time into an instant
func (a *Appointment) StartsAt() (time.Time, error) {
	return a.StartTime.ToTime(a.AppointmentDate)
}

// BarberAppointmentsFilter filter for fetching a barber's appointments
type BarberAppointmentsFilter struct {
	BarberID        int64              // Required
	StartDate       *time.Time         // Period start (optional)
	EndDate         *time.Time         // Period end (optional)
	Status          *AppointmentStatus // Status filter (optional)
	IncludeInactive bool               // Include canceled appointments
}
