package domain

import "github.com/m04kA/SMC-BarberService/pkg/types"

// AppointmentSlot is an ephemeral [start, end) interval used for overlap
// checks. It is derived from scheduled appointments and never persisted.
type AppointmentSlot struct {
	Start types.TimeString
	End   types.TimeString
}

// Overlaps reports whether two slots intersect under half-open semantics.
// Slots that merely touch (one ends exactly where the other starts) do
// not overlap.
func (s AppointmentSlot) Overlaps(other AppointmentSlot) bool {
	return s.Start.IsBefore(other.End) && s.End.IsAfter(other.Start)
}

// BusinessHours is the daily window during which appointments may be booked
type BusinessHours struct {
	Open  types.TimeString
	Close types.TimeString
}

// Contains reports whether the [start, end) interval lies within the window
func (h BusinessHours) Contains(slot AppointmentSlot) bool {
	return !slot.Start.IsBefore(h.Open) && !slot.End.IsAfter(h.Close)
}

// SlotFromAppointment derives the overlap-check interval of an appointment
func SlotFromAppointment(a *Appointment) (AppointmentSlot, error) {
	end, err := a.EndTime()
	if err != nil {
		return AppointmentSlot{}, err
	}
	return AppointmentSlot{Start: a.StartTime, End: end}, nil
}
