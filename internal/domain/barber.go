package domain

// ServiceItem represents a catalog service offered by a barber.
// The catalog is owned by the barber directory; duration and cost
// recorded here are authoritative at booking time.
type ServiceItem struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Cost            float64 `json:"cost"`
}

// Barber represents a barber profile from the directory
type Barber struct {
	ID              int64
	Name            string
	Bio             string
	ExperienceYears int
	ImageURL        *string
	Services        []ServiceItem
}

// FindService returns the barber's service with the given id, if offered
func (b *Barber) FindService(serviceID int64) (ServiceItem, bool) {
	for _, s := range b.Services {
		if s.ID == serviceID {
			return s, true
		}
	}
	return ServiceItem{}, false
}

// TotalDuration returns the summed duration of a service bundle in minutes
func TotalDuration(services []ServiceItem) int {
	total := 0
	for _, s := range services {
		total += s.DurationMinutes
	}
	return total
}

// TotalCost returns the summed cost of a service bundle
func TotalCost(services []ServiceItem) float64 {
	total := 0.0
	for _, s := range services {
		total += s.Cost
	}
	return total
}
