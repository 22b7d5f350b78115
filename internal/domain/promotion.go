package domain

import "time"

// Promotion represents a marketing promotion shown on customer dashboards.
// Promotions are independent of appointments.
type Promotion struct {
	ID              int64
	Title           string
	Description     string
	DiscountPercent int
	ValidUntil      time.Time
	ImageURL        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the promotion is still valid at the given time
func (p *Promotion) IsActive(now time.Time) bool {
	return p.ValidUntil.After(now)
}
