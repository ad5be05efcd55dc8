package domain

import "time"

// TemporaryAssignment is a time-boxed offer of an unclaimed order to a
// specific office, created by the backend's load balancer. Once accepted it
// is immutable from this side; an expired offer is never cleaned up locally,
// only filtered out at read time.
type TemporaryAssignment struct {
	ID         string `json:"id"`
	OrderID    string `json:"orderId"`
	OfficeID   string `json:"officeId"`
	BusinessID string `json:"businessId"`

	DistanceKm        float64    `json:"distanceKm"`
	IsAccepted        bool       `json:"isAccepted"`
	AcceptedByStaffID *string    `json:"acceptedByStaffId,omitempty"`
	AcceptedAt        *time.Time `json:"acceptedAt,omitempty"`
	ExpiresAt         time.Time  `json:"expiresAt"`
}

// Eligible reports whether the offer can still be shown and accepted:
// not yet accepted and not expired at the given instant.
func (a TemporaryAssignment) Eligible(now time.Time) bool {
	return !a.IsAccepted && a.ExpiresAt.After(now)
}
