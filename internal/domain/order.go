package domain

import "time"

// Order mirrors the platform backend's order resource as seen by staff.
// OfficeID is nil until an office claims the order; the claim is monotonic,
// there is no release operation anywhere in this codebase.
type Order struct {
	ID            string      `json:"id"`
	BusinessID    string      `json:"businessId"`
	OfficeID      *string     `json:"officeId,omitempty"`
	Status        OrderStatus `json:"status"`
	Items         []OrderItem `json:"items,omitempty"`
	TotalAmount   float64     `json:"totalAmount"`
	PaymentStatus string      `json:"paymentStatus,omitempty"`
	Notes         string      `json:"notes,omitempty"`

	// Scheduling hints, used for display ordering only.
	PreferredPickupAt   *time.Time `json:"preferredPickupAt,omitempty"`
	PreferredDeliveryAt *time.Time `json:"preferredDeliveryAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Claimed reports whether any office currently holds the order.
func (o Order) Claimed() bool {
	return o.OfficeID != nil && *o.OfficeID != ""
}

// HeldBy reports whether the given office holds the order.
func (o Order) HeldBy(officeID string) bool {
	return o.OfficeID != nil && *o.OfficeID == officeID
}
