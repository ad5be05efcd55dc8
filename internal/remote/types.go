package remote

import (
	"encoding/json"

	"github.com/washpoint/staffops/internal/domain"
)

type acceptRequest struct {
	OfficeID string `json:"officeId"`
}

type statusRequest struct {
	Status domain.OrderStatus `json:"status"`
	Notes  string             `json:"notes,omitempty"`
}

// The backend wraps each listing in its own envelope shape. They are
// normalized here so the rest of the codebase only sees domain slices.

type ordersEnvelope struct {
	Orders     []domain.Order  `json:"orders"`
	Pagination json.RawMessage `json:"pagination,omitempty"`
}

type userOrdersEnvelope struct {
	Orders     []domain.Order  `json:"orders"`
	Pagination json.RawMessage `json:"pagination,omitempty"`
	Type       string          `json:"type,omitempty"`
	User       json.RawMessage `json:"user,omitempty"`
}

type assignmentsEnvelope struct {
	Assignments []domain.TemporaryAssignment `json:"assignments"`
	Count       int                          `json:"count,omitempty"`
}

type acceptOrderEnvelope struct {
	Message string        `json:"message"`
	Order   *domain.Order `json:"order"`
}

type acceptAssignmentEnvelope struct {
	Message    string                      `json:"message"`
	Assignment *domain.TemporaryAssignment `json:"assignment"`
}

type officesEnvelope struct {
	Offices []domain.Office `json:"offices"`
}

type officeEnvelope struct {
	Office *domain.Office `json:"office"`
}

type staffEnvelope struct {
	Staff []domain.Staff `json:"staff"`
}
