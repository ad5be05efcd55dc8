package server

import (
	"time"
)

// AuditEvent captures one staff request against the gateway. Events are
// batched by the AuditManager and persisted through the configured sink.
type AuditEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	Handler    string    `json:"handler"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	StaffUser  string    `json:"staff_user,omitempty"`
	OfficeID   string    `json:"office_id,omitempty"`
	OrderID    string    `json:"order_id,omitempty"`
	OldStatus  string    `json:"old_status,omitempty"`
	NewStatus  string    `json:"new_status,omitempty"`
	Request    string    `json:"request,omitempty"`
	Response   string    `json:"response,omitempty"`
}
