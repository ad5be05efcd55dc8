package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

func (s *Server) auditMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		event := AuditEvent{
			Timestamp: time.Now().UTC(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   handlerName(r.URL.Path, r.Method),
		}

		if username, _, ok := r.BasicAuth(); ok {
			event.StaffUser = username
		}
		event.OrderID = orderIDFromPath(r.URL.Path)

		var requestBody []byte
		if r.Body != nil {
			requestBody, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			event.Request = string(requestBody)

			if event.OrderID != "" && strings.HasSuffix(r.URL.Path, "/status") {
				var statusRequest struct {
					Status string `json:"status"`
				}
				if err := json.Unmarshal(requestBody, &statusRequest); err == nil {
					if order, ok := s.store.Order(event.OrderID); ok {
						event.OldStatus = order.Status.String()
						event.NewStatus = statusRequest.Status
					}
				}
			}
		}

		wrw := newResponseWriterWrapper(w)
		next.ServeHTTP(wrw, r)

		event.StatusCode = wrw.GetStatusCode()
		event.Response = string(wrw.GetBody())
		event.OfficeID = officeIDFromContext(r.Context())

		s.AuditManager.LogEvent(r.Context(), event)
	})
}

// orderIDFromPath extracts the order id segment from /orders/{id}/... paths.
// The middleware runs outside the router, so mux vars are not available yet.
func orderIDFromPath(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part == "orders" && i+1 < len(parts) && parts[i+1] != "user" {
			return parts[i+1]
		}
	}
	return ""
}

func handlerName(path, method string) string {
	switch {
	case strings.HasPrefix(path, "/views/available"):
		return "handleAvailableView"
	case strings.HasPrefix(path, "/views/accepted"):
		return "handleAcceptedView"
	case strings.HasPrefix(path, "/views/completed"):
		return "handleCompletedView"
	case strings.HasPrefix(path, "/orders/user/"):
		return "handleUserOrders"
	case strings.HasPrefix(path, "/orders/") && strings.HasSuffix(path, "/accept"):
		return "handleAcceptOrder"
	case strings.HasPrefix(path, "/orders/") && strings.HasSuffix(path, "/status"):
		return "handleUpdateOrderStatus"
	case strings.HasPrefix(path, "/orders/") && strings.HasSuffix(path, "/history"):
		return "handleOrderHistory"
	case strings.HasPrefix(path, "/assignments/") && strings.HasSuffix(path, "/accept"):
		return "handleAcceptAssignment"
	case path == "/refresh" && method == http.MethodPost:
		return "handleRefresh"
	case path == "/offices":
		return "handleListOffices"
	case strings.HasPrefix(path, "/offices/") && strings.HasSuffix(path, "/staff"):
		return "handleListOfficeStaff"
	case strings.HasPrefix(path, "/offices/"):
		return "handleGetOffice"
	default:
		return "unknown"
	}
}
