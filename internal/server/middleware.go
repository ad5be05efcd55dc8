package server

import (
	"context"
	"net/http"
)

type contextKey string

const (
	contextKeyStaffUser contextKey = "staffUser"
	contextKeyOfficeID  contextKey = "officeID"
)

// basicAuthMiddleware authenticates staff against the local credential table
// and stores the resolved office scope on the request context. /metrics is
// left open for the scraper.
func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		officeID, err := s.staff.ValidateStaff(r.Context(), username, password)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyStaffUser, username)
		ctx = context.WithValue(ctx, contextKeyOfficeID, officeID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func staffUserFromContext(ctx context.Context) string {
	user, _ := ctx.Value(contextKeyStaffUser).(string)
	return user
}

func officeIDFromContext(ctx context.Context) string {
	officeID, _ := ctx.Value(contextKeyOfficeID).(string)
	return officeID
}
