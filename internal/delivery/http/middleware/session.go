package middleware

import (
	"net/http"
	"strings"

	h "eventify/internal/delivery/http/helpers"
	"eventify/internal/domain"
)

// SessionGuard is the part of the session store a route guard needs.
type SessionGuard interface {
	Snapshot() domain.Session
	SetReturnURL(url *string)
}

// RequireSession lets authenticated sessions through. Otherwise it records
// the requested view (the path without apiPrefix) as the return URL and
// answers 401 with a redirect to the login page.
func RequireSession(store SessionGuard, apiPrefix string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if store.Snapshot().IsAuthenticated {
				next(w, r)
				return
			}
			path := strings.TrimPrefix(r.URL.Path, apiPrefix)
			store.SetReturnURL(&path)
			h.WriteLoginRequired(w)
		}
	}
}
