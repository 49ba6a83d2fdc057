package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventify/internal/delivery/http/controllers"
	"eventify/internal/delivery/http/middleware"
	"eventify/internal/domain"
)

// APIPrefix is where the web client's JSON views are mounted.
const APIPrefix = "/api"

// NewRouter initializes the web client's router. Dashboard views require a
// logged-in session.
func NewRouter(
	eventsController *controllers.EventsController,
	sessionController *controllers.SessionController,
	dashboardController *controllers.DashboardController,
	guard middleware.SessionGuard,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireSession := middleware.RequireSession(guard, APIPrefix)

	// Session
	mux.HandleFunc("POST /api/login", sessionController.Login)
	mux.HandleFunc("POST /api/register", sessionController.Register)
	mux.HandleFunc("POST /api/logout", sessionController.Logout)
	mux.HandleFunc("GET /api/session", sessionController.GetSession)

	// Events
	mux.HandleFunc("GET /api/events", eventsController.ListEvents)
	mux.HandleFunc("GET /api/events/featured", eventsController.FeaturedEvents)
	mux.HandleFunc("GET /api/events/{slug}", eventsController.GetEvent)
	mux.HandleFunc("POST /api/events/{slug}/book", eventsController.BookEvent)

	// Dashboard
	mux.HandleFunc("GET /api/dashboard", requireSession(dashboardController.GetDashboard))
	mux.HandleFunc("GET /api/dashboard/profile", requireSession(dashboardController.GetProfile))
	mux.HandleFunc("GET /api/dashboard/bookings", requireSession(dashboardController.ListBookings))
	mux.HandleFunc("GET /api/dashboard/bookings/{id}", requireSession(dashboardController.GetBooking))
	mux.HandleFunc("POST /api/dashboard/bookings/{id}/cancel", requireSession(dashboardController.CancelBooking))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewDevAPIRouter initializes the development events API.
func NewDevAPIRouter(devAPIController *controllers.DevAPIController, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	mux.HandleFunc("GET /events", devAPIController.ListEvents)
	mux.HandleFunc("POST /auth/signup", devAPIController.SignUp)
	mux.HandleFunc("POST /auth/login", devAPIController.Login)
	mux.HandleFunc("GET /users/me", requireAuth(devAPIController.GetMe))

	return mux
}
