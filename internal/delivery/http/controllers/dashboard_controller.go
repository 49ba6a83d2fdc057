package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	h "eventify/internal/delivery/http/helpers"
	"eventify/internal/domain"
)

const upcomingOnDashboard = 3

// BookingBoard is the dashboard's booking store.
type BookingBoard interface {
	Split() (active, cancelled []domain.Booking)
	Upcoming(limit int) []domain.Booking
	Get(id string) (domain.Booking, error)
	Cancel(ctx context.Context, id string) (domain.Booking, error)
}

// SessionReader exposes the current session snapshot.
type SessionReader interface {
	Snapshot() domain.Session
}

// DashboardStats summarises the bookings board.
type DashboardStats struct {
	UpcomingEvents int `json:"upcoming_events"`
	TotalBookings  int `json:"total_bookings"`
	Cancelled      int `json:"cancelled"`
}

// DashboardResponse is the body of GET /api/dashboard.
// swagger:model DashboardResponse
type DashboardResponse struct {
	Greeting string           `json:"greeting"`
	User     *domain.User     `json:"user"`
	Stats    DashboardStats   `json:"stats"`
	Upcoming []domain.Booking `json:"upcoming"`
}

// BookingsResponse is the body of GET /api/dashboard/bookings.
type BookingsResponse struct {
	Active    []domain.Booking `json:"active"`
	Cancelled []domain.Booking `json:"cancelled"`
}

// BookingDetailResponse is the body of GET /api/dashboard/bookings/{id}.
type BookingDetailResponse struct {
	Booking domain.Booking `json:"booking"`
	Total   float64        `json:"total"`
}

type DashboardController struct {
	Logger   *slog.Logger
	Session  SessionReader
	Bookings BookingBoard
}

func NewDashboardController(logger *slog.Logger, session SessionReader, bookings BookingBoard) *DashboardController {
	return &DashboardController{
		Logger:   logger,
		Session:  session,
		Bookings: bookings,
	}
}

// GetDashboard godoc
// @Summary Dashboard overview
// @Tags dashboard
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=DashboardResponse}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized, error.redirect: /login"
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	user := c.Session.Snapshot().User
	active, cancelled := c.Bookings.Split()
	greeting := "Welcome back!"
	if user != nil {
		greeting = "Welcome back, " + user.Username + "!"
	}
	h.WriteJSONSuccess(w, http.StatusOK, DashboardResponse{
		Greeting: greeting,
		User:     user,
		Stats: DashboardStats{
			UpcomingEvents: len(active),
			TotalBookings:  len(active) + len(cancelled),
			Cancelled:      len(cancelled),
		},
		Upcoming: c.Bookings.Upcoming(upcomingOnDashboard),
	})
}

// GetProfile godoc
// @Summary Profile of the logged-in user
// @Tags dashboard
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=domain.User}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized, error.redirect: /login"
// @Router /api/dashboard/profile [get]
func (c *DashboardController) GetProfile(w http.ResponseWriter, r *http.Request) {
	user := c.Session.Snapshot().User
	if user == nil {
		h.WriteLoginRequired(w)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, user)
}

// ListBookings godoc
// @Summary Bookings split into active and cancelled
// @Tags dashboard
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=BookingsResponse}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized, error.redirect: /login"
// @Router /api/dashboard/bookings [get]
func (c *DashboardController) ListBookings(w http.ResponseWriter, r *http.Request) {
	active, cancelled := c.Bookings.Split()
	h.WriteJSONSuccess(w, http.StatusOK, BookingsResponse{Active: active, Cancelled: cancelled})
}

// GetBooking godoc
// @Summary Booking details
// @Tags dashboard
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} helpers.APIResponse{data=BookingDetailResponse}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized, error.redirect: /login"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/dashboard/bookings/{id} [get]
func (c *DashboardController) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := c.Bookings.Get(r.PathValue("id"))
	if err != nil {
		c.writeBookingError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, BookingDetailResponse{Booking: booking, Total: booking.Total()})
}

// CancelBooking godoc
// @Summary Cancel a booking
// @Description Marks the booking cancelled for this session. Cancelling twice is harmless.
// @Tags dashboard
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} helpers.APIResponse{data=domain.Booking}
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized, error.redirect: /login"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/dashboard/bookings/{id}/cancel [post]
func (c *DashboardController) CancelBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := c.Bookings.Cancel(r.Context(), r.PathValue("id"))
	if err != nil {
		c.writeBookingError(w, r, err)
		return
	}
	c.Logger.InfoContext(r.Context(), "booking cancelled", "booking", booking.ID)
	h.WriteJSONSuccess(w, http.StatusOK, booking)
}

func (c *DashboardController) writeBookingError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "booking not found")
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal error")
}
