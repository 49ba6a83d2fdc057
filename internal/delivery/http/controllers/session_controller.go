package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "eventify/internal/delivery/http/helpers"
	"eventify/internal/domain"
	"eventify/internal/services"
)

const (
	minPasswordLen = 6
	minUsernameLen = 3
	dashboardPath  = "/dashboard"
)

// SessionManager is the session store as seen by the login and register views.
type SessionManager interface {
	Snapshot() domain.Session
	Login(ctx context.Context, email, password string) bool
	Signup(ctx context.Context, username, email, password string) bool
	Logout(ctx context.Context)
	ConsumeReturnURL(fallback string) string
}

// LoginRequest is the request body for POST /api/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	} else if !services.ValidEmail(l.Email) {
		errs = append(errs, "please enter a valid email address")
	}
	if len(l.Password) < minPasswordLen {
		errs = append(errs, "password must be at least 6 characters")
	}
	return errs
}

// RegisterRequest is the request body for POST /api/register
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Terms    bool   `json:"terms"`
}

// Validate implements Validator.
func (s RegisterRequest) Validate() []string {
	var errs []string
	if len(strings.TrimSpace(s.Username)) < minUsernameLen {
		errs = append(errs, "username must be at least 3 characters")
	}
	if !services.ValidEmail(s.Email) {
		errs = append(errs, "please enter a valid email address")
	}
	if len(s.Password) < minPasswordLen {
		errs = append(errs, "password must be at least 6 characters")
	}
	if !s.Terms {
		errs = append(errs, "you must accept the terms")
	}
	return errs
}

// SessionView is the public projection of the session. It never carries the token.
// swagger:model SessionView
type SessionView struct {
	State           domain.SessionState `json:"state"`
	IsAuthenticated bool                `json:"is_authenticated"`
	IsLoading       bool                `json:"is_loading"`
	User            *domain.User        `json:"user"`
	ReturnURL       *string             `json:"return_url"`
}

// NewSessionView projects s.
func NewSessionView(s domain.Session) SessionView {
	return SessionView{
		State:           s.State(),
		IsAuthenticated: s.IsAuthenticated,
		IsLoading:       s.IsLoading,
		User:            s.User,
		ReturnURL:       s.ReturnURL,
	}
}

// LoginResponse is the response body for POST /api/login
type LoginResponse struct {
	Redirect string      `json:"redirect"`
	Session  SessionView `json:"session"`
}

type SessionController struct {
	Logger  *slog.Logger
	Session SessionManager
}

func NewSessionController(logger *slog.Logger, session SessionManager) *SessionController {
	return &SessionController{
		Logger:  logger,
		Session: session,
	}
}

// Login godoc
// @Summary Log in
// @Description Exchanges credentials with the events API. When the API is unavailable a local identity is used. Redirects to the page that required login, or to the dashboard.
// @Tags session
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} helpers.APIResponse{data=LoginResponse}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/login [post]
func (c *SessionController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if !c.Session.Login(r.Context(), strings.TrimSpace(req.Email), req.Password) {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid credentials")
		return
	}
	redirect := c.Session.ConsumeReturnURL(dashboardPath)
	h.WriteJSONSuccess(w, http.StatusOK, LoginResponse{
		Redirect: redirect,
		Session:  NewSessionView(c.Session.Snapshot()),
	})
}

// Register godoc
// @Summary Create an account
// @Description Signs up with the events API, then logs in with the same credentials.
// @Tags session
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} helpers.APIResponse{data=LoginResponse}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/register [post]
func (c *SessionController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	email := strings.TrimSpace(req.Email)
	if !c.Session.Signup(r.Context(), strings.TrimSpace(req.Username), email, req.Password) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "registration failed")
		return
	}
	if !c.Session.Login(r.Context(), email, req.Password) {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid credentials")
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, LoginResponse{
		Redirect: dashboardPath,
		Session:  NewSessionView(c.Session.Snapshot()),
	})
}

// Logout godoc
// @Summary Log out
// @Tags session
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=RedirectResponse}
// @Router /api/logout [post]
func (c *SessionController) Logout(w http.ResponseWriter, r *http.Request) {
	c.Session.Logout(r.Context())
	h.WriteJSONSuccess(w, http.StatusOK, RedirectResponse{Redirect: "/"})
}

// GetSession godoc
// @Summary Current session
// @Tags session
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=SessionView}
// @Router /api/session [get]
func (c *SessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONSuccess(w, http.StatusOK, NewSessionView(c.Session.Snapshot()))
}
