package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "eventify/internal/delivery/http/helpers"
	"eventify/internal/delivery/http/middleware"
	"eventify/internal/domain"
)

// SignUpRequest is the request body for POST /auth/signup
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (s SignUpRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Username) == "" {
		errs = append(errs, "username is required")
	}
	if strings.TrimSpace(s.Email) == "" {
		errs = append(errs, "email is required")
	}
	if s.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// CredentialsRequest is the request body for POST /auth/login
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l CredentialsRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// DevAPIController serves the events API wire format: bodies are written
// without the response envelope, errors keep it.
type DevAPIController struct {
	Logger   *slog.Logger
	Accounts domain.AccountService
	Events   func() []domain.Event
}

func NewDevAPIController(logger *slog.Logger, accounts domain.AccountService, events func() []domain.Event) *DevAPIController {
	return &DevAPIController{
		Logger:   logger,
		Accounts: accounts,
		Events:   events,
	}
}

// ListEvents godoc
// @Summary Raw event records
// @Tags devapi
// @Produce json
// @Success 200 {array} domain.RemoteEvent
// @Router /events [get]
func (c *DevAPIController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events := c.Events()
	records := make([]domain.RemoteEvent, len(events))
	for i, e := range events {
		records[i] = domain.RemoteEvent{
			Title:       e.Title,
			Date:        e.Date,
			Description: e.Description,
			Location:    e.Location,
		}
	}
	h.WriteJSON(w, http.StatusOK, records)
}

// SignUp godoc
// @Summary Sign up a new user
// @Description Creates an account and sends a welcome email. Password is stored hashed.
// @Tags devapi
// @Accept json
// @Produce json
// @Param body body SignUpRequest true "Sign-up data"
// @Success 201 {object} domain.User
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/signup [post]
func (c *DevAPIController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Accounts.SignUp(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "email already registered")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal error")
		return
	}
	h.WriteJSON(w, http.StatusCreated, user)
}

// Login godoc
// @Summary Log in
// @Description Returns the user and an HS256 JWT.
// @Tags devapi
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "Login credentials"
// @Success 200 {object} domain.LoginResult
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login [post]
func (c *DevAPIController) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid credentials")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal error")
		return
	}
	h.WriteJSON(w, http.StatusOK, result)
}

// GetMe godoc
// @Summary Current user
// @Tags devapi
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /users/me [get]
func (c *DevAPIController) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || userID == "" {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	user, err := c.Accounts.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "user not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal error")
		return
	}
	h.WriteJSON(w, http.StatusOK, user)
}
