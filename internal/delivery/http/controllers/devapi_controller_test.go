package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventify/internal/delivery/http/helpers"
	"eventify/internal/delivery/http/middleware"
	"eventify/internal/domain"
)

// fakeAccountService implements domain.AccountService for handler tests.
type fakeAccountService struct {
	signUpUser  *domain.User
	signUpErr   error
	loginResult *domain.LoginResult
	loginErr    error
	getUser     *domain.User
	getErr      error
}

func (f *fakeAccountService) SignUp(ctx context.Context, username, email, password string) (*domain.User, error) {
	return f.signUpUser, f.signUpErr
}

func (f *fakeAccountService) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeAccountService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return f.getUser, f.getErr
}

func TestDevAPIController_ListEvents(t *testing.T) {
	ctrl := NewDevAPIController(testLogger, &fakeAccountService{}, func() []domain.Event { return sampleCatalog().Events })
	rr := httptest.NewRecorder()

	ctrl.ListEvents(rr, httptest.NewRequest(http.MethodGet, "http://test/events", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var records []map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&records))
	require.Len(t, records, 3)
	assert.Equal(t, map[string]string{
		"title":       "Summer Gala",
		"date":        "2024-07-15",
		"description": "",
		"location":    "",
	}, records[0])
}

func TestDevAPIController_SignUp(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		svc          *fakeAccountService
		wantStatus   int
		wantBodyCode string
	}{
		{
			name:       "created",
			body:       `{"username":"alice","email":"alice@example.com","password":"secret1"}`,
			svc:        &fakeAccountService{signUpUser: &domain.User{ID: "u1", Username: "alice"}},
			wantStatus: http.StatusCreated,
		},
		{
			name:         "duplicate",
			body:         `{"username":"alice","email":"alice@example.com","password":"secret1"}`,
			svc:          &fakeAccountService{signUpErr: domain.ErrDuplicateEmail},
			wantStatus:   http.StatusConflict,
			wantBodyCode: helpers.ErrCodeConflict,
		},
		{
			name:         "service validation",
			body:         `{"username":"alice","email":"alice@example.com","password":"123"}`,
			svc:          &fakeAccountService{signUpErr: fmt.Errorf("%w: password must be at least 6 characters", domain.ErrInvalidInput)},
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "unclassified error with validation wording",
			body:         `{"username":"alice","email":"alice@example.com","password":"secret1"}`,
			svc:          &fakeAccountService{signUpErr: errors.New("storage quota must be at least 1")},
			wantStatus:   http.StatusInternalServerError,
			wantBodyCode: helpers.ErrCodeInternalError,
		},
		{
			name:         "missing fields",
			body:         `{}`,
			svc:          &fakeAccountService{},
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "service failure",
			body:         `{"username":"alice","email":"alice@example.com","password":"secret1"}`,
			svc:          &fakeAccountService{signUpErr: assert.AnError},
			wantStatus:   http.StatusInternalServerError,
			wantBodyCode: helpers.ErrCodeInternalError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewDevAPIController(testLogger, tt.svc, nil)
			req := httptest.NewRequest(http.MethodPost, "http://test/auth/signup", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			ctrl.SignUp(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBodyCode != "" {
				assert.Equal(t, tt.wantBodyCode, decodeEnvelope(t, rr, nil).Code)
				return
			}
			var user domain.User
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&user))
			assert.Equal(t, "u1", user.ID)
		})
	}
}

func TestDevAPIController_Login(t *testing.T) {
	tests := []struct {
		name       string
		svc        *fakeAccountService
		wantStatus int
	}{
		{
			name:       "raw user and token",
			svc:        &fakeAccountService{loginResult: &domain.LoginResult{User: &domain.User{ID: "u1", Username: "alice", Email: "alice@example.com"}, Token: "jwt"}},
			wantStatus: http.StatusOK,
		},
		{name: "invalid credentials", svc: &fakeAccountService{loginErr: domain.ErrInvalidCredentials}, wantStatus: http.StatusUnauthorized},
		{name: "failure", svc: &fakeAccountService{loginErr: assert.AnError}, wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewDevAPIController(testLogger, tt.svc, nil)
			req := httptest.NewRequest(http.MethodPost, "http://test/auth/login", strings.NewReader(`{"email":"alice@example.com","password":"secret1"}`))
			rr := httptest.NewRecorder()

			ctrl.Login(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"user":{"id":"u1","username":"alice","email":"alice@example.com"},"token":"jwt"}`, rr.Body.String())
			}
		})
	}
}

func TestDevAPIController_GetMe(t *testing.T) {
	tests := []struct {
		name          string
		contextUserID string
		svc           *fakeAccountService
		wantStatus    int
	}{
		{name: "success", contextUserID: "u1", svc: &fakeAccountService{getUser: &domain.User{ID: "u1"}}, wantStatus: http.StatusOK},
		{name: "no user in context", svc: &fakeAccountService{}, wantStatus: http.StatusUnauthorized},
		{name: "not found", contextUserID: "u1", svc: &fakeAccountService{getErr: domain.ErrNotFound}, wantStatus: http.StatusNotFound},
		{name: "failure", contextUserID: "u1", svc: &fakeAccountService{getErr: assert.AnError}, wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewDevAPIController(testLogger, tt.svc, nil)
			req := httptest.NewRequest(http.MethodGet, "http://test/users/me", nil)
			if tt.contextUserID != "" {
				req = req.WithContext(middleware.SetUserID(req.Context(), tt.contextUserID))
			}
			rr := httptest.NewRecorder()

			ctrl.GetMe(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
