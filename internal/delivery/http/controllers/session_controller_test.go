package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventify/internal/delivery/http/helpers"
	"eventify/internal/domain"
)

func TestSessionController_Login(t *testing.T) {
	profile := "/dashboard/profile"

	tests := []struct {
		name         string
		body         string
		returnURL    *string
		loginOK      bool
		wantStatus   int
		wantBodyCode string
		wantRedirect string
	}{
		{
			name:         "success defaults to dashboard",
			body:         `{"email":"alice@example.com","password":"secret1"}`,
			loginOK:      true,
			wantStatus:   http.StatusOK,
			wantRedirect: "/dashboard",
		},
		{
			name:         "success resumes return url",
			body:         `{"email":"alice@example.com","password":"secret1"}`,
			returnURL:    &profile,
			loginOK:      true,
			wantStatus:   http.StatusOK,
			wantRedirect: "/dashboard/profile",
		},
		{
			name:         "invalid email",
			body:         `{"email":"alice","password":"secret1"}`,
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "short password",
			body:         `{"email":"alice@example.com","password":"123"}`,
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "store refuses",
			body:         `{"email":"alice@example.com","password":"secret1"}`,
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &fakeSession{loginOK: tt.loginOK, returnURL: tt.returnURL}
			ctrl := NewSessionController(testLogger, session)
			req := httptest.NewRequest(http.MethodPost, "http://test/api/login", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			ctrl.Login(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var body LoginResponse
			apiErr := decodeEnvelope(t, rr, &body)
			if tt.wantBodyCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantBodyCode, apiErr.Code)
				return
			}
			require.Nil(t, apiErr)
			assert.Equal(t, tt.wantRedirect, body.Redirect)
			assert.True(t, body.Session.IsAuthenticated)
			assert.Equal(t, domain.StateAuthenticated, body.Session.State)
			assert.Nil(t, session.returnURL, "return url must be consumed")
		})
	}
}

func TestSessionController_Login_neverLeaksToken(t *testing.T) {
	ctrl := NewSessionController(testLogger, &fakeSession{loginOK: true})
	req := httptest.NewRequest(http.MethodPost, "http://test/api/login", strings.NewReader(`{"email":"alice@example.com","password":"secret1"}`))
	rr := httptest.NewRecorder()

	ctrl.Login(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "token")
}

func TestSessionController_Register(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantSignups int
		wantLogins  int
	}{
		{
			name:        "signs up then logs in",
			body:        `{"username":"alice","email":"alice@example.com","password":"secret1","terms":true}`,
			wantStatus:  http.StatusCreated,
			wantSignups: 1,
			wantLogins:  1,
		},
		{
			name:       "terms not accepted",
			body:       `{"username":"alice","email":"alice@example.com","password":"secret1","terms":false}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "short username",
			body:       `{"username":"al","email":"alice@example.com","password":"secret1","terms":true}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"username":"alice","email":"alice@example.com","password":"secret1","terms":true,"admin":true}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &fakeSession{loginOK: true, signupOK: true}
			ctrl := NewSessionController(testLogger, session)
			req := httptest.NewRequest(http.MethodPost, "http://test/api/register", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			ctrl.Register(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Len(t, session.signups, tt.wantSignups)
			assert.Len(t, session.logins, tt.wantLogins)
			if tt.wantStatus == http.StatusCreated {
				var body LoginResponse
				require.Nil(t, decodeEnvelope(t, rr, &body))
				assert.Equal(t, "/dashboard", body.Redirect)
				assert.Equal(t, []string{"alice@example.com"}, session.logins)
			}
		})
	}
}

func TestSessionController_Logout(t *testing.T) {
	session := &fakeSession{session: domain.AuthenticatedSession(&domain.User{ID: "1"}, "tok")}
	ctrl := NewSessionController(testLogger, session)
	rr := httptest.NewRecorder()

	ctrl.Logout(rr, httptest.NewRequest(http.MethodPost, "http://test/api/logout", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, session.loggedOut)
	var body RedirectResponse
	require.Nil(t, decodeEnvelope(t, rr, &body))
	assert.Equal(t, "/", body.Redirect)
}

func TestSessionController_GetSession(t *testing.T) {
	url := "/dashboard"
	tests := []struct {
		name     string
		session  domain.Session
		wantAuth bool
		wantUser bool
	}{
		{name: "anonymous", session: domain.Session{ReturnURL: &url}},
		{name: "authenticated", session: domain.AuthenticatedSession(&domain.User{ID: "1", Username: "alice"}, "secret-token"), wantAuth: true, wantUser: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewSessionController(testLogger, &fakeSession{session: tt.session})
			rr := httptest.NewRecorder()

			ctrl.GetSession(rr, httptest.NewRequest(http.MethodGet, "http://test/api/session", nil))

			require.Equal(t, http.StatusOK, rr.Code)
			assert.NotContains(t, rr.Body.String(), "secret-token")
			var body SessionView
			require.Nil(t, decodeEnvelope(t, rr, &body))
			assert.Equal(t, tt.wantAuth, body.IsAuthenticated)
			assert.Equal(t, tt.wantUser, body.User != nil)
		})
	}
}
