package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"eventify/internal/delivery/http/helpers"
	"eventify/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeCatalog implements domain.CatalogService for handler tests.
type fakeCatalog struct {
	catalog domain.Catalog
}

func (f *fakeCatalog) FetchCatalog(ctx context.Context) domain.Catalog {
	return f.catalog
}

func (f *fakeCatalog) FetchEventBySlug(ctx context.Context, slug string) (*domain.Event, bool) {
	return f.catalog.BySlug(slug)
}

// fakeSession implements SessionManager and middleware.SessionGuard for handler tests.
type fakeSession struct {
	session     domain.Session
	loginOK     bool
	signupOK    bool
	logins      []string
	signups     []string
	loggedOut   bool
	returnURL   *string
}

func (f *fakeSession) Snapshot() domain.Session { return f.session }

func (f *fakeSession) Login(ctx context.Context, email, password string) bool {
	f.logins = append(f.logins, email)
	if f.loginOK {
		f.session = domain.AuthenticatedSession(&domain.User{ID: "1", Username: "alice", Email: email}, "tok")
	}
	return f.loginOK
}

func (f *fakeSession) Signup(ctx context.Context, username, email, password string) bool {
	f.signups = append(f.signups, username)
	return f.signupOK
}

func (f *fakeSession) Logout(ctx context.Context) {
	f.loggedOut = true
	f.session = domain.AnonymousSession()
}

func (f *fakeSession) SetReturnURL(url *string) { f.returnURL = url }

func (f *fakeSession) ConsumeReturnURL(fallback string) string {
	if f.returnURL != nil {
		u := *f.returnURL
		f.returnURL = nil
		return u
	}
	return fallback
}

// decodeEnvelope decodes the response envelope and, when dest is not nil, its data.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, dest any) *helpers.APIError {
	t.Helper()
	var envelope struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	if dest != nil && envelope.Error == nil {
		require.NoError(t, json.Unmarshal(envelope.Data, dest))
	}
	return envelope.Error
}

func sampleCatalog() domain.Catalog {
	return domain.FromFallback([]domain.Event{
		{ID: "1", Slug: "summer-gala", Title: "Summer Gala", Date: "2024-07-15", Category: domain.CategoryCorporate, Price: 350, Attendees: 420, MaxAttendees: 500, Featured: true},
		{ID: "2", Slug: "tech-summit", Title: "Tech Summit", Date: "2024-08-22", Category: domain.CategoryCorporate, Price: 499, Attendees: 1200, MaxAttendees: 1500},
		{ID: "3", Slug: "jazz-night", Title: "Jazz Night", Description: "Live jazz", Date: "2024-07-05", Category: domain.CategoryConcerts, Price: 150, Attendees: 180, MaxAttendees: 200, Featured: true},
	})
}
