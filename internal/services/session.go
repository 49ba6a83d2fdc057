package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"eventify/internal/domain"
)

const (
	// MockToken is the placeholder credential of the offline login fallback.
	MockToken      = "mock-token-12345"
	mockUserID     = "1"
	mockAvatarBase = "https://api.dicebear.com/7.x/avataaars/svg?seed="
)

// SessionStore owns the client's authentication state. Only its methods
// mutate the state; readers get immutable snapshots through Snapshot.
type SessionStore struct {
	gateway   domain.AuthGateway
	persister domain.SessionPersister
	logger    *slog.Logger

	mu        sync.Mutex // serialises writers
	current   atomic.Pointer[domain.Session]
	lastSaved domain.PersistedSession
}

// NewSessionStore creates a store and rehydrates it from persister. A
// missing or unreadable record starts the store anonymous.
func NewSessionStore(ctx context.Context, gateway domain.AuthGateway, persister domain.SessionPersister, logger *slog.Logger) *SessionStore {
	s := &SessionStore{gateway: gateway, persister: persister, logger: logger}

	initial := domain.AnonymousSession()
	record, err := persister.Load(ctx)
	switch {
	case err == nil:
		initial = record.Restore()
		s.lastSaved = record
	case errors.Is(err, domain.ErrSessionNotFound):
	default:
		logger.WarnContext(ctx, "could not restore session, starting anonymous", "err", err)
	}
	s.current.Store(&initial)
	return s
}

// Snapshot returns a copy of the current state.
func (s *SessionStore) Snapshot() domain.Session {
	return s.current.Load().Clone()
}

// Login exchanges credentials with the remote API. When the API rejects or
// cannot serve the request, a local identity derived from email is adopted
// instead, so Login reports true on both paths.
func (s *SessionStore) Login(ctx context.Context, email, password string) bool {
	s.commit(ctx, func(next *domain.Session) { next.IsLoading = true })

	result, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.logger.WarnContext(ctx, "login rejected by api, using mock login", "email", email)
		} else {
			s.logger.WarnContext(ctx, "login api unavailable, using mock login", "email", email, "err", err)
		}
		result = &domain.LoginResult{User: mockUser(email), Token: MockToken}
	}

	s.commit(ctx, func(next *domain.Session) {
		next.User = result.User
		next.Token = result.Token
		next.IsLoading = false
	})
	return true
}

// Signup registers the account remotely. It never authenticates the
// session; callers log in afterwards. Remote failures still report true.
func (s *SessionStore) Signup(ctx context.Context, username, email, password string) bool {
	s.commit(ctx, func(next *domain.Session) { next.IsLoading = true })

	if err := s.gateway.Signup(ctx, username, email, password); err != nil {
		s.logger.WarnContext(ctx, "signup api unavailable, using mock signup", "email", email, "err", err)
	}

	s.commit(ctx, func(next *domain.Session) { next.IsLoading = false })
	return true
}

// Logout resets the store to anonymous and clears the return URL.
func (s *SessionStore) Logout(ctx context.Context) {
	s.commit(ctx, func(next *domain.Session) {
		next.User = nil
		next.Token = ""
		next.ReturnURL = nil
	})
}

// SetReturnURL records (or with nil, clears) the path to resume after login.
func (s *SessionStore) SetReturnURL(url *string) {
	s.commit(context.Background(), func(next *domain.Session) {
		if url == nil {
			next.ReturnURL = nil
			return
		}
		u := *url
		next.ReturnURL = &u
	})
}

// ConsumeReturnURL returns the recorded return URL, or fallback when none
// is set, and clears it.
func (s *SessionStore) ConsumeReturnURL(fallback string) string {
	target := fallback
	s.commit(context.Background(), func(next *domain.Session) {
		if next.ReturnURL != nil && *next.ReturnURL != "" {
			target = *next.ReturnURL
		}
		next.ReturnURL = nil
	})
	return target
}

// commit builds the next snapshot from a copy of the current one, publishes
// it in a single swap and saves the persisted subset when it changed.
func (s *SessionStore) commit(ctx context.Context, mutate func(next *domain.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Load().Clone()
	mutate(&next)
	next.IsAuthenticated = next.User != nil && next.Token != ""
	s.current.Store(&next)

	record := next.Persisted()
	if record.Equal(s.lastSaved) {
		return
	}
	if err := s.persister.Save(ctx, record); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist session", "err", err)
		return
	}
	s.lastSaved = record
}

func mockUser(email string) *domain.User {
	username, _, _ := strings.Cut(email, "@")
	return &domain.User{
		ID:       mockUserID,
		Username: username,
		Email:    email,
		Avatar:   mockAvatarBase + email,
	}
}
