package domain

import "context"

// SessionState names the states of the session state machine.
type SessionState string

const (
	StateAnonymous      SessionState = "anonymous"
	StateAuthenticating SessionState = "authenticating"
	StateAuthenticated  SessionState = "authenticated"
)

// Session is an immutable snapshot of the client's authentication state.
// IsAuthenticated is true iff both User and Token are set.
type Session struct {
	User            *User
	Token           string
	IsAuthenticated bool
	IsLoading       bool
	ReturnURL       *string
}

// AnonymousSession is the initial and post-logout state.
func AnonymousSession() Session {
	return Session{}
}

// AuthenticatedSession builds a session for user holding token.
func AuthenticatedSession(user *User, token string) Session {
	s := Session{User: user, Token: token}
	s.IsAuthenticated = s.hasCredentials()
	return s
}

func (s Session) hasCredentials() bool {
	return s.User != nil && s.Token != ""
}

// State reports which state the snapshot is in.
func (s Session) State() SessionState {
	switch {
	case s.IsLoading:
		return StateAuthenticating
	case s.IsAuthenticated:
		return StateAuthenticated
	default:
		return StateAnonymous
	}
}

// Clone returns a deep copy so callers cannot alias the store's snapshot.
func (s Session) Clone() Session {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	if s.ReturnURL != nil {
		r := *s.ReturnURL
		out.ReturnURL = &r
	}
	return out
}

// PersistedSession is the subset of Session that survives restarts.
type PersistedSession struct {
	User            *User   `json:"user"`
	Token           *string `json:"token"`
	IsAuthenticated bool    `json:"isAuthenticated"`
}

// Persisted projects a session onto its durable subset.
func (s Session) Persisted() PersistedSession {
	p := PersistedSession{IsAuthenticated: s.IsAuthenticated}
	if s.User != nil {
		u := *s.User
		p.User = &u
	}
	if s.Token != "" {
		t := s.Token
		p.Token = &t
	}
	return p
}

// Equal reports whether two persisted records hold the same values.
func (p PersistedSession) Equal(o PersistedSession) bool {
	if p.IsAuthenticated != o.IsAuthenticated {
		return false
	}
	if (p.Token == nil) != (o.Token == nil) || (p.Token != nil && *p.Token != *o.Token) {
		return false
	}
	if (p.User == nil) != (o.User == nil) {
		return false
	}
	return p.User == nil || *p.User == *o.User
}

// Restore rebuilds a session from a persisted record. IsLoading and
// ReturnURL always start fresh, and IsAuthenticated is recomputed from
// User and Token rather than trusted from storage.
func (p PersistedSession) Restore() Session {
	s := Session{}
	if p.User != nil {
		u := *p.User
		s.User = &u
	}
	if p.Token != nil {
		s.Token = *p.Token
	}
	if !s.hasCredentials() {
		return AnonymousSession()
	}
	s.IsAuthenticated = true
	return s
}

// SessionPersister stores the persisted session record.
// Load returns ErrSessionNotFound when nothing has been saved yet.
type SessionPersister interface {
	Load(ctx context.Context) (PersistedSession, error)
	Save(ctx context.Context, session PersistedSession) error
}
