package domain

import (
	"context"
	"errors"
	"time"
)

var ErrDuplicateEmail = errors.New("email already in use")

// User is the authenticated identity as seen by the web client.
// swagger:model User
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
}

// LoginResult is the body of a successful POST /auth/login.
type LoginResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// AuthGateway performs the remote credential exchange for the web client.
// Login returns ErrInvalidCredentials when the API rejects the credentials;
// any other error means the API could not be used.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Signup(ctx context.Context, username, email, password string) error
}

// Account is a registered user held by the development API.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Salt         string
	CreatedAt    time.Time
}

// NewAccount returns an Account with the given fields. ID is set by the repository on create.
func NewAccount(username, email string, createdAt time.Time) *Account {
	return &Account{Username: username, Email: email, CreatedAt: createdAt}
}

// User returns the public view of the account.
func (a *Account) User() *User {
	return &User{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=" + a.Email,
	}
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated account.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// AccountRepository defines the storage of development API accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
}

// AccountService is the business logic behind the development API's auth endpoints.
type AccountService interface {
	SignUp(ctx context.Context, username, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
