package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"eventify/internal/domain"
)

const (
	minPasswordLen = 6
	minUsernameLen = 3
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether email has an address shape the API accepts.
func ValidEmail(email string) bool {
	return emailRegexp.MatchString(strings.TrimSpace(email))
}

type accountService struct {
	accounts     domain.AccountRepository
	hasher       domain.PasswordHasher
	tokenIssuer  domain.TokenIssuer
	tokenExpiry  time.Duration
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewAccountService creates the development API's AccountService.
// emailService may be nil, in which case no welcome email is sent.
func NewAccountService(accounts domain.AccountRepository, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, tokenExpiry time.Duration, emailService domain.EmailService, logger *slog.Logger) domain.AccountService {
	return &accountService{
		accounts:     accounts,
		hasher:       hasher,
		tokenIssuer:  tokenIssuer,
		tokenExpiry:  tokenExpiry,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *accountService) SignUp(ctx context.Context, username, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	username = strings.TrimSpace(username)
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if len(username) < minUsernameLen {
		return nil, fmt.Errorf("%w: username must be at least %d characters", domain.ErrInvalidInput, minUsernameLen)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, err
	}

	account := domain.NewAccount(username, email, time.Now())
	account.Salt = salt
	account.PasswordHash = hash
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if s.emailService != nil {
		data := &domain.WelcomeMessageEmailData{Email: account.Email, Username: account.Username}
		if err := s.emailService.SendWelcomeMessage(ctx, data); err != nil {
			// The account exists already; a lost welcome email is not a signup failure.
			s.logger.WarnContext(ctx, "welcome email failed", "email", account.Email, "err", err)
		}
	}
	return account.User(), nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	account, err := s.accounts.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if err := s.hasher.Compare(account.PasswordHash, account.Salt, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := s.tokenIssuer.Issue(account.ID, account.Email, s.tokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &domain.LoginResult{User: account.User(), Token: token}, nil
}

func (s *accountService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account.User(), nil
}
