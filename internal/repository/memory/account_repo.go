package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"eventify/internal/domain"
)

// AccountRepository keeps development API accounts in process memory.
type AccountRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Account
	byEmail map[string]string
}

// NewAccountRepository returns an empty repository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byID:    make(map[string]*domain.Account),
		byEmail: make(map[string]string),
	}
}

var _ domain.AccountRepository = (*AccountRepository)(nil)

// Create assigns account a new UUID and stores a copy of it.
func (r *AccountRepository) Create(_ context.Context, account *domain.Account) error {
	email := normalizeEmail(account.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byEmail[email]; taken {
		return domain.ErrDuplicateEmail
	}
	account.ID = uuid.NewString()
	stored := *account
	r.byID[stored.ID] = &stored
	r.byEmail[email] = stored.ID
	return nil
}

func (r *AccountRepository) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	stored := *r.byID[id]
	return &stored, nil
}

func (r *AccountRepository) GetByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	stored := *account
	return &stored, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
