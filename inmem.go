package registration

import (
	"context"
	"sync"
)

// The in-memory store keeps the reference implementation lightweight and
// testable. The mutex makes the check-and-insert in CreateIfAbsent
// indivisible, which is what upholds the email uniqueness invariant here.
type accountRepository struct {
	mu       sync.RWMutex
	accounts map[string]Account
}

func NewAccountRepository() AccountStore {
	return &accountRepository{accounts: map[string]Account{}}
}

func (repo *accountRepository) FindByEmail(_ context.Context, email string) (*Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	if acc, ok := repo.accounts[email]; ok {
		return &acc, nil
	}
	return nil, ErrNotFound
}

func (repo *accountRepository) CreateIfAbsent(_ context.Context, acc *Account) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, ok := repo.accounts[acc.Email]; ok {
		return ErrEmailTaken
	}
	repo.accounts[acc.Email] = *acc
	return nil
}

func (repo *accountRepository) Count(_ context.Context) (int64, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return int64(len(repo.accounts)), nil
}
