package registration

import "context"

// AccountStore owns the account collection and the uniqueness invariant
// on email. CreateIfAbsent is the only mutating operation.
type AccountStore interface {
	// FindByEmail returns the account registered under email, or ErrNotFound.
	// Safe to call concurrently with any other operation.
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// CreateIfAbsent inserts acc unless an account with the same email already
	// exists, in which case it returns ErrEmailTaken. The check and the insert
	// are indivisible with respect to concurrent callers: for any two
	// concurrent calls with the same email, at most one succeeds.
	CreateIfAbsent(ctx context.Context, acc *Account) error

	// Count reports the number of stored accounts.
	Count(ctx context.Context) (int64, error)
}
