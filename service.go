package registration

import (
	"context"
	"errors"
	"strings"
	"time"
)

type Service interface {
	Register(ctx context.Context, payload RegistrationPayload) RegistrationOutcome
}

// OutcomeKind tags the variant of a RegistrationOutcome.
type OutcomeKind int

const (
	OutcomeCreated OutcomeKind = iota
	OutcomeValidationFailed
	OutcomeEmailTaken
	OutcomeStorageError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCreated:
		return "created"
	case OutcomeValidationFailed:
		return "validation_failed"
	case OutcomeEmailTaken:
		return "email_taken"
	case OutcomeStorageError:
		return "storage_error"
	}
	return "unknown"
}

// RegistrationOutcome is the result of one registration attempt. Exactly one
// variant is produced per call: Account is set for Created, Errors for
// ValidationFailed, Cause for StorageError.
type RegistrationOutcome struct {
	Kind    OutcomeKind
	Account *Account
	Errors  []FieldError
	Cause   error
}

const (
	defaultStoreTimeout = 5 * time.Second
	defaultBcryptCost   = 12
)

type service struct {
	accounts     AccountStore
	storeTimeout time.Duration
	bcryptCost   int
}

func NewService(accounts AccountStore, storeTimeout time.Duration, bcryptCost int) Service {
	if storeTimeout <= 0 {
		storeTimeout = defaultStoreTimeout
	}
	if bcryptCost <= 0 {
		bcryptCost = defaultBcryptCost
	}
	return &service{accounts: accounts, storeTimeout: storeTimeout, bcryptCost: bcryptCost}
}

// Register validates the payload, then hands a fully built account to the
// store's atomic CreateIfAbsent. Invalid payloads never touch the store; a
// store call that hangs is cut off by the configured timeout and reported
// as a storage error. No retries.
func (svc *service) Register(ctx context.Context, payload RegistrationPayload) RegistrationOutcome {
	if result := Validate(payload); !result.IsValid() {
		return RegistrationOutcome{Kind: OutcomeValidationFailed, Errors: result.Errors}
	}

	hash, err := hashPassword(payload.Password, svc.bcryptCost)
	if err != nil {
		return RegistrationOutcome{Kind: OutcomeStorageError, Cause: err}
	}

	acc := &Account{
		ID:           NewID(),
		Email:        strings.TrimSpace(payload.Email),
		Name:         strings.TrimSpace(payload.Name),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, svc.storeTimeout)
	defer cancel()

	err = svc.accounts.CreateIfAbsent(ctx, acc)
	switch {
	case err == nil:
		return RegistrationOutcome{Kind: OutcomeCreated, Account: acc}
	case errors.Is(err, ErrEmailTaken):
		return RegistrationOutcome{Kind: OutcomeEmailTaken}
	default:
		return RegistrationOutcome{Kind: OutcomeStorageError, Cause: err}
	}
}
