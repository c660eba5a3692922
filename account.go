package registration

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rs/xid"
)

// Account is the persisted record created by a successful registration.
// Accounts are created exactly once per unique email and never mutated
// or deleted by this service.
type Account struct {
	ID           ID        `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

type ID string

var (
	ErrNotFound   = errors.New("account not found")
	ErrEmailTaken = errors.New("email in use")
)

func NewID() ID {
	return ID(xid.New().String())
}

// IsValidID checks if a given id is valid based on the xid library definition of a valid id
// this method should change if we ever change our uid generation library
func IsValidID(id string) bool {
	if _, err := xid.FromString(id); err != nil {
		return false
	}
	return true
}

func hashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", errors.New("error hashing password")
	}
	return string(hash), nil
}

func hashMatchesPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
