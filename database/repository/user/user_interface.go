package userRepo

import (
	"errors"

	"careplus/models"
)

// ErrNotFound is returned when no user matches the given lookup.
var ErrNotFound = errors.New("user not found")

// ErrEmailTaken is returned by Create when the email unique index rejects
// the insert.
var ErrEmailTaken = errors.New("user email already registered")

// UserRepository defines data-access methods for the user directory.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
