package user

import "careplus/models"

// CreateUserInput carries the fields collected by the initial contact form.
type CreateUserInput struct {
	Name  string `json:"name" binding:"required,min=2,max=50"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required,e164"`
}

// UserService manages the user directory.
type UserService interface {
	// CreateUser registers a new directory entry. If the email is already
	// registered the existing user is returned instead of an error.
	CreateUser(input CreateUserInput) (*models.User, error)
	GetUser(id string) (*models.User, error)
}
