package user

import (
	"errors"
	"fmt"

	userRepo "careplus/database/repository/user"
	"careplus/models"
	"careplus/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// CreateUser registers a new directory entry. Re-submitting a known email is
// not an error: the intake flow treats it as the same person coming back, so
// the existing user is returned.
func (s *DefaultUserService) CreateUser(input CreateUserInput) (*models.User, error) {
	newUser := &models.User{
		ID:    uuid.New().String(),
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}

	err := s.Repo.Create(newUser)
	if err == nil {
		return newUser, nil
	}
	if errors.Is(err, userRepo.ErrEmailTaken) {
		existing, lookupErr := s.Repo.GetByEmail(input.Email)
		if lookupErr != nil {
			return nil, fmt.Errorf("failed to fetch existing user for %s: %w", input.Email, lookupErr)
		}
		utils.GetLogger().Info("Returning existing user for known email", zap.String("userID", existing.ID))
		return existing, nil
	}
	return nil, fmt.Errorf("failed to create user: %w", err)
}

// GetUser retrieves a directory user by ID.
func (s *DefaultUserService) GetUser(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return u, nil
}
