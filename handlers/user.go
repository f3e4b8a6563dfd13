package handlers

import (
	"errors"
	"net/http"

	userRepo "careplus/database/repository/user"
	"careplus/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the minimal account endpoints used by the intake flow.
type UserHandler struct {
	Svc    user.UserService
	Logger *zap.Logger
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// CreateUserHandler creates an account, returning the existing one when the
// email is already registered.
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var input user.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Svc.CreateUser(input)
	if err != nil {
		h.Logger.Error("User creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetUserHandler retrieves a user by ID.
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	account, err := h.Svc.GetUser(c.Param("id"))
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.Logger.Error("Failed to fetch user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, account)
}
