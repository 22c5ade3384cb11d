package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cybershield.backend/internal/domain/entities"
	domainerrors "cybershield.backend/internal/domain/errors"
	"cybershield.backend/internal/interfaces/http/response"
	"cybershield.backend/internal/usecases"
)

// AuthHandler handles registration and login endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register handles user registration
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(domainerrors.CodeValidation, err.Error()))
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrAlreadyExists):
			response.Error(c, domainerrors.BadRequest(domainerrors.CodeDuplicateEmail, "Email already registered"))
		case errors.Is(err, domainerrors.ErrInvalidScope):
			response.Error(c, domainerrors.BadRequest(domainerrors.CodeValidation, "Scope must be 'individual' or 'enterprise'"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user":    user.Projection(),
	})
}

// Login handles login by email lookup
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(domainerrors.CodeValidation, err.Error()))
		return
	}

	user, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound(domainerrors.CodeUserNotFound, "User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user.Projection(),
	})
}
