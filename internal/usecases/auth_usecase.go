package usecases

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"

	"cybershield.backend/internal/domain/entities"
	domainerrors "cybershield.backend/internal/domain/errors"
	"cybershield.backend/internal/domain/repositories"
)

// AuthUsecase handles registration and login
type AuthUsecase struct {
	userRepo repositories.UserRepository
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo}
}

// Register creates a new user. Only the field group matching the requested
// scope is persisted; the other group is left empty.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	scope := entities.UserScope(input.Scope)
	if !scope.Valid() {
		return nil, domainerrors.ErrInvalidScope
	}

	// Check if email already exists
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	user := &entities.User{
		Email: input.Email,
		Scope: scope,
	}
	switch scope {
	case entities.ScopeIndividual:
		user.FirstName = optionalString(input.FirstName)
		user.LastName = optionalString(input.LastName)
		user.Mobile = optionalString(input.Mobile)
	case entities.ScopeEnterprise:
		user.CompanyName = optionalString(input.CompanyName)
		user.CompanyWebsite = optionalString(input.CompanyWebsite)
		user.Phone = optionalString(input.Phone)
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login looks up a user by email. No credential beyond existence is checked;
// this is a deliberate simplification, not an authentication boundary.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.User, error) {
	return u.userRepo.GetByEmail(ctx, input.Email)
}

func optionalString(v string) null.String {
	return null.NewString(v, v != "")
}
