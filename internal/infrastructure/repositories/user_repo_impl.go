package repositories

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"cybershield.backend/internal/domain/entities"
	domainerrors "cybershield.backend/internal/domain/errors"
	"cybershield.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user row and backfills the generated ID and timestamp
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := toUserModel(user)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// List returns every user, newest first
func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	var userModels []models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("created_at DESC").Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, toUserEntity(&userModels[i]))
	}
	return users, nil
}

// Delete removes a user row permanently
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toUserModel(u *entities.User) *models.User {
	return &models.User{
		ID:             u.ID,
		Email:          u.Email,
		Scope:          string(u.Scope),
		FirstName:      u.FirstName.Ptr(),
		LastName:       u.LastName.Ptr(),
		Mobile:         u.Mobile.Ptr(),
		CompanyName:    u.CompanyName.Ptr(),
		CompanyWebsite: u.CompanyWebsite.Ptr(),
		Phone:          u.Phone.Ptr(),
		CreatedAt:      u.CreatedAt,
	}
}

func toUserEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:             m.ID,
		Email:          m.Email,
		Scope:          entities.UserScope(m.Scope),
		FirstName:      null.StringFromPtr(m.FirstName),
		LastName:       null.StringFromPtr(m.LastName),
		Mobile:         null.StringFromPtr(m.Mobile),
		CompanyName:    null.StringFromPtr(m.CompanyName),
		CompanyWebsite: null.StringFromPtr(m.CompanyWebsite),
		Phone:          null.StringFromPtr(m.Phone),
		CreatedAt:      m.CreatedAt,
	}
}
