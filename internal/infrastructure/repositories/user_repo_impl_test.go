package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"cybershield.backend/internal/domain/entities"
	domainerrors "cybershield.backend/internal/domain/errors"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{
		Email:     "alice@cybershield.io",
		Scope:     entities.ScopeIndividual,
		FirstName: null.StringFrom("Alice"),
		LastName:  null.StringFrom("Smith"),
	}
	require.NoError(t, repo.Create(ctx, u))
	require.NotZero(t, u.ID, "generated ID backfilled")

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)
	require.Equal(t, entities.ScopeIndividual, byID.Scope)
	require.Equal(t, "Alice", byID.FirstName.String)
	require.False(t, byID.CompanyName.Valid, "enterprise group left empty")

	byEmail, err := repo.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
}

func TestUserRepository_DuplicateEmailRejectedByIndex(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &entities.User{Email: "dup@cybershield.io", Scope: entities.ScopeIndividual}
	require.NoError(t, repo.Create(ctx, first))

	second := &entities.User{Email: "dup@cybershield.io", Scope: entities.ScopeEnterprise}
	require.Error(t, repo.Create(ctx, second))
}

func TestUserRepository_ListAndDelete(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	a := &entities.User{Email: "a@cybershield.io", Scope: entities.ScopeIndividual}
	b := &entities.User{Email: "b@cybershield.io", Scope: entities.ScopeEnterprise, CompanyName: null.StringFrom("ACME")}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NoError(t, repo.Delete(ctx, a.ID))
	_, err = repo.GetByID(ctx, a.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 12345)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "missing@cybershield.io")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, 12345), domainerrors.ErrNotFound)
}
