package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"cybershield.backend/internal/domain/entities"
	domainerrors "cybershield.backend/internal/domain/errors"
)

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	createScanReportTable(t, db)
	uow := NewUnitOfWork(db)
	userRepo := NewUserRepository(db)
	reportRepo := NewScanReportRepository(db)
	ctx := context.Background()

	u := &entities.User{Email: "tx@cybershield.io", Scope: entities.ScopeIndividual}
	require.NoError(t, userRepo.Create(ctx, u))
	require.NoError(t, reportRepo.Create(ctx, &entities.ScanReport{
		UserID: u.ID, ScanType: entities.ScanTypeURL, Target: "http://x", Status: entities.StatusClean, OverallSummary: "CLEAN",
	}))

	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := reportRepo.DeleteByUser(txCtx, u.ID); err != nil {
			return err
		}
		return userRepo.Delete(txCtx, u.ID)
	})
	require.NoError(t, err)

	_, err = userRepo.GetByID(ctx, u.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	reports, err := reportRepo.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, reports)
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	createScanReportTable(t, db)
	uow := NewUnitOfWork(db)
	userRepo := NewUserRepository(db)
	reportRepo := NewScanReportRepository(db)
	ctx := context.Background()

	u := &entities.User{Email: "rollback@cybershield.io", Scope: entities.ScopeIndividual}
	require.NoError(t, userRepo.Create(ctx, u))
	require.NoError(t, reportRepo.Create(ctx, &entities.ScanReport{
		UserID: u.ID, ScanType: entities.ScanTypeURL, Target: "http://x", Status: entities.StatusClean, OverallSummary: "CLEAN",
	}))

	boom := errors.New("boom")
	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := reportRepo.DeleteByUser(txCtx, u.ID); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The report delete inside the failed transaction must not be visible.
	reports, err := reportRepo.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, reports, 1)
}
