package usecases

import (
	"context"

	"cybershield.backend/internal/domain/entities"
	"cybershield.backend/internal/domain/repositories"
)

// AdminUsecase handles administrative read and delete operations
type AdminUsecase struct {
	userRepo   repositories.UserRepository
	reportRepo repositories.ScanReportRepository
	uow        repositories.UnitOfWork
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	userRepo repositories.UserRepository,
	reportRepo repositories.ScanReportRepository,
	uow repositories.UnitOfWork,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:   userRepo,
		reportRepo: reportRepo,
		uow:        uow,
	}
}

// ListUsers returns every user, without pagination
func (u *AdminUsecase) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return u.userRepo.List(ctx)
}

// ListReports returns every scan report
func (u *AdminUsecase) ListReports(ctx context.Context) ([]*entities.ScanReport, error) {
	return u.reportRepo.List(ctx)
}

// ListReportsByUser returns one user's reports; an empty slice when none
func (u *AdminUsecase) ListReportsByUser(ctx context.Context, userID uint) ([]*entities.ScanReport, error) {
	return u.reportRepo.ListByUser(ctx, userID)
}

// DeleteUser removes a user and all owned reports. Both deletes run inside
// one transaction so a crash cannot leave orphaned report rows.
func (u *AdminUsecase) DeleteUser(ctx context.Context, userID uint) error {
	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.reportRepo.DeleteByUser(txCtx, userID); err != nil {
			return err
		}
		return u.userRepo.Delete(txCtx, userID)
	})
}
