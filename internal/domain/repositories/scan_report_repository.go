package repositories

import (
	"context"

	"cybershield.backend/internal/domain/entities"
)

// ScanReportRepository defines scan report data operations
type ScanReportRepository interface {
	Create(ctx context.Context, report *entities.ScanReport) error
	List(ctx context.Context) ([]*entities.ScanReport, error)
	ListByUser(ctx context.Context, userID uint) ([]*entities.ScanReport, error)
	DeleteByUser(ctx context.Context, userID uint) error
}
