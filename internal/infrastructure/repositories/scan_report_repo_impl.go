package repositories

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"cybershield.backend/internal/domain/entities"
	"cybershield.backend/internal/infrastructure/models"
)

// ScanReportRepository implements scan report data operations
type ScanReportRepository struct {
	db *gorm.DB
}

// NewScanReportRepository creates a new scan report repository
func NewScanReportRepository(db *gorm.DB) *ScanReportRepository {
	return &ScanReportRepository{db: db}
}

// Create inserts a new scan report row and backfills the generated ID and
// timestamp
func (r *ScanReportRepository) Create(ctx context.Context, report *entities.ScanReport) error {
	m, err := toReportModel(report)
	if err != nil {
		return err
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	report.ID = m.ID
	report.CreatedAt = m.CreatedAt
	return nil
}

// List returns every scan report, newest first
func (r *ScanReportRepository) List(ctx context.Context) ([]*entities.ScanReport, error) {
	var reportModels []models.ScanReport
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("created_at DESC").Find(&reportModels).Error; err != nil {
		return nil, err
	}
	return toReportEntities(reportModels)
}

// ListByUser returns the reports owned by one user, newest first. A user
// without reports yields an empty slice, not an error.
func (r *ScanReportRepository) ListByUser(ctx context.Context, userID uint) ([]*entities.ScanReport, error) {
	var reportModels []models.ScanReport
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&reportModels).Error; err != nil {
		return nil, err
	}
	return toReportEntities(reportModels)
}

// DeleteByUser removes every report owned by the user. Deleting zero rows is
// not an error; a user may simply have no reports yet.
func (r *ScanReportRepository) DeleteByUser(ctx context.Context, userID uint) error {
	return GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).Delete(&models.ScanReport{}).Error
}

func toReportModel(e *entities.ScanReport) (*models.ScanReport, error) {
	var details datatypes.JSON
	if e.Details != nil {
		raw, err := json.Marshal(e.Details)
		if err != nil {
			return nil, err
		}
		details = datatypes.JSON(raw)
	}
	return &models.ScanReport{
		ID:             e.ID,
		UserID:         e.UserID,
		ScanType:       string(e.ScanType),
		Target:         e.Target,
		Status:         string(e.Status),
		OverallSummary: e.OverallSummary,
		Details:        details,
		CreatedAt:      e.CreatedAt,
	}, nil
}

func toReportEntity(m *models.ScanReport) (*entities.ScanReport, error) {
	var details map[string]interface{}
	if len(m.Details) > 0 {
		if err := json.Unmarshal(m.Details, &details); err != nil {
			return nil, err
		}
	}
	return &entities.ScanReport{
		ID:             m.ID,
		UserID:         m.UserID,
		ScanType:       entities.ScanType(m.ScanType),
		Target:         m.Target,
		Status:         entities.ScanStatus(m.Status),
		OverallSummary: m.OverallSummary,
		Details:        details,
		CreatedAt:      m.CreatedAt,
	}, nil
}

func toReportEntities(reportModels []models.ScanReport) ([]*entities.ScanReport, error) {
	reports := make([]*entities.ScanReport, 0, len(reportModels))
	for i := range reportModels {
		report, err := toReportEntity(&reportModels[i])
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
