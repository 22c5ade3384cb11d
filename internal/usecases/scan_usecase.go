package usecases

import (
	"context"

	"cybershield.backend/internal/domain/entities"
	"cybershield.backend/internal/domain/repositories"
)

// ScanUsecase runs classification stubs and persists their results
type ScanUsecase struct {
	userRepo   repositories.UserRepository
	reportRepo repositories.ScanReportRepository
}

// NewScanUsecase creates a new scan usecase
func NewScanUsecase(
	userRepo repositories.UserRepository,
	reportRepo repositories.ScanReportRepository,
) *ScanUsecase {
	return &ScanUsecase{
		userRepo:   userRepo,
		reportRepo: reportRepo,
	}
}

// ScanURL classifies a URL and persists the report
func (u *ScanUsecase) ScanURL(ctx context.Context, input *entities.ScanURLInput) (*entities.ScanReport, error) {
	return u.record(ctx, input.UserID, entities.ScanTypeURL, input.URL, ClassifyURL(input.URL))
}

// ScanFile classifies an uploaded file by filename and persists the report.
// The attachment contents never participate in classification.
func (u *ScanUsecase) ScanFile(ctx context.Context, userID uint, filename string) (*entities.ScanReport, error) {
	return u.record(ctx, userID, entities.ScanTypeFile, filename, ClassifyFilename(filename))
}

// RunAIQuery answers a free-text security question and persists the report.
// The stored target is the query truncated to its first 100 characters.
func (u *ScanUsecase) RunAIQuery(ctx context.Context, input *entities.AIQueryInput) (*entities.ScanReport, error) {
	target, result := AnswerAIQuery(input.Query)
	return u.record(ctx, input.UserID, entities.ScanTypeAI, target, result)
}

// CheckEmail runs the breach lookup stub and persists the report
func (u *ScanUsecase) CheckEmail(ctx context.Context, input *entities.CheckEmailInput) (*entities.ScanReport, error) {
	return u.record(ctx, input.UserID, entities.ScanTypeEmail, input.Email, ClassifyEmail(input.Email))
}

// record validates the owning user, then writes exactly one report row.
// Every scan path validates the user, including AI queries.
func (u *ScanUsecase) record(ctx context.Context, userID uint, scanType entities.ScanType, target string, result Classification) (*entities.ScanReport, error) {
	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	report := &entities.ScanReport{
		UserID:         userID,
		ScanType:       scanType,
		Target:         target,
		Status:         result.Status,
		OverallSummary: result.Summary,
		Details:        result.Details,
	}
	if err := u.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}
