package usecases

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cybershield.backend/internal/infrastructure/repositories"
)

type testStack struct {
	db         *gorm.DB
	userRepo   *repositories.UserRepository
	reportRepo *repositories.ScanReportRepository
	auth       *AuthUsecase
	scan       *ScanUsecase
	admin      *AdminUsecase
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")

	require.NoError(t, db.Exec(`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		scope TEXT NOT NULL,
		first_name TEXT,
		last_name TEXT,
		mobile TEXT,
		company_name TEXT,
		company_website TEXT,
		phone TEXT,
		created_at DATETIME
	);`).Error)
	require.NoError(t, db.Exec(`CREATE TABLE scan_reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		scan_type TEXT NOT NULL,
		target TEXT NOT NULL,
		status TEXT NOT NULL,
		overall_summary TEXT NOT NULL,
		details TEXT,
		created_at DATETIME
	);`).Error)

	userRepo := repositories.NewUserRepository(db)
	reportRepo := repositories.NewScanReportRepository(db)
	uow := repositories.NewUnitOfWork(db)

	return &testStack{
		db:         db,
		userRepo:   userRepo,
		reportRepo: reportRepo,
		auth:       NewAuthUsecase(userRepo),
		scan:       NewScanUsecase(userRepo, reportRepo),
		admin:      NewAdminUsecase(userRepo, reportRepo, uow),
	}
}
