package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
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
	);`)
}

func createScanReportTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE scan_reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		scan_type TEXT NOT NULL,
		target TEXT NOT NULL,
		status TEXT NOT NULL,
		overall_summary TEXT NOT NULL,
		details TEXT,
		created_at DATETIME
	);`)
}
