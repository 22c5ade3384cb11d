package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cybershield.backend/internal/infrastructure/repositories"
	"cybershield.backend/internal/interfaces/http/middleware"
	"cybershield.backend/internal/usecases"
)

const testAdminKey = "test-admin-key"

// newTestRouter wires the full handler stack over an in-memory database so
// tests exercise the same path a live request takes.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	for _, ddl := range []string{
		`CREATE TABLE users (
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
		);`,
		`CREATE TABLE scan_reports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			scan_type TEXT NOT NULL,
			target TEXT NOT NULL,
			status TEXT NOT NULL,
			overall_summary TEXT NOT NULL,
			details TEXT,
			created_at DATETIME
		);`,
	} {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("create table: %v", err)
		}
	}

	userRepo := repositories.NewUserRepository(db)
	reportRepo := repositories.NewScanReportRepository(db)
	uow := repositories.NewUnitOfWork(db)

	authHandler := NewAuthHandler(usecases.NewAuthUsecase(userRepo))
	scanHandler := NewScanHandler(usecases.NewScanUsecase(userRepo, reportRepo))
	adminHandler := NewAdminHandler(usecases.NewAdminUsecase(userRepo, reportRepo, uow))

	r := gin.New()
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/scan", scanHandler.ScanURL)
	r.POST("/scan-file", scanHandler.ScanFile)
	r.POST("/ai-query", scanHandler.RunAIQuery)
	r.POST("/check-email", scanHandler.CheckEmail)

	admin := r.Group("/admin", middleware.AdminKeyMiddleware(testAdminKey))
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/reports", adminHandler.ListReports)
	admin.GET("/reports/user/:id", adminHandler.ListReportsByUser)
	admin.DELETE("/user/:id", adminHandler.DeleteUser)

	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return out
}

// registerUser creates a user through the public endpoint and returns its id.
func registerUser(t *testing.T, r *gin.Engine, email string) uint {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"scope":"individual","first_name":"Test","last_name":"User"}`, email)
	w := doJSON(r, http.MethodPost, "/register", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	user, ok := decodeBody(t, w)["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("register: missing user document, body=%s", w.Body.String())
	}
	return uint(user["id"].(float64))
}
