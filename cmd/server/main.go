package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cybershield.backend/internal/config"
	pgstore "cybershield.backend/internal/infrastructure/datasources/postgres"
	"cybershield.backend/internal/infrastructure/repositories"
	"cybershield.backend/internal/interfaces/http/handlers"
	"cybershield.backend/internal/interfaces/http/middleware"
	"cybershield.backend/internal/usecases"
	"cybershield.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = pgstore.Open
	initSchema = pgstore.InitSchema
	runServer  = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB   = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM. A missing connection string fails
	// fast inside Open, before anything else starts.
	db, err := openDB(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	// Schema creation with bounded retry. Exhaustion is fatal: the process
	// must not serve traffic without a schema.
	if err := initSchema(context.Background(), db, pgstore.DefaultSchemaOptions()); err != nil {
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	reportRepo := repositories.NewScanReportRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo)
	scanUsecase := usecases.NewScanUsecase(userRepo, reportRepo)
	adminUsecase := usecases.NewAdminUsecase(userRepo, reportRepo, uow)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	scanHandler := handlers.NewScanHandler(scanUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerStatusRoutes(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		authHandler:        authHandler,
		scanHandler:        scanHandler,
		adminHandler:       adminHandler,
		adminKeyMiddleware: middleware.AdminKeyMiddleware(cfg.Admin.Key),
	})
	registerStaticRoutes(r, cfg.Static.Dir)

	logger.Info(context.Background(), "CyberShield backend starting",
		zap.String("port", cfg.Server.Port),
	)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
