package main

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cybershield.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler        *handlers.AuthHandler
	scanHandler        *handlers.ScanHandler
	adminHandler       *handlers.AdminHandler
	adminKeyMiddleware gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	// Auth routes (public)
	r.POST("/register", d.authHandler.Register)
	r.POST("/login", d.authHandler.Login)

	// Scan routes
	r.POST("/scan", d.scanHandler.ScanURL)
	r.POST("/scan-file", d.scanHandler.ScanFile)
	r.POST("/ai-query", d.scanHandler.RunAIQuery)
	r.POST("/check-email", d.scanHandler.CheckEmail)

	// Admin routes (shared-secret gated)
	admin := r.Group("/admin")
	admin.Use(d.adminKeyMiddleware)
	{
		admin.GET("/users", d.adminHandler.ListUsers)
		admin.GET("/reports", d.adminHandler.ListReports)
		admin.GET("/reports/user/:id", d.adminHandler.ListReportsByUser)
		admin.DELETE("/user/:id", d.adminHandler.DeleteUser)
	}
}

func registerStatusRoutes(r *gin.Engine) {
	status := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "CyberShield API is running and ready to serve data.",
			"service": "cybershield-backend",
		})
	}
	r.GET("/", status)
	r.GET("/api/status", status)
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerStaticRoutes serves the front-end bundle for any GET request no
// API route claimed. Missing files fall back to index.html so client-side
// routing keeps working. Skipped entirely when the directory does not exist.
func registerStaticRoutes(r *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return
	}

	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
			return
		}

		path := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	})
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
