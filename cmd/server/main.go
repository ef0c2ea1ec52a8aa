package main

import (
	"log"
	"time"

	"duartecontrol/config"
	"duartecontrol/db"
	"duartecontrol/handlers"
	"duartecontrol/middleware"
	"duartecontrol/models"
	"duartecontrol/services"
	"duartecontrol/services/jobs"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the bootstrap admin when the users table is empty
	if err := services.EnsureAdminUser(db.DB, cfg); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	// Initialize document storage (R2 or local fallback)
	services.InitializeStorage(cfg)

	// Wire handler services against the record store
	store := services.NewRecordStore(db.DB, cfg.SyncLatency)
	handlers.Init(store, services.NewInsightService(cfg.GeminiAPIKey, cfg.GeminiModel))

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Public routes (no authentication required)
	e.POST("/api/login", handlers.LoginHandler)

	// Protected routes
	api := e.Group("/api")
	api.Use(middleware.RequireAuth())
	{
		api.POST("/logout", handlers.LogoutHandler)
		api.GET("/me", handlers.GetCurrentUserHandler)

		// Cases
		api.GET("/cases", handlers.GetCasesHandler)
		api.POST("/cases", handlers.CreateCaseHandler)
		api.GET("/cases/groups", handlers.GetCaseGroupsHandler)
		api.GET("/cases/:id", handlers.GetCaseHandler)
		api.PUT("/cases/:id", handlers.UpdateCaseHandler)
		api.POST("/cases/:id/document", handlers.UploadCaseDocumentHandler)
		api.GET("/cases/:id/document", handlers.DownloadCaseDocumentHandler)
		api.DELETE("/cases/:id/document", handlers.DeleteCaseDocumentHandler)
		api.GET("/cases/:id/insight", handlers.GetCaseInsightHandler)
		api.GET("/cases/:id/sheet", handlers.GetCaseSheetHandler)

		// Lawyers
		api.GET("/lawyers", handlers.GetLawyersHandler)
		api.POST("/lawyers", handlers.CreateLawyerHandler)
		api.PUT("/lawyers/:id", handlers.UpdateLawyerHandler)
		api.DELETE("/lawyers/:id", handlers.DeleteLawyerHandler)

		// Deadlines
		api.GET("/deadlines", handlers.GetDeadlinesHandler)
		api.POST("/deadlines", handlers.CreateDeadlineHandler)
		api.POST("/deadlines/:id/toggle", handlers.ToggleDeadlineHandler)

		// Reports
		api.GET("/reports/cases.csv", handlers.ExportCasesCSVHandler)
		api.GET("/reports/agenda.xlsx", handlers.ExportAgendaXLSXHandler)

		// Admin-only routes (destructive operations)
		adminRoutes := api.Group("")
		adminRoutes.Use(middleware.RequireRole(models.RoleAdmin))
		{
			adminRoutes.DELETE("/cases/:id", handlers.DeleteCaseHandler)
			adminRoutes.PUT("/deadlines/:id", handlers.UpdateDeadlineHandler)
			adminRoutes.DELETE("/deadlines/:id", handlers.DeleteDeadlineHandler)
		}
	}

	// Session cleanup (runs every hour)
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := services.CleanupExpiredSessions(db.DB); err != nil {
				log.Printf("Error cleaning up expired sessions: %v", err)
			}
		}
	}()

	// Deadline reminder digest (runs once a day)
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			jobs.SendDeadlineReminders(handlers.Deadlines, cfg)
		}
	}()

	// Start server
	log.Printf("Starting server on port %s (environment: %s)", cfg.ServerPort, cfg.Environment)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
