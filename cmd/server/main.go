package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"surgery-schedule-backend/internal/config"
	"surgery-schedule-backend/internal/database"
	"surgery-schedule-backend/internal/handler"
	"surgery-schedule-backend/internal/middleware"
	"surgery-schedule-backend/internal/repository"
	"surgery-schedule-backend/internal/service"
	"surgery-schedule-backend/internal/store"
	"surgery-schedule-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize database connections
	db := database.Connect(cfg)

	// The room assignment mapping is a local annotation layer; a broken
	// local database falls back to an in-memory mapping instead of failing
	// startup.
	var assignmentRepo repository.AssignmentRepository
	localDB, err := database.ConnectLocal(cfg.Assignment.Path)
	if err != nil {
		log.Printf("Warning: local assignment database unavailable, using in-memory mapping: %v", err)
		assignmentRepo = repository.NewMemoryAssignmentRepo()
	} else {
		assignmentRepo = repository.NewGormAssignmentRepo(localDB)
	}

	// 3. Initialize repositories and the reactive case store
	surgeryRepo := repository.NewSurgeryRepo(db)
	professorDayRepo := repository.NewProfessorDayRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	surgeryStore := store.NewSurgeryStore(surgeryRepo)

	// 4. Initialize services
	surgeryService := service.NewSurgeryService(surgeryStore, auditRepo)
	assignmentService := service.NewAssignmentService(assignmentRepo, auditRepo)
	professorDayService := service.NewProfessorDayService(professorDayRepo)
	importService := service.NewImportService(surgeryStore, auditRepo)
	cleanupWorker := service.NewCleanupWorker(surgeryStore, assignmentService)

	// 5. Start background cleanup worker
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cleanupWorker.Start(ctx)

	// 6. Setup Gin
	gin.SetMode(cfg.Server.GinMode)
	r := gin.Default()
	r.Use(middleware.CORS(cfg))

	// 7. Register handlers
	surgeryHandler := handler.NewSurgeryHandler(surgeryService)
	calendarHandler := handler.NewCalendarHandler(surgeryService, assignmentService, professorDayService)
	assignmentHandler := handler.NewAssignmentHandler(assignmentService)
	importHandler := handler.NewImportHandler(importService)
	professorDayHandler := handler.NewProfessorDayHandler(professorDayService)

	// 8. Define routes
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "surgery-schedule-backend",
		})
	})

	surgeries := r.Group("/surgeries")
	{
		surgeries.GET("", surgeryHandler.ListSurgeries)
		surgeries.POST("", surgeryHandler.CreateSurgery)
		surgeries.PATCH("/:id", surgeryHandler.UpdateSurgery)
		surgeries.DELETE("/:id", surgeryHandler.DeleteSurgery)
		surgeries.GET("/options", surgeryHandler.GetFilterOptions)
		surgeries.GET("/export", surgeryHandler.ExportCSV)
		surgeries.GET("/stream", surgeryHandler.StreamSurgeries)
	}

	calendar := r.Group("/calendar")
	{
		calendar.GET("/:year/:month", calendarHandler.GetMonth)
	}

	days := r.Group("/days")
	{
		days.GET("/:date", calendarHandler.GetDay)
		days.GET("/:date/rooms", calendarHandler.GetDayRooms)
		days.GET("/:date/share", calendarHandler.GetDayShareText)
	}

	assignments := r.Group("/assignments")
	{
		assignments.POST("/toggle", assignmentHandler.ToggleAssignment)
		assignments.DELETE("/:id", assignmentHandler.UnassignSurgery)
	}

	r.POST("/import", importHandler.ImportWorkbook)

	professorDays := r.Group("/professor-days")
	{
		professorDays.GET("", professorDayHandler.GetProfessorDays)
		professorDays.PUT("/:date", professorDayHandler.SetProfessorDay)
	}

	// 9. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel background worker context
	cancel()
	log.Println("Server exited")
}
