package main

import (
	"log"
	"net/http"
	"os"

	"github.com/arnavshah/care-scheduler-go/pkg/auth"
	"github.com/arnavshah/care-scheduler-go/pkg/database"
	"github.com/arnavshah/care-scheduler-go/pkg/handlers"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	h := handlers.NewHandler(db)

	r := gin.Default()

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Caregiver Scheduler API",
			"version": "1.0.0",
		})
	})

	r.POST("/admin/login", h.Login)

	// Admin Endpoints
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	// Scheduler Endpoints
	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/caregivers", h.CreateCaregiver)
		api.GET("/caregivers", h.ListCaregivers)
		api.GET("/caregivers/:id", h.GetCaregiver)
		api.DELETE("/caregivers/:id", h.DeleteCaregiver)
		api.PUT("/caregivers/:id/availability", h.SetAvailability)

		api.POST("/schedule", h.ScheduleJSON)
		api.POST("/schedule/generate", h.GenerateSchedule)
		api.GET("/schedule/:year/:month", h.GetSchedule)
		api.GET("/schedule/:year/:month/html", h.ScheduleHTML)

		api.GET("/payroll", h.PayrollReport)
		api.GET("/payroll/html", h.PayrollHTML)

		api.POST("/validate", h.ValidateInput)
		api.GET("/usage", h.GetMyUsage)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
