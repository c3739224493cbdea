package handler

import (
	"net/http"

	"github.com/arnavshah/care-scheduler-go/pkg/auth"
	"github.com/arnavshah/care-scheduler-go/pkg/database"
	"github.com/arnavshah/care-scheduler-go/pkg/handlers"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	h := handlers.NewHandler(db)

	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Caregiver Scheduler API (Vercel)",
			"version": "1.0.0",
		})
	})

	r.POST("/admin/login", h.Login)

	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

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
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
