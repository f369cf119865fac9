package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hr-dashboard/internal/middleware"
)

// Handlers groups every HTTP handler of the service
type Handlers struct {
	Auth      *AuthHandler
	Workers   *WorkerHandler
	Projects  *ProjectHandler
	Dashboard *DashboardHandler
}

// RegisterRoutes mounts the health check and the /api tree on r.
// The session middleware must already be installed.
func RegisterRoutes(r *gin.Engine, h Handlers, now func() time.Time) {
	requireAuth := middleware.RequireAuth(now)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "HR Dashboard API is running",
		})
	})

	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/me", requireAuth, h.Auth.GetCurrentUser)
		}

		// Worker routes (protected)
		workers := api.Group("/trabajadores")
		workers.Use(requireAuth)
		{
			workers.GET("", h.Workers.ListWorkers)
			workers.POST("", h.Workers.CreateWorker)
			workers.GET("/:id", h.Workers.GetWorker)
			workers.PUT("/:id", h.Workers.UpdateWorker)
			workers.PATCH("/:id/estado", h.Workers.ToggleStatus)
			workers.GET("/:id/proyectos", h.Workers.ListProjects)
			workers.GET("/:id/asignacion", h.Workers.AssignmentOptions)
			workers.POST("/:id/asignacion", h.Workers.AssignProject)
		}

		// Project routes (protected)
		projects := api.Group("/proyectos")
		projects.Use(requireAuth)
		{
			projects.GET("", h.Projects.ListProjects)
			projects.POST("", h.Projects.CreateProject)
			projects.GET("/trabajador/:workerId", h.Projects.ListByWorker)
			projects.GET("/estado/:estado", h.Projects.ListByStatus)
			projects.GET("/:id", h.Projects.GetProject)
			projects.PUT("/:id", h.Projects.UpdateProject)
			projects.PATCH("/:id/estado-proyecto", h.Projects.UpdateStatus)
			projects.PATCH("/:id/estado", h.Projects.ToggleStatus)
			projects.PUT("/:id/trabajadores", h.Projects.SetMembers)
			projects.POST("/:id/trabajadores/:workerId", h.Projects.ToggleMember)
		}

		// Dashboard routes (protected)
		dashboard := api.Group("/dashboard")
		dashboard.Use(requireAuth)
		{
			dashboard.GET("/estadisticas", h.Dashboard.GetStatistics)
		}
	}
}
