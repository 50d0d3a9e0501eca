package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	assistantDelivery "dayplan-backend/internal/assistant/delivery"
	authDelivery "dayplan-backend/internal/auth/delivery"
	scheduleDelivery "dayplan-backend/internal/schedule/delivery"
	taskDelivery "dayplan-backend/internal/task/delivery"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := authDelivery.NewAuthHandler(h.authUsecase)
	taskHandler := taskDelivery.NewTaskHandler(h.taskUsecase)
	scheduleHandler := scheduleDelivery.NewScheduleHandler(h.scheduleUsecase)
	assistantHandler := assistantDelivery.NewAssistantHandler(h.assistantUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authDelivery.AuthMiddleware(h.authUsecase), authHandler.Me)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(authDelivery.AuthMiddleware(h.authUsecase))
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTaskByID)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
			tasks.POST("/reorder", taskHandler.Reorder)
			tasks.POST("/prioritize", taskHandler.Prioritize)
		}

		// Appointment routes (protected)
		appointments := api.Group("/appointments")
		appointments.Use(authDelivery.AuthMiddleware(h.authUsecase))
		{
			appointments.GET("", scheduleHandler.GetAppointments)
			appointments.POST("", scheduleHandler.CreateAppointment)
			appointments.DELETE("/:id", scheduleHandler.DeleteAppointment)
		}

		// Schedule routes (protected) - composed timeline and AI time blocking
		schedule := api.Group("/schedule")
		schedule.Use(authDelivery.AuthMiddleware(h.authUsecase))
		{
			schedule.GET("/timeline", scheduleHandler.GetTimeline)
			schedule.POST("/timeblocks", scheduleHandler.SuggestTimeBlocks)
		}

		// Assistant routes (protected)
		assistant := api.Group("/assistant")
		assistant.Use(authDelivery.AuthMiddleware(h.authUsecase))
		{
			assistant.POST("/chat", assistantHandler.Chat)
		}

		// Settings routes (public) - Runtime configuration
		settings := api.Group("/settings")
		{
			settings.GET("", GetSettings)
			settings.PUT("", UpdateSettings)
			settings.POST("/ollama/test", TestOllamaConnection)
		}
	}
}
