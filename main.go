package main

import (
	"log"

	api "dayplan-backend/cmd/api"
	authdomain "dayplan-backend/internal/auth/domain"
	authRepo "dayplan-backend/internal/auth/repository"
	authUsecase "dayplan-backend/internal/auth/usecase"
	scheduledomain "dayplan-backend/internal/schedule/domain"
	scheduleRepo "dayplan-backend/internal/schedule/repository"
	taskdomain "dayplan-backend/internal/task/domain"
	taskRepo "dayplan-backend/internal/task/repository"
	"dayplan-backend/pkg/config"
	"dayplan-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &taskdomain.Task{}, &scheduledomain.Appointment{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)
	appointmentRepository := scheduleRepo.NewGormAppointmentRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, taskRepository, appointmentRepository, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
