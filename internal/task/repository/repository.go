package repository

import "dayplan-backend/internal/task/domain"

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task at the end of the user's collection
	Create(task *domain.Task) error

	// FindByID finds a task by its ID
	FindByID(id string) (*domain.Task, error)

	// FindByUserID returns the user's full ordered task collection
	FindByUserID(userID string) ([]domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// Delete deletes a task by ID
	Delete(id string) error

	// ReplaceAll atomically replaces the user's ordered collection
	// with the given snapshot; slice index becomes position
	ReplaceAll(userID string, tasks []domain.Task) error
}
