package usecase

import (
	"context"
	"time"

	"dayplan-backend/internal/task/domain"
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// CreateTask creates a new task at the end of the user's collection
	CreateTask(userID string, req CreateTaskRequest) (*domain.Task, error)

	// GetTaskByID retrieves a task by ID (with ownership check)
	GetTaskByID(userID, taskID string) (*domain.Task, error)

	// GetUserTasks returns the user's full ordered collection
	GetUserTasks(userID string) ([]domain.Task, error)

	// GetTasksForDay returns the tasks whose deadline falls on date,
	// in collection order
	GetTasksForDay(userID string, date time.Time) ([]domain.Task, error)

	// GetTodayTasks returns the active-day partition for the current
	// day (undated tasks included)
	GetTodayTasks(userID string) ([]domain.Task, error)

	// UpdateTask updates an existing task
	UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)

	// DeleteTask deletes a task
	DeleteTask(userID, taskID string) error

	// Reorder applies a drag move (source index relocated to target
	// index within the day partition) and persists the new order
	Reorder(userID string, day time.Time, sourceIndex, targetIndex int) ([]domain.Task, error)

	// PrioritizeToday asks the AI collaborator to rank today's todo
	// tasks, applies the suggested order and persists it. Returns the
	// suggestions and the reordered collection.
	PrioritizeToday(ctx context.Context, userID string) ([]domain.RankedTask, []domain.Task, error)
}

// CreateTaskRequest carries the user-facing form fields for a new task
type CreateTaskRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Duration    *int    `json:"duration"`
	Deadline    *string `json:"deadline"` // RFC3339; defaults to now when absent
	Priority    string  `json:"priority"`
}

// TaskUpdateRequest represents the fields that can be updated
type TaskUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Duration    *int    `json:"duration,omitempty"`
	Deadline    *string `json:"deadline,omitempty"` // empty string clears
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
}
