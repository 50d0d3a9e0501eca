package usecase

import (
	"context"
	"time"

	"dayplan-backend/internal/schedule/domain"
	"dayplan-backend/internal/schedule/timeline"
)

// ScheduleUsecase defines the interface for calendar business logic
type ScheduleUsecase interface {
	// CreateAppointment stores a new fixed appointment
	CreateAppointment(userID string, req CreateAppointmentRequest) (*domain.Appointment, error)

	// GetAppointments returns the user's fixed appointments ordered by
	// start time
	GetAppointments(userID string) ([]domain.Appointment, error)

	// DeleteAppointment deletes an appointment (with ownership check)
	DeleteAppointment(userID, appointmentID string) error

	// ComposeDay merges fixed appointments and task-derived blocks into
	// the positioned timeline for the selected day
	ComposeDay(userID string, day time.Time) ([]timeline.Item, timeline.Window, error)

	// SuggestTimeBlocks asks the AI collaborator for calendar
	// placements of the user's todo tasks around existing
	// appointments. The result is ephemeral: suggestion appointments
	// are returned, never stored.
	SuggestTimeBlocks(ctx context.Context, userID string) ([]domain.Appointment, error)
}

// CreateAppointmentRequest carries the form fields for a new appointment
type CreateAppointmentRequest struct {
	Name      string `json:"name" binding:"required"`
	StartTime string `json:"start_time" binding:"required"` // RFC3339
	EndTime   string `json:"end_time" binding:"required"`   // RFC3339
}
