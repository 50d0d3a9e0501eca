package repository

import "dayplan-backend/internal/schedule/domain"

// AppointmentRepository defines the interface for appointment data access
type AppointmentRepository interface {
	// Create creates a new fixed appointment
	Create(appt *domain.Appointment) error

	// FindByID finds an appointment by its ID
	FindByID(id string) (*domain.Appointment, error)

	// FindByUserID returns the user's appointments ordered by start time
	FindByUserID(userID string) ([]domain.Appointment, error)

	// Delete deletes an appointment by ID
	Delete(id string) error
}
