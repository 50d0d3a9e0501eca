package domain

import "time"

// Appointment is a fixed-time calendar entry. Entries with IsTask set
// are views derived from a task's deadline and duration and are never
// stored; they are recomputed on every compose. IsSuggestion marks
// blocks proposed by the AI time-blocking collaborator.
type Appointment struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"index;not null"`
	Name         string    `json:"name" gorm:"not null"`
	StartTime    time.Time `json:"start_time" gorm:"not null"`
	EndTime      time.Time `json:"end_time" gorm:"not null"`
	IsTask       bool      `json:"is_task,omitempty" gorm:"-"`
	IsSuggestion bool      `json:"is_suggestion,omitempty" gorm:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TimeBlock is a slot proposed by the AI time-blocking collaborator,
// times in ISO-8601 as returned on the wire.
type TimeBlock struct {
	TaskName  string `json:"task_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
