package domain

import "time"

// Priority represents task importance level
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

// Task represents a unit of work created by the user.
// Order inside a user's collection is positional (Position column); the
// planner packages treat a loaded slice as the authoritative order.
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"index;not null"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description,omitempty"`
	Duration    *int       `json:"duration,omitempty"` // minutes; nil means unspecified
	Deadline    *time.Time `json:"deadline,omitempty"`
	Priority    Priority   `json:"priority" gorm:"default:medium"`
	Status      TaskStatus `json:"status" gorm:"default:todo"`
	Position    int        `json:"position" gorm:"index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// RankedTask is one entry of an AI priority suggestion, rank 1 being the
// highest. The join key back to tasks is the name, which is all the
// prioritization collaborator returns.
type RankedTask struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	Reason   string `json:"reason,omitempty"`
}

// ParsePriority maps a free-form string to a Priority, defaulting to medium.
func ParsePriority(p string) Priority {
	switch p {
	case "high":
		return PriorityHigh
	case "low":
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// DurationOrDefault returns the task duration in minutes, or def when unset.
func (t *Task) DurationOrDefault(def int) int {
	if t.Duration != nil && *t.Duration > 0 {
		return *t.Duration
	}
	return def
}
