package ai

import "context"

// TaskInfo is the task snapshot sent to the prioritization collaborator.
type TaskInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Deadline    string `json:"deadline,omitempty"` // ISO-8601
	Importance  string `json:"importance"`         // high/medium/low
}

// RankedTask is one prioritization result. Ranks are 1-based, advisory,
// and not guaranteed contiguous or unique.
type RankedTask struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	Reason   string `json:"reason"`
}

// BlockTask is a task handed to the time-blocking collaborator.
type BlockTask struct {
	Name     string `json:"name"`
	Duration *int   `json:"duration,omitempty"` // minutes
	Deadline string `json:"deadline,omitempty"` // ISO-8601
	Priority string `json:"priority,omitempty"`
}

// BlockSpan is an existing occupied interval the collaborator must
// schedule around.
type BlockSpan struct {
	StartTime string `json:"start_time"` // ISO-8601
	EndTime   string `json:"end_time"`
}

// TimeBlockRequest carries everything the time-blocking collaborator
// needs: tasks, occupied intervals, and the working-hours window.
type TimeBlockRequest struct {
	Tasks                []BlockTask `json:"tasks"`
	ExistingAppointments []BlockSpan `json:"existing_appointments"`
	WorkingHoursStart    string      `json:"working_hours_start"` // HH:mm
	WorkingHoursEnd      string      `json:"working_hours_end"`   // HH:mm
}

// SuggestedBlock is one proposed placement, times in ISO-8601.
type SuggestedBlock struct {
	TaskName  string `json:"task_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ChatTask is the read-only task snapshot attached to assistant chat.
type ChatTask struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
	Deadline string `json:"deadline,omitempty"`
}

// AssistantService is the interface for the AI planning collaborators.
// Implement this interface to add new providers (Gemini, Ollama, etc.)
type AssistantService interface {
	PrioritizeTasks(ctx context.Context, tasks []TaskInfo) ([]RankedTask, error)
	SuggestTimeBlocks(ctx context.Context, req TimeBlockRequest) ([]SuggestedBlock, error)
	Chat(ctx context.Context, message string, tasks []ChatTask) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
