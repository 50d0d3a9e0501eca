package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	taskrepo "dayplan-backend/internal/task/repository"
	"dayplan-backend/pkg/ai"
)

// AssistantUsecase defines the interface for the productivity chat
type AssistantUsecase interface {
	// Chat answers one free-text message with the user's task snapshot
	// as read-only context. Purely request/response: the transcript is
	// the caller's concern.
	Chat(ctx context.Context, userID, message string) (string, error)
}

// assistantUsecase implements AssistantUsecase
type assistantUsecase struct {
	taskRepo  taskrepo.TaskRepository
	aiService ai.AssistantService
}

// NewAssistantUsecase creates a new instance of assistantUsecase
func NewAssistantUsecase(taskRepo taskrepo.TaskRepository, aiService ai.AssistantService) AssistantUsecase {
	return &assistantUsecase{
		taskRepo:  taskRepo,
		aiService: aiService,
	}
}

func (u *assistantUsecase) Chat(ctx context.Context, userID, message string) (string, error) {
	if u.aiService == nil {
		return "", errors.New("AI service not configured")
	}
	if message == "" {
		return "", errors.New("message is required")
	}

	tasks, err := u.taskRepo.FindByUserID(userID)
	if err != nil {
		return "", err
	}

	snapshot := make([]ai.ChatTask, 0, len(tasks))
	for _, t := range tasks {
		ct := ai.ChatTask{
			ID:       t.ID,
			Name:     t.Name,
			Priority: string(t.Priority),
			Status:   string(t.Status),
		}
		if t.Deadline != nil {
			ct.Deadline = t.Deadline.Format(time.RFC3339)
		}
		snapshot = append(snapshot, ct)
	}

	log.Printf("[AssistantUsecase] Chat request with %d tasks in context", len(snapshot))
	return u.aiService.Chat(ctx, message, snapshot)
}
