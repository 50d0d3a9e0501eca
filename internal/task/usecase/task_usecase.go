package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"dayplan-backend/internal/task/domain"
	"dayplan-backend/internal/task/planner"
	"dayplan-backend/internal/task/repository"
	"dayplan-backend/pkg/ai"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo  repository.TaskRepository
	aiService ai.AssistantService
	now       func() time.Time

	// at most one prioritization request may be in flight per user;
	// keys are user IDs
	prioritizing sync.Map
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository, aiService ai.AssistantService) TaskUsecase {
	return &taskUsecase{
		taskRepo:  taskRepo,
		aiService: aiService,
		now:       time.Now,
	}
}

func (u *taskUsecase) CreateTask(userID string, req CreateTaskRequest) (*domain.Task, error) {
	task := &domain.Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Priority:    domain.ParsePriority(req.Priority),
		Status:      domain.TaskStatusTodo,
	}

	if req.Duration != nil && *req.Duration > 0 {
		task.Duration = req.Duration
	}

	// A task created without a deadline is dated "now" so it lands in
	// today's partition, matching the dashboard create form.
	deadline := u.now()
	if req.Deadline != nil && *req.Deadline != "" {
		t, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			return nil, errors.New("invalid deadline, expected RFC3339")
		}
		deadline = t
	}
	task.Deadline = &deadline

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) GetTaskByID(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errors.New("task not found")
	}
	if task.UserID != userID {
		return nil, errors.New("unauthorized")
	}
	return task, nil
}

func (u *taskUsecase) GetUserTasks(userID string) ([]domain.Task, error) {
	return u.taskRepo.FindByUserID(userID)
}

func (u *taskUsecase) GetTasksForDay(userID string, date time.Time) ([]domain.Task, error) {
	tasks, err := u.taskRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	return planner.TasksOnDate(tasks, date), nil
}

func (u *taskUsecase) GetTodayTasks(userID string) ([]domain.Task, error) {
	tasks, err := u.taskRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	today, _ := planner.Partition(tasks, u.now())
	return today, nil
}

func (u *taskUsecase) UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	if updates.Name != nil {
		task.Name = *updates.Name
	}
	if updates.Description != nil {
		task.Description = *updates.Description
	}
	if updates.Duration != nil {
		if *updates.Duration <= 0 {
			task.Duration = nil
		} else {
			task.Duration = updates.Duration
		}
	}
	if updates.Priority != nil {
		task.Priority = domain.ParsePriority(*updates.Priority)
	}
	if updates.Status != nil {
		task.Status = domain.TaskStatus(*updates.Status)
	}
	if updates.Deadline != nil {
		if *updates.Deadline == "" {
			task.Deadline = nil
		} else {
			t, err := time.Parse(time.RFC3339, *updates.Deadline)
			if err != nil {
				return nil, errors.New("invalid deadline, expected RFC3339")
			}
			task.Deadline = &t
		}
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) error {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return err
	}
	return u.taskRepo.Delete(task.ID)
}

func (u *taskUsecase) Reorder(userID string, day time.Time, sourceIndex, targetIndex int) ([]domain.Task, error) {
	tasks, err := u.taskRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	reordered := planner.Move(tasks, day, sourceIndex, targetIndex)
	if err := u.taskRepo.ReplaceAll(userID, reordered); err != nil {
		return nil, err
	}
	return reordered, nil
}

func (u *taskUsecase) PrioritizeToday(ctx context.Context, userID string) ([]domain.RankedTask, []domain.Task, error) {
	if u.aiService == nil {
		return nil, nil, errors.New("AI service not configured")
	}
	if _, inFlight := u.prioritizing.LoadOrStore(userID, struct{}{}); inFlight {
		return nil, nil, errors.New("a prioritization request is already in progress")
	}
	defer u.prioritizing.Delete(userID)

	tasks, err := u.taskRepo.FindByUserID(userID)
	if err != nil {
		return nil, nil, err
	}

	day := u.now()
	today, _ := planner.Partition(tasks, day)

	var infos []ai.TaskInfo
	for _, t := range today {
		if t.Status != domain.TaskStatusTodo {
			continue
		}
		info := ai.TaskInfo{
			Name:        t.Name,
			Description: t.Description,
			Importance:  string(t.Priority),
		}
		if t.Deadline != nil {
			info.Deadline = t.Deadline.Format(time.RFC3339)
		}
		infos = append(infos, info)
	}
	if len(infos) == 0 {
		return nil, nil, errors.New("no todo tasks to prioritize today")
	}

	log.Printf("[TaskUsecase] Requesting prioritization for %d tasks", len(infos))
	ranked, err := u.aiService.PrioritizeTasks(ctx, infos)
	if err != nil {
		// Collection stays untouched; the caller may retry.
		return nil, nil, err
	}

	suggestions := make([]domain.RankedTask, 0, len(ranked))
	for _, r := range ranked {
		suggestions = append(suggestions, domain.RankedTask{
			Name:     r.Name,
			Priority: r.Priority,
			Reason:   r.Reason,
		})
	}

	reordered := planner.ApplyRanking(tasks, day, planner.RankIndex(suggestions))
	if err := u.taskRepo.ReplaceAll(userID, reordered); err != nil {
		return nil, nil, err
	}

	log.Printf("[TaskUsecase] Applied AI ranking to %d of %d tasks", len(suggestions), len(today))
	return suggestions, reordered, nil
}
