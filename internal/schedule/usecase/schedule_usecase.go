package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"dayplan-backend/internal/schedule/domain"
	"dayplan-backend/internal/schedule/repository"
	"dayplan-backend/internal/schedule/timeline"
	taskdomain "dayplan-backend/internal/task/domain"
	taskrepo "dayplan-backend/internal/task/repository"
	"dayplan-backend/pkg/ai"
)

// scheduleUsecase implements ScheduleUsecase interface
type scheduleUsecase struct {
	apptRepo  repository.AppointmentRepository
	taskRepo  taskrepo.TaskRepository
	aiService ai.AssistantService
	// workingHours reports the current HH:mm window; it is read per
	// request so runtime settings changes take effect immediately
	workingHours func() (start, end string)
	now          func() time.Time
}

// NewScheduleUsecase creates a new instance of scheduleUsecase
func NewScheduleUsecase(apptRepo repository.AppointmentRepository, taskRepo taskrepo.TaskRepository, aiService ai.AssistantService, workingHours func() (start, end string)) ScheduleUsecase {
	return &scheduleUsecase{
		apptRepo:     apptRepo,
		taskRepo:     taskRepo,
		aiService:    aiService,
		workingHours: workingHours,
		now:          time.Now,
	}
}

func (u *scheduleUsecase) CreateAppointment(userID string, req CreateAppointmentRequest) (*domain.Appointment, error) {
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, errors.New("invalid start_time, expected RFC3339")
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, errors.New("invalid end_time, expected RFC3339")
	}
	if !end.After(start) {
		return nil, errors.New("end_time must be after start_time")
	}

	appt := &domain.Appointment{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      req.Name,
		StartTime: start,
		EndTime:   end,
	}
	if err := u.apptRepo.Create(appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (u *scheduleUsecase) GetAppointments(userID string) ([]domain.Appointment, error) {
	return u.apptRepo.FindByUserID(userID)
}

func (u *scheduleUsecase) DeleteAppointment(userID, appointmentID string) error {
	appt, err := u.apptRepo.FindByID(appointmentID)
	if err != nil {
		return err
	}
	if appt == nil {
		return errors.New("appointment not found")
	}
	if appt.UserID != userID {
		return errors.New("unauthorized")
	}
	return u.apptRepo.Delete(appt.ID)
}

func (u *scheduleUsecase) ComposeDay(userID string, day time.Time) ([]timeline.Item, timeline.Window, error) {
	appts, err := u.apptRepo.FindByUserID(userID)
	if err != nil {
		return nil, timeline.Window{}, err
	}
	tasks, err := u.taskRepo.FindByUserID(userID)
	if err != nil {
		return nil, timeline.Window{}, err
	}

	items, win := timeline.Compose(appts, tasks, day, u.now())
	return items, win, nil
}

func (u *scheduleUsecase) SuggestTimeBlocks(ctx context.Context, userID string) ([]domain.Appointment, error) {
	if u.aiService == nil {
		return nil, errors.New("AI service not configured")
	}

	tasks, err := u.taskRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	appts, err := u.apptRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	whStart, whEnd := u.workingHours()
	req := ai.TimeBlockRequest{
		WorkingHoursStart: whStart,
		WorkingHoursEnd:   whEnd,
	}
	for _, t := range tasks {
		if t.Status != taskdomain.TaskStatusTodo {
			continue
		}
		bt := ai.BlockTask{
			Name:     t.Name,
			Duration: t.Duration,
			Priority: string(t.Priority),
		}
		if t.Deadline != nil {
			bt.Deadline = t.Deadline.Format(time.RFC3339)
		}
		req.Tasks = append(req.Tasks, bt)
	}
	if len(req.Tasks) == 0 {
		return nil, errors.New("no todo tasks to schedule")
	}
	for _, a := range appts {
		req.ExistingAppointments = append(req.ExistingAppointments, ai.BlockSpan{
			StartTime: a.StartTime.Format(time.RFC3339),
			EndTime:   a.EndTime.Format(time.RFC3339),
		})
	}

	log.Printf("[ScheduleUsecase] Requesting time blocks for %d tasks around %d appointments", len(req.Tasks), len(req.ExistingAppointments))
	blocks, err := u.aiService.SuggestTimeBlocks(ctx, req)
	if err != nil {
		return nil, err
	}

	var suggestions []domain.Appointment
	for _, b := range blocks {
		start, err := time.Parse(time.RFC3339, b.StartTime)
		if err != nil {
			log.Printf("[ScheduleUsecase] Skipping block with bad start time %q: %v", b.StartTime, err)
			continue
		}
		end, err := time.Parse(time.RFC3339, b.EndTime)
		if err != nil {
			log.Printf("[ScheduleUsecase] Skipping block with bad end time %q: %v", b.EndTime, err)
			continue
		}
		suggestions = append(suggestions, domain.Appointment{
			ID:           uuid.New().String(),
			UserID:       userID,
			Name:         b.TaskName,
			StartTime:    start,
			EndTime:      end,
			IsSuggestion: true,
		})
	}
	return suggestions, nil
}
