package api

import (
	"log"

	"github.com/gin-gonic/gin"

	assistantUsecasePkg "dayplan-backend/internal/assistant/usecase"
	authUsecasePkg "dayplan-backend/internal/auth/usecase"
	scheduleRepo "dayplan-backend/internal/schedule/repository"
	scheduleUsecasePkg "dayplan-backend/internal/schedule/usecase"
	taskRepo "dayplan-backend/internal/task/repository"
	taskUsecasePkg "dayplan-backend/internal/task/usecase"
	"dayplan-backend/pkg/ai"
	"dayplan-backend/pkg/config"
	"dayplan-backend/pkg/gemini"
)

// Handler wires the use cases into a gin engine
type Handler struct {
	authUsecase      authUsecasePkg.AuthUsecase
	taskUsecase      taskUsecasePkg.TaskUsecase
	scheduleUsecase  scheduleUsecasePkg.ScheduleUsecase
	assistantUsecase assistantUsecasePkg.AssistantUsecase
	config           *config.Config
}

// NewHandler builds the AI service and all use cases from the
// repositories and configuration.
func NewHandler(authUc authUsecasePkg.AuthUsecase, taskRepository taskRepo.TaskRepository, apptRepository scheduleRepo.AppointmentRepository, cfg *config.Config) *Handler {
	// Runtime-adjustable settings (Ollama endpoint, working hours)
	// back the settings API
	InitRuntimeSettings(cfg)

	aiService := newAssistantService(cfg)

	taskUc := taskUsecasePkg.NewTaskUsecase(taskRepository, aiService)
	scheduleUc := scheduleUsecasePkg.NewScheduleUsecase(apptRepository, taskRepository, aiService, GetRuntimeWorkingHours)
	assistantUc := assistantUsecasePkg.NewAssistantUsecase(taskRepository, aiService)

	return &Handler{
		authUsecase:      authUc,
		taskUsecase:      taskUc,
		scheduleUsecase:  scheduleUc,
		assistantUsecase: assistantUc,
		config:           cfg,
	}
}

// newAssistantService selects the AI provider. "auto" uses the
// Gemini/Ollama fallback chain; a single provider pins it.
func newAssistantService(cfg *config.Config) ai.AssistantService {
	ollamaService := ai.NewOllamaServiceWithGetters(GetRuntimeOllamaBaseURL, GetRuntimeOllamaModel)

	switch ai.ProviderType(cfg.AIProvider) {
	case ai.ProviderOllama:
		log.Println("[API] AI provider: ollama")
		return ollamaService
	case ai.ProviderGemini:
		if cfg.GeminiApiKey == "" {
			log.Println("[API] GEMINI_API_KEY missing, AI features disabled")
			return nil
		}
		log.Println("[API] AI provider: gemini")
		return gemini.NewGeminiService(cfg.GeminiApiKey)
	default:
		var geminiService ai.AssistantService
		if cfg.GeminiApiKey != "" {
			geminiService = gemini.NewGeminiService(cfg.GeminiApiKey)
		}
		log.Println("[API] AI provider: auto (gemini + ollama fallback)")
		return ai.NewFallbackService(geminiService, ollamaService)
	}
}

// Start runs the HTTP server on the given address
func (h *Handler) Start(addr string) error {
	r := gin.Default()
	SetupRoutes(r, h)
	return r.Run(addr)
}
