package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"dayplan-backend/pkg/config"
)

// RuntimeSettings holds the knobs adjustable without a restart: the
// local AI provider endpoint and the working-hours window handed to
// the time-blocking collaborator.
type RuntimeSettings struct {
	OllamaBaseURL     string `json:"ollama_base_url"`
	OllamaModel       string `json:"ollama_model,omitempty"`
	WorkingHoursStart string `json:"working_hours_start"` // HH:mm
	WorkingHoursEnd   string `json:"working_hours_end"`   // HH:mm
}

var (
	runtimeSettings     RuntimeSettings
	runtimeSettingsLock sync.RWMutex
)

// InitRuntimeSettings seeds the runtime settings from the environment
// configuration.
func InitRuntimeSettings(cfg *config.Config) {
	runtimeSettingsLock.Lock()
	defer runtimeSettingsLock.Unlock()
	runtimeSettings = RuntimeSettings{
		OllamaBaseURL:     cfg.OllamaBaseURL,
		OllamaModel:       cfg.OllamaModel,
		WorkingHoursStart: cfg.WorkingHoursStart,
		WorkingHoursEnd:   cfg.WorkingHoursEnd,
	}
}

// GetRuntimeOllamaBaseURL returns the current Ollama base URL
func GetRuntimeOllamaBaseURL() string {
	runtimeSettingsLock.RLock()
	defer runtimeSettingsLock.RUnlock()
	return runtimeSettings.OllamaBaseURL
}

// GetRuntimeOllamaModel returns the current Ollama model
func GetRuntimeOllamaModel() string {
	runtimeSettingsLock.RLock()
	defer runtimeSettingsLock.RUnlock()
	return runtimeSettings.OllamaModel
}

// GetRuntimeWorkingHours returns the current working-hours window
func GetRuntimeWorkingHours() (start, end string) {
	runtimeSettingsLock.RLock()
	defer runtimeSettingsLock.RUnlock()
	return runtimeSettings.WorkingHoursStart, runtimeSettings.WorkingHoursEnd
}

// UpdateSettingsRequest carries a partial settings update; absent
// fields keep their current value.
type UpdateSettingsRequest struct {
	OllamaBaseURL     *string `json:"ollama_base_url,omitempty"`
	OllamaModel       *string `json:"ollama_model,omitempty"`
	WorkingHoursStart *string `json:"working_hours_start,omitempty"`
	WorkingHoursEnd   *string `json:"working_hours_end,omitempty"`
}

func validClockTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

// GetSettings returns the current runtime settings
// GET /api/settings
func GetSettings(c *gin.Context) {
	runtimeSettingsLock.RLock()
	defer runtimeSettingsLock.RUnlock()

	c.JSON(http.StatusOK, runtimeSettings)
}

// UpdateSettings applies a partial runtime settings update
// PUT /api/settings
func UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.WorkingHoursStart != nil && !validClockTime(*req.WorkingHoursStart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid working_hours_start, expected HH:mm"})
		return
	}
	if req.WorkingHoursEnd != nil && !validClockTime(*req.WorkingHoursEnd) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid working_hours_end, expected HH:mm"})
		return
	}

	runtimeSettingsLock.Lock()
	if req.OllamaBaseURL != nil && *req.OllamaBaseURL != "" {
		runtimeSettings.OllamaBaseURL = *req.OllamaBaseURL
	}
	if req.OllamaModel != nil && *req.OllamaModel != "" {
		runtimeSettings.OllamaModel = *req.OllamaModel
	}
	if req.WorkingHoursStart != nil {
		runtimeSettings.WorkingHoursStart = *req.WorkingHoursStart
	}
	if req.WorkingHoursEnd != nil {
		runtimeSettings.WorkingHoursEnd = *req.WorkingHoursEnd
	}
	updated := runtimeSettings
	runtimeSettingsLock.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"message":  "Settings updated successfully",
		"settings": updated,
	})
}

// TestOllamaConnection tests if the Ollama server is reachable
// POST /api/settings/ollama/test
func TestOllamaConnection(c *gin.Context) {
	var req struct {
		OllamaBaseURL string `json:"ollama_base_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		// If no body provided, use current config
		req.OllamaBaseURL = GetRuntimeOllamaBaseURL()
	}
	if req.OllamaBaseURL == "" {
		req.OllamaBaseURL = GetRuntimeOllamaBaseURL()
	}

	// Test connection by calling Ollama's /api/tags endpoint
	resp, err := http.Get(req.OllamaBaseURL + "/api/tags")
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"connected": false,
			"error":     err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"connected":   false,
			"status_code": resp.StatusCode,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"connected":       true,
		"ollama_base_url": req.OllamaBaseURL,
	})
}
