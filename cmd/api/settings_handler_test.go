package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dayplan-backend/pkg/config"
)

func settingsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/settings", GetSettings)
	r.PUT("/api/settings", UpdateSettings)
	return r
}

func seedSettings() {
	InitRuntimeSettings(&config.Config{
		OllamaBaseURL:     "http://localhost:11434",
		OllamaModel:       "llama3",
		WorkingHoursStart: "09:00",
		WorkingHoursEnd:   "18:00",
	})
}

func putSettings(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGetSettings(t *testing.T) {
	seedSettings()
	r := settingsRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/settings", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"working_hours_start":"09:00"`)
	assert.Contains(t, w.Body.String(), `"ollama_base_url":"http://localhost:11434"`)
}

func TestUpdateSettings(t *testing.T) {
	t.Run("partial update keeps remaining fields", func(t *testing.T) {
		seedSettings()
		r := settingsRouter()

		w := putSettings(r, `{"working_hours_start":"08:30","working_hours_end":"17:00"}`)
		require.Equal(t, http.StatusOK, w.Code)

		start, end := GetRuntimeWorkingHours()
		assert.Equal(t, "08:30", start)
		assert.Equal(t, "17:00", end)
		assert.Equal(t, "llama3", GetRuntimeOllamaModel())
		assert.Equal(t, "http://localhost:11434", GetRuntimeOllamaBaseURL())
	})

	t.Run("updates the ollama endpoint", func(t *testing.T) {
		seedSettings()
		r := settingsRouter()

		w := putSettings(r, `{"ollama_base_url":"http://ollama:11434","ollama_model":"mistral"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://ollama:11434", GetRuntimeOllamaBaseURL())
		assert.Equal(t, "mistral", GetRuntimeOllamaModel())
	})

	t.Run("rejects malformed working hours", func(t *testing.T) {
		seedSettings()
		r := settingsRouter()

		w := putSettings(r, `{"working_hours_start":"nine am"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "expected HH:mm")

		start, _ := GetRuntimeWorkingHours()
		assert.Equal(t, "09:00", start)
	})

	t.Run("rejects malformed end hour", func(t *testing.T) {
		seedSettings()
		r := settingsRouter()

		w := putSettings(r, `{"working_hours_end":"25:00"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		_, end := GetRuntimeWorkingHours()
		assert.Equal(t, "18:00", end)
	})
}
