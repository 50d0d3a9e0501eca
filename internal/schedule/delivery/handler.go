package delivery

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dayplan-backend/internal/schedule/domain"
	"dayplan-backend/internal/schedule/timeline"
	"dayplan-backend/internal/schedule/usecase"
)

// ScheduleHandler handles calendar-related HTTP requests
type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
}

// NewScheduleHandler creates a new ScheduleHandler
func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
	}
}

// GetTimeline returns the composed, positioned schedule for one day
// GET /api/schedule/timeline?date=2024-05-01 (defaults to today)
func (h *ScheduleHandler) GetTimeline(c *gin.Context) {
	userID := c.GetString("userID")

	day := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.ParseInLocation("2006-01-02", d, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	items, win, err := h.scheduleUsecase.ComposeDay(userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if items == nil {
		items = []timeline.Item{}
	}
	c.JSON(http.StatusOK, gin.H{
		"items":  items,
		"window": win,
	})
}

// GetAppointments returns the user's fixed appointments
// GET /api/appointments
func (h *ScheduleHandler) GetAppointments(c *gin.Context) {
	userID := c.GetString("userID")

	appts, err := h.scheduleUsecase.GetAppointments(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if appts == nil {
		appts = []domain.Appointment{}
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// CreateAppointment stores a new fixed appointment
// POST /api/appointments
func (h *ScheduleHandler) CreateAppointment(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.scheduleUsecase.CreateAppointment(userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// DeleteAppointment deletes a fixed appointment
// DELETE /api/appointments/:id
func (h *ScheduleHandler) DeleteAppointment(c *gin.Context) {
	userID := c.GetString("userID")
	apptID := c.Param("id")

	if err := h.scheduleUsecase.DeleteAppointment(userID, apptID); err != nil {
		switch err.Error() {
		case "appointment not found":
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		case "unauthorized":
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

// SuggestTimeBlocks asks the AI collaborator for calendar placements
// POST /api/schedule/timeblocks
func (h *ScheduleHandler) SuggestTimeBlocks(c *gin.Context) {
	userID := c.GetString("userID")

	suggestions, err := h.scheduleUsecase.SuggestTimeBlocks(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if suggestions == nil {
		suggestions = []domain.Appointment{}
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
