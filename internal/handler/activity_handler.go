package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JarethMcC/route-variety-helper-backend/internal/usecase"
)

// ActivityHandler serves the athlete's recorded activities and their GPS data.
type ActivityHandler struct {
	activityUseCase usecase.ActivityUseCase
}

// NewActivityHandler creates a new ActivityHandler instance.
func NewActivityHandler(activityUseCase usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{activityUseCase: activityUseCase}
}

// ListActivities returns the athlete's GPS activities.
// GET /api/activities
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	activities, err := h.activityUseCase.ListActivities(c.Request.Context(), sessionToken(c))
	if err != nil {
		log.Printf("failed to fetch activities: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activities"})
		return
	}
	log.Printf("fetched %d activities for user", len(activities))
	c.JSON(http.StatusOK, activities)
}

// GetStream returns the raw [lat, lng] stream of one activity.
// GET /api/activities/:id/stream
func (h *ActivityHandler) GetStream(c *gin.Context) {
	activityID, ok := h.activityID(c)
	if !ok {
		return
	}

	stream, err := h.activityUseCase.GetStream(c.Request.Context(), sessionToken(c), activityID)
	if err != nil {
		log.Printf("failed to fetch stream for activity %d: %v", activityID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity data"})
		return
	}
	if len(stream) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No GPS data found for this activity"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stream": stream})
}

// GetGPX returns the activity's stream rendered as a GPX document.
// GET /api/activities/:id/gpx
func (h *ActivityHandler) GetGPX(c *gin.Context) {
	activityID, ok := h.activityID(c)
	if !ok {
		return
	}

	gpx, err := h.activityUseCase.GetGPX(c.Request.Context(), sessionToken(c), activityID)
	if err != nil {
		log.Printf("failed to fetch GPX for activity %d: %v", activityID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity data"})
		return
	}
	if gpx == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "No GPS data found for this activity"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"gpx": gpx})
}

func (h *ActivityHandler) activityID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID"})
		return 0, false
	}
	return id, true
}
