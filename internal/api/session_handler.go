package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"alcyxob/workout-log/internal/domain"
	"alcyxob/workout-log/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler serves the workout session endpoints.
type SessionHandler struct {
	sessionService service.SessionService
	logger         *zap.Logger
}

func NewSessionHandler(sessionService service.SessionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, logger: logger}
}

// --- DTOs ---

type SetRequest struct {
	ID     string  `json:"id"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

type ExerciseRequest struct {
	ID         string       `json:"id"`
	ExerciseID string       `json:"exerciseId"`
	Name       string       `json:"name" binding:"required"`
	RPE        *float64     `json:"rpe"`
	Sets       []SetRequest `json:"sets"`
}

// SessionRequest is the body of both create and full replacement.
type SessionRequest struct {
	Date      time.Time         `json:"date" binding:"required"`
	Mood      *domain.Mood      `json:"mood"`
	Notes     string            `json:"notes"`
	Exercises []ExerciseRequest `json:"exercises"`
}

func (r *SessionRequest) toDomain() *domain.WorkoutSession {
	session := &domain.WorkoutSession{
		Date:      r.Date,
		Mood:      r.Mood,
		Notes:     r.Notes,
		Exercises: make([]domain.Exercise, len(r.Exercises)),
	}
	for i, ex := range r.Exercises {
		sets := make([]domain.WorkoutSet, len(ex.Sets))
		for j, set := range ex.Sets {
			sets[j] = domain.WorkoutSet{ID: set.ID, Reps: set.Reps, Weight: set.Weight}
		}
		session.Exercises[i] = domain.Exercise{
			ID:         ex.ID,
			ExerciseID: ex.ExerciseID,
			Name:       ex.Name,
			RPE:        ex.RPE,
			Sets:       sets,
		}
	}
	return session
}

// --- Handler Methods ---

// CreateSession godoc
// @Summary Log a workout session
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body SessionRequest true "Session"
// @Success 201 {object} domain.WorkoutSession
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	session, err := h.sessionService.CreateSession(c.Request.Context(), userID, req.toDomain())
	if err != nil {
		h.respondError(c, err, "Failed to create session.")
		return
	}
	c.JSON(http.StatusCreated, session)
}

// ListSessions returns the caller's sessions, newest first.
// @Router /sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	sessions, err := h.sessionService.ListSessions(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "Failed to retrieve sessions.")
		return
	}
	if sessions == nil {
		sessions = []domain.WorkoutSession{}
	}
	c.JSON(http.StatusOK, sessions)
}

// @Router /sessions/{sessionId} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathObjectID(c, "sessionId")
	if !ok {
		return
	}

	session, err := h.sessionService.GetSession(c.Request.Context(), userID, sessionID)
	if err != nil {
		h.respondError(c, err, "Failed to retrieve session.")
		return
	}
	c.JSON(http.StatusOK, session)
}

// ReplaceSession overwrites the whole session.
// @Router /sessions/{sessionId} [put]
func (h *SessionHandler) ReplaceSession(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathObjectID(c, "sessionId")
	if !ok {
		return
	}
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	session, err := h.sessionService.ReplaceSession(c.Request.Context(), userID, sessionID, req.toDomain())
	if err != nil {
		h.respondError(c, err, "Failed to update session.")
		return
	}
	c.JSON(http.StatusOK, session)
}

// @Router /sessions/{sessionId} [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathObjectID(c, "sessionId")
	if !ok {
		return
	}

	if err := h.sessionService.DeleteSession(c.Request.Context(), userID, sessionID); err != nil {
		h.respondError(c, err, "Failed to delete session.")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSessionNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		h.logger.Error(fallback, zap.Error(err), zap.String("request_id", c.GetString(ContextRequestIDKey)))
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}
