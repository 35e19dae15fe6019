package api

import (
	"errors"
	"net/http"

	"alcyxob/workout-log/internal/domain"
	"alcyxob/workout-log/internal/service"
	"alcyxob/workout-log/internal/summary"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler holds the exercise catalog service dependency.
type CatalogHandler struct {
	catalogService service.CatalogService
	logger         *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, logger: logger}
}

// ExerciseResponse is the DTO for returning catalog entries. MuscleCategory
// is the dashboard category the entry's title is counted under.
type ExerciseResponse struct {
	ID               string           `json:"id"`
	TitleEn          string           `json:"titleEn"`
	TitleZh          string           `json:"titleZh,omitempty"`
	Aliases          []string         `json:"aliases,omitempty"`
	Level            string           `json:"level,omitempty"`
	BodyPart         string           `json:"bodyPart,omitempty"`
	PrimaryMuscles   []string         `json:"primaryMuscles,omitempty"`
	SecondaryMuscles []string         `json:"secondaryMuscles,omitempty"`
	Equipment        *string          `json:"equipment,omitempty"`
	InstructionsEn   []string         `json:"instructionsEn,omitempty"`
	InstructionsZh   []string         `json:"instructionsZh,omitempty"`
	ThumbnailURL     string           `json:"thumbnailUrl,omitempty"`
	IsCardio         bool             `json:"isCardio"`
	Type             string           `json:"type"`
	MuscleCategory   summary.Category `json:"muscleCategory"`
}

// MapExerciseToResponse converts a catalog entry to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.ExerciseCatalogEntry) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:               ex.ID.Hex(),
		TitleEn:          ex.TitleEn,
		TitleZh:          ex.TitleZh,
		Aliases:          ex.Aliases,
		Level:            ex.Level,
		BodyPart:         ex.BodyPart,
		PrimaryMuscles:   ex.PrimaryMuscles,
		SecondaryMuscles: ex.SecondaryMuscles,
		Equipment:        ex.Equipment,
		InstructionsEn:   ex.InstructionsEn,
		InstructionsZh:   ex.InstructionsZh,
		ThumbnailURL:     ex.ThumbnailURL,
		IsCardio:         ex.IsCardio,
		Type:             string(ex.Type),
		MuscleCategory:   summary.ClassifyExercise(ex.TitleEn),
	}
}

// MapExercisesToResponse converts a slice of catalog entries to a slice of ExerciseResponse DTO.
func MapExercisesToResponse(exercises []domain.ExerciseCatalogEntry) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

// ListExercises godoc
// @Summary List or search the exercise catalog
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param q query string false "Substring of a title or alias"
// @Success 200 {array} ExerciseResponse "List of exercises"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /exercises [get]
func (h *CatalogHandler) ListExercises(c *gin.Context) {
	exercises, err := h.catalogService.ListExercises(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.logger.Error("list exercises failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// GetExercise returns one catalog entry.
// @Router /exercises/{exerciseId} [get]
func (h *CatalogHandler) GetExercise(c *gin.Context) {
	exerciseID, ok := pathObjectID(c, "exerciseId")
	if !ok {
		return
	}

	exercise, err := h.catalogService.GetExercise(c.Request.Context(), exerciseID)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			h.logger.Error("get exercise failed", zap.Error(err))
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercise.")
		}
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}
