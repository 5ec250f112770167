package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/trainer-api/internal/domain"
	"alcyxob/trainer-api/internal/service"
)

// ExerciseHandler serves the catalog read endpoints.
type ExerciseHandler struct {
	workoutService service.WorkoutService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(workoutService service.WorkoutService) *ExerciseHandler {
	return &ExerciseHandler{workoutService: workoutService}
}

// ExerciseListResponse is the DTO for the full catalog listing.
type ExerciseListResponse struct {
	Count     int                     `json:"count"`
	Exercises []domain.ExerciseRecord `json:"exercises"`
}

// GetExercises returns the full cached catalog.
func (h *ExerciseHandler) GetExercises(c *gin.Context) {
	exercises, err := h.workoutService.ListExercises(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if exercises == nil {
		exercises = []domain.ExerciseRecord{}
	}
	c.JSON(http.StatusOK, ExerciseListResponse{Count: len(exercises), Exercises: exercises})
}

// GetExerciseByID returns a single catalog record.
func (h *ExerciseHandler) GetExerciseByID(c *gin.Context) {
	exercise, err := h.workoutService.GetExercise(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found")
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// GetFilters returns the sorted distinct filter values from the catalog.
func (h *ExerciseHandler) GetFilters(c *gin.Context) {
	options, err := h.workoutService.GetFilterOptions(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}
