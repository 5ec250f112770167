package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/trainer-api/internal/catalog"
	"alcyxob/trainer-api/internal/domain"
	"alcyxob/trainer-api/internal/llm"
	"alcyxob/trainer-api/internal/service"
)

// WorkoutHandler serves the plan generation endpoint.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs for API (Data Transfer Objects) ---

// WorkoutRequest defines the expected JSON for requesting a workout plan.
// Difficulty and equipment are optional explicit overrides for the query
// parser; difficulty passes through unvalidated.
type WorkoutRequest struct {
	Query      string   `json:"query" binding:"required"`
	Difficulty string   `json:"difficulty"`
	Equipment  []string `json:"equipment"`
}

// WorkoutResponse pairs the model's plan with the reconciled full records.
type WorkoutResponse struct {
	Plan      domain.WorkoutPlan          `json:"plan"`
	Exercises []domain.ReconciledExercise `json:"exercises"`
}

// GenerateWorkout runs the plan pipeline for one request.
func (h *WorkoutHandler) GenerateWorkout(c *gin.Context) {
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan, exercises, err := h.workoutService.GenerateWorkout(c.Request.Context(), req.Query, req.Difficulty, req.Equipment)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if exercises == nil {
		exercises = []domain.ReconciledExercise{}
	}
	c.JSON(http.StatusOK, WorkoutResponse{Plan: plan, Exercises: exercises})
}

// respondServiceError maps pipeline errors onto HTTP statuses with
// kind-specific messages. Nothing is retried; failures surface immediately.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoCandidates):
		abortWithError(c, http.StatusBadRequest, "No exercises found matching your criteria. Try a different query.")
	case errors.Is(err, service.ErrExerciseNotFound):
		abortWithError(c, http.StatusNotFound, "Exercise not found")
	case errors.Is(err, catalog.ErrMissingAPIKey):
		abortWithError(c, http.StatusInternalServerError, "EXERCISEDB_API_KEY not configured. Please set it in the .env file.")
	case errors.Is(err, llm.ErrMissingAPIKey):
		abortWithError(c, http.StatusInternalServerError, "ANTHROPIC_API_KEY not configured. Please set it in the .env file.")
	case errors.Is(err, llm.ErrPlanParse):
		abortWithError(c, http.StatusInternalServerError, "Failed to parse AI response: "+err.Error())
	case errors.Is(err, llm.ErrUnavailable):
		abortWithError(c, http.StatusInternalServerError, "AI API Error: "+err.Error())
	case errors.Is(err, catalog.ErrUnavailable):
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch exercises: "+err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Internal server error.")
	}
}
