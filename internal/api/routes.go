package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/trainer-api/internal/service"
)

const (
	serviceName    = "Personal Trainer API"
	serviceVersion = "1.0.0"
)

// SetupRoutes wires the HTTP surface onto the router.
func SetupRoutes(router *gin.Engine, workoutService service.WorkoutService) {
	exerciseHandler := NewExerciseHandler(workoutService)
	workoutHandler := NewWorkoutHandler(workoutService)

	// Liveness/version payload.
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": serviceName,
			"version": serviceVersion,
		})
	})

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/exercises", exerciseHandler.GetExercises)
		apiGroup.GET("/exercises/:id", exerciseHandler.GetExerciseByID)
		apiGroup.GET("/filters", exerciseHandler.GetFilters)
		apiGroup.POST("/workout", workoutHandler.GenerateWorkout)
	}
}
