package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"alcyxob/trainer-api/internal/catalog"
	"alcyxob/trainer-api/internal/domain"
	"alcyxob/trainer-api/internal/llm"
	"alcyxob/trainer-api/internal/logger"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrNoCandidates     = errors.New("no exercises found matching the criteria")
)

// WorkoutService is the query-to-plan pipeline plus the catalog read
// operations the API exposes.
type WorkoutService interface {
	GenerateWorkout(ctx context.Context, query, difficulty string, equipment []string) (domain.WorkoutPlan, []domain.ReconciledExercise, error)
	ListExercises(ctx context.Context) ([]domain.ExerciseRecord, error)
	GetExercise(ctx context.Context, id string) (*domain.ExerciseRecord, error)
	GetFilterOptions(ctx context.Context) (domain.FilterOptions, error)
}

type workoutService struct {
	cache   *catalog.Cache
	planner llm.PlanGenerator
	log     *logger.Logger
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(cache *catalog.Cache, planner llm.PlanGenerator, log *logger.Logger) WorkoutService {
	return &workoutService{
		cache:   cache,
		planner: planner,
		log:     log,
	}
}

// GenerateWorkout runs the full pipeline: enhanced query -> parsed
// parameters -> filtered candidates -> model plan -> reconciliation against
// the full catalog.
func (s *workoutService) GenerateWorkout(ctx context.Context, query, difficulty string, equipment []string) (domain.WorkoutPlan, []domain.ReconciledExercise, error) {
	enhanced := buildEnhancedQuery(query, difficulty, equipment)

	records, err := s.cache.Fetch(ctx)
	if err != nil {
		return domain.WorkoutPlan{}, nil, err
	}

	params := ParseQuery(enhanced, difficulty, equipment)
	candidates := FilterExercises(records, params)
	if len(candidates) == 0 {
		return domain.WorkoutPlan{}, nil, ErrNoCandidates
	}

	s.log.Debug("workout candidates selected",
		"muscles", params.Muscles,
		"bodyParts", params.BodyParts,
		"difficulty", params.Difficulty,
		"equipment", params.Equipment,
		"candidates", len(candidates),
	)

	plan, err := s.planner.GeneratePlan(ctx, enhanced, candidates)
	if err != nil {
		return domain.WorkoutPlan{}, nil, err
	}

	reconciled := ReconcilePlan(plan, records)
	s.log.Info("workout plan generated",
		"focus", plan.WorkoutFocus,
		"planned", len(plan.Exercises),
		"reconciled", len(reconciled),
	)
	return plan, reconciled, nil
}

// buildEnhancedQuery folds the explicit overrides back into the free-text
// query so the model sees them too.
func buildEnhancedQuery(query, difficulty string, equipment []string) string {
	enhanced := query
	if difficulty != "" {
		enhanced += " " + difficulty
	}
	if len(equipment) > 0 {
		enhanced += " with " + strings.Join(equipment, ", ")
	}
	return enhanced
}

// ListExercises returns the full cached catalog.
func (s *workoutService) ListExercises(ctx context.Context) ([]domain.ExerciseRecord, error) {
	return s.cache.Fetch(ctx)
}

// GetExercise retrieves a single catalog record by id.
func (s *workoutService) GetExercise(ctx context.Context, id string) (*domain.ExerciseRecord, error) {
	records, err := s.cache.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ExerciseID == id {
			return &records[i], nil
		}
	}
	return nil, ErrExerciseNotFound
}

// GetFilterOptions derives the sorted distinct equipment, body-part and
// muscle values from the full catalog.
func (s *workoutService) GetFilterOptions(ctx context.Context) (domain.FilterOptions, error) {
	records, err := s.cache.Fetch(ctx)
	if err != nil {
		return domain.FilterOptions{}, err
	}

	equipment := make(map[string]struct{})
	bodyParts := make(map[string]struct{})
	muscles := make(map[string]struct{})
	for _, record := range records {
		for _, eq := range record.Equipments {
			equipment[eq] = struct{}{}
		}
		for _, bp := range record.BodyParts {
			bodyParts[bp] = struct{}{}
		}
		for _, m := range record.TargetMuscles {
			muscles[m] = struct{}{}
		}
		for _, m := range record.SecondaryMuscles {
			muscles[m] = struct{}{}
		}
	}

	return domain.FilterOptions{
		Equipment: sortedKeys(equipment),
		BodyParts: sortedKeys(bodyParts),
		Muscles:   sortedKeys(muscles),
	}, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
