package service

import (
	"net/url"
	"strings"

	"alcyxob/trainer-api/internal/domain"
)

// Defaults applied when the model omits a plan field.
const (
	defaultSets        = 3
	defaultReps        = "10-12"
	defaultRestSeconds = 60
)

// The source catalog carries no per-exercise difficulty.
const defaultLevel = "intermediate"

// ReconcilePlan merges the plan's exercise ids back against full catalog
// records, in plan order. Ids that do not resolve against the catalog are
// silently dropped; the output may therefore be shorter than the plan.
func ReconcilePlan(plan domain.WorkoutPlan, catalog []domain.ExerciseRecord) []domain.ReconciledExercise {
	index := make(map[string]domain.ExerciseRecord, len(catalog))
	for _, record := range catalog {
		index[record.ExerciseID] = record
	}

	reconciled := make([]domain.ReconciledExercise, 0, len(plan.Exercises))
	for _, item := range plan.Exercises {
		record, ok := index[item.ID]
		if item.ID == "" || !ok {
			continue
		}

		sets := item.Sets
		if sets == 0 {
			sets = defaultSets
		}
		reps := item.Reps
		if reps == "" {
			reps = defaultReps
		}
		rest := item.RestSeconds
		if rest == 0 {
			rest = defaultRestSeconds
		}

		reconciled = append(reconciled, domain.ReconciledExercise{
			ExerciseRecord:   record,
			ID:               record.ExerciseID,
			Sets:             sets,
			Reps:             reps,
			RestSeconds:      rest,
			TrainerNotes:     item.TrainerNotes,
			PrimaryMuscles:   record.TargetMuscles,
			Equipment:        strings.Join(record.Equipments, ", "),
			Level:            defaultLevel,
			YoutubeSearchURL: youtubeSearchURL(record.Name),
		})
	}
	return reconciled
}

func youtubeSearchURL(name string) string {
	if name == "" {
		name = "exercise"
	}
	query := url.QueryEscape(name + " exercise tutorial")
	return "https://www.youtube.com/results?search_query=" + query
}
