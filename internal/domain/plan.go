// internal/domain/plan.go
package domain

// PlanExercise is one exercise slot in a model-generated workout plan.
type PlanExercise struct {
	ID           string `json:"id"`
	Sets         int    `json:"sets"`
	Reps         string `json:"reps"`
	RestSeconds  int    `json:"rest_seconds"`
	TrainerNotes string `json:"trainer_notes"`
}

// WorkoutPlan is the structured output contract for the plan generator.
// Every exercise id must reference a candidate that was offered to the
// model; reconciliation drops any id it cannot resolve.
type WorkoutPlan struct {
	Summary                string         `json:"summary"`
	WorkoutFocus           string         `json:"workout_focus"`
	EstimatedTime          string         `json:"estimated_time"`
	Difficulty             string         `json:"difficulty"`
	Exercises              []PlanExercise `json:"exercises"`
	WarmupRecommendation   string         `json:"warmup_recommendation"`
	CooldownRecommendation string         `json:"cooldown_recommendation"`
}

// ReconciledExercise merges a full catalog record with the plan fields for
// that exercise plus the presentation fields the frontend expects.
type ReconciledExercise struct {
	ExerciseRecord

	ID               string   `json:"id"`
	Sets             int      `json:"sets"`
	Reps             string   `json:"reps"`
	RestSeconds      int      `json:"restSeconds"`
	TrainerNotes     string   `json:"trainerNotes"`
	PrimaryMuscles   []string `json:"primaryMuscles"`
	Equipment        string   `json:"equipment"`
	Level            string   `json:"level"`
	YoutubeSearchURL string   `json:"youtubeSearchUrl"`
}
