// internal/domain/exercise.go
package domain

// ExerciseRecord represents one exercise as delivered by the ExerciseDB API.
// Records are immutable once fetched; the catalog cache owns their lifetime.
type ExerciseRecord struct {
	ExerciseID       string   `json:"exerciseId"`
	Name             string   `json:"name"`
	BodyParts        []string `json:"bodyParts"`
	TargetMuscles    []string `json:"targetMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Equipments       []string `json:"equipments"`
	ExerciseType     string   `json:"exerciseType,omitempty"`
	ImageURL         string   `json:"imageUrl,omitempty"`
	VideoURL         string   `json:"videoUrl,omitempty"`
}

// FilterOptions holds the sorted distinct values available for catalog
// filtering, derived from the full exercise list.
type FilterOptions struct {
	Equipment []string `json:"equipment"`
	BodyParts []string `json:"bodyParts"`
	Muscles   []string `json:"muscles"`
}
