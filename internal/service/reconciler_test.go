package service

import (
	"testing"

	"alcyxob/trainer-api/internal/domain"
)

func reconcileCatalog() []domain.ExerciseRecord {
	return []domain.ExerciseRecord{
		{
			ExerciseID:    "bench-press",
			Name:          "Barbell Bench Press",
			BodyParts:     []string{"Chest"},
			TargetMuscles: []string{"pectorals"},
			Equipments:    []string{"barbell", "bench"},
		},
		{
			ExerciseID:    "pushup",
			Name:          "Push Up",
			BodyParts:     []string{"Chest"},
			TargetMuscles: []string{"pectorals", "triceps"},
			Equipments:    []string{"body weight"},
		},
		{
			ExerciseID:    "fly",
			Name:          "Dumbbell Fly",
			BodyParts:     []string{"Chest"},
			TargetMuscles: []string{"pectorals"},
			Equipments:    []string{"dumbbell"},
		},
	}
}

func TestReconcileDropsUnknownIDsSilently(t *testing.T) {
	plan := domain.WorkoutPlan{
		Exercises: []domain.PlanExercise{
			{ID: "pushup", Sets: 4, Reps: "12-15", RestSeconds: 45, TrainerNotes: "keep core tight"},
			{ID: "does-not-exist", Sets: 3, Reps: "10", RestSeconds: 60},
			{ID: "bench-press", Sets: 5, Reps: "5", RestSeconds: 120},
		},
	}

	reconciled := ReconcilePlan(plan, reconcileCatalog())

	if len(reconciled) != 2 {
		t.Fatalf("expected 2 reconciled exercises, got %d", len(reconciled))
	}
	if reconciled[0].ID != "pushup" || reconciled[1].ID != "bench-press" {
		t.Fatalf("expected plan order preserved minus drops, got %s then %s", reconciled[0].ID, reconciled[1].ID)
	}
}

func TestReconcileNeverInventsIDs(t *testing.T) {
	catalog := reconcileCatalog()
	known := map[string]bool{}
	for _, record := range catalog {
		known[record.ExerciseID] = true
	}

	plan := domain.WorkoutPlan{
		Exercises: []domain.PlanExercise{
			{ID: "fly"}, {ID: ""}, {ID: "ghost"}, {ID: "pushup"},
		},
	}
	reconciled := ReconcilePlan(plan, catalog)

	if len(reconciled) > len(plan.Exercises) {
		t.Fatalf("output longer than plan: %d > %d", len(reconciled), len(plan.Exercises))
	}
	for _, ex := range reconciled {
		if !known[ex.ID] {
			t.Fatalf("reconciled id %q not present in catalog", ex.ID)
		}
	}
}

func TestReconcileMergesPlanAndPresentationFields(t *testing.T) {
	plan := domain.WorkoutPlan{
		Exercises: []domain.PlanExercise{
			{ID: "bench-press", Sets: 5, Reps: "5", RestSeconds: 120, TrainerNotes: "drive through the floor"},
		},
	}

	reconciled := ReconcilePlan(plan, reconcileCatalog())
	if len(reconciled) != 1 {
		t.Fatalf("expected 1 reconciled exercise, got %d", len(reconciled))
	}

	got := reconciled[0]
	if got.Sets != 5 || got.Reps != "5" || got.RestSeconds != 120 || got.TrainerNotes != "drive through the floor" {
		t.Fatalf("plan fields not merged: %+v", got)
	}
	if len(got.PrimaryMuscles) != 1 || got.PrimaryMuscles[0] != "pectorals" {
		t.Fatalf("expected primary muscles alias of target muscles, got %v", got.PrimaryMuscles)
	}
	if got.Equipment != "barbell, bench" {
		t.Fatalf("expected joined equipment display text, got %q", got.Equipment)
	}
	if got.Level != "intermediate" {
		t.Fatalf("expected fixed intermediate level, got %q", got.Level)
	}
	want := "https://www.youtube.com/results?search_query=Barbell+Bench+Press+exercise+tutorial"
	if got.YoutubeSearchURL != want {
		t.Fatalf("unexpected lookup url %q", got.YoutubeSearchURL)
	}
}

func TestReconcileAppliesDefaultsForMissingPlanFields(t *testing.T) {
	plan := domain.WorkoutPlan{
		Exercises: []domain.PlanExercise{{ID: "fly"}},
	}

	reconciled := ReconcilePlan(plan, reconcileCatalog())
	if len(reconciled) != 1 {
		t.Fatalf("expected 1 reconciled exercise, got %d", len(reconciled))
	}
	got := reconciled[0]
	if got.Sets != 3 || got.Reps != "10-12" || got.RestSeconds != 60 || got.TrainerNotes != "" {
		t.Fatalf("expected defaults 3 / 10-12 / 60 / empty, got %+v", got)
	}
}

func TestReconcileEmptyPlan(t *testing.T) {
	reconciled := ReconcilePlan(domain.WorkoutPlan{}, reconcileCatalog())
	if len(reconciled) != 0 {
		t.Fatalf("expected empty output, got %d", len(reconciled))
	}
}
