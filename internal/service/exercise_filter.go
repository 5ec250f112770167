package service

import (
	"strings"

	"alcyxob/trainer-api/internal/domain"
)

const (
	// maxCandidates bounds the set handed to the plan generator.
	maxCandidates = 30
	// minCandidates is the usability threshold below which filtering widens.
	minCandidates = 3
)

// FilterExercises narrows the catalog to at most maxCandidates records
// matching the parsed parameters. Filtering is rule-based and stable:
// catalog order is preserved, there is no scoring.
//
// Two fallback policies apply by design. The equipment filter is only kept
// when it leaves at least minCandidates records; otherwise the pre-equipment
// set stands. If the final set is still below minCandidates, all filtering
// is discarded and the first maxCandidates catalog records are returned,
// trading relevance for availability.
func FilterExercises(catalog []domain.ExerciseRecord, params domain.QueryParameters) []domain.ExerciseRecord {
	filtered := catalog

	if len(params.BodyParts) > 0 {
		var kept []domain.ExerciseRecord
		for _, record := range filtered {
			if anyMatchFold(record.BodyParts, params.BodyParts) {
				kept = append(kept, record)
			}
		}
		filtered = kept
	}

	if len(params.Equipment) > 0 {
		var kept []domain.ExerciseRecord
		for _, record := range filtered {
			if anyMatchFold(record.Equipments, params.Equipment) {
				kept = append(kept, record)
			}
		}
		if len(kept) >= minCandidates {
			filtered = kept
		}
	}

	if len(filtered) < minCandidates {
		filtered = catalog
	}

	if len(filtered) > maxCandidates {
		filtered = filtered[:maxCandidates]
	}
	return filtered
}

// anyMatchFold reports whether any value in a matches any value in b,
// case-insensitively.
func anyMatchFold(a, b []string) bool {
	for _, va := range a {
		for _, vb := range b {
			if strings.EqualFold(va, vb) {
				return true
			}
		}
	}
	return false
}
