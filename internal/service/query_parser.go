package service

import (
	"strings"

	"alcyxob/trainer-api/internal/domain"
)

// Muscle vocabulary recognized in free-text queries, matched as substrings
// of the lowered query.
var allMuscles = []string{
	"chest", "shoulders", "biceps", "triceps", "forearms",
	"lats", "back", "lower back", "traps",
	"abdominals", "abs", "obliques", "core",
	"quadriceps", "quads", "hamstrings", "glutes", "calves", "adductors", "abductors", "legs",
}

// muscleAliasRule adds a group of muscles when its token appears in the
// query. Rules are additive and independent; several may fire at once.
type muscleAliasRule struct {
	token   string
	muscles []string
}

var muscleAliasRules = []muscleAliasRule{
	{token: "arms", muscles: []string{"biceps", "triceps"}},
	{token: "upper body", muscles: []string{"chest", "shoulders", "biceps", "triceps", "back"}},
	{token: "lower body", muscles: []string{"quadriceps", "hamstrings", "glutes", "calves"}},
	{token: "full body", muscles: []string{"chest", "quadriceps", "back", "shoulders", "abs"}},
	{token: "total body", muscles: []string{"chest", "quadriceps", "back", "shoulders", "abs"}},
}

// muscleToBodyPart maps the fine-grained muscle vocabulary onto the coarser
// body-part taxonomy the catalog filters on. Unmapped muscles fall back to
// "Chest"; preserved behavior, see defaultBodyPart.
var muscleToBodyPart = map[string]string{
	"chest":      "Chest",
	"shoulders":  "Shoulders",
	"biceps":     "Upper Arms",
	"triceps":    "Upper Arms",
	"forearms":   "Lower Arms",
	"lats":       "Back",
	"back":       "Back",
	"lower back": "Back",
	"traps":      "Back",
	"abdominals": "Waist",
	"abs":        "Waist",
	"obliques":   "Waist",
	"core":       "Waist",
	"quadriceps": "Upper Legs",
	"quads":      "Upper Legs",
	"hamstrings": "Upper Legs",
	"glutes":     "Upper Legs",
	"calves":     "Lower Legs",
	"adductors":  "Upper Legs",
	"abductors":  "Upper Legs",
	"legs":       "Upper Legs",
}

const defaultBodyPart = "Chest"

// difficultyRule resolves a difficulty level from query keywords. Rules are
// checked in order; the first rule with a matching keyword wins.
type difficultyRule struct {
	keywords []string
	level    string
}

var difficultyRules = []difficultyRule{
	{keywords: []string{"beginner", "easy", "new", "starting"}, level: "beginner"},
	{keywords: []string{"intermediate", "moderate"}, level: "intermediate"},
	{keywords: []string{"advanced", "expert", "hard", "intense"}, level: "expert"},
}

// Equipment vocabulary as the catalog names it.
var equipmentTypes = []string{
	"dumbbell", "barbell", "body weight", "cable", "machine",
	"kettlebell", "band", "medicine ball", "exercise ball",
}

// equipmentAliasRule adds a catalog equipment name when any of its tokens
// appears in the query.
type equipmentAliasRule struct {
	tokens    []string
	equipment string
}

var equipmentAliasRules = []equipmentAliasRule{
	{tokens: []string{"bodyweight", "no equipment", "home"}, equipment: "body weight"},
	{tokens: []string{"dumbbells"}, equipment: "dumbbell"},
	{tokens: []string{"resistance band"}, equipment: "band"},
}

// ParseQuery turns a free-text workout request plus optional explicit
// overrides into structured query parameters. An explicit difficulty passes
// through verbatim; an explicit non-empty equipment list suppresses the
// query scan. Result slices carry set semantics: order is not part of the
// contract.
func ParseQuery(query, difficulty string, equipment []string) domain.QueryParameters {
	lowered := strings.ToLower(query)

	var muscles []string
	for _, muscle := range allMuscles {
		if strings.Contains(lowered, muscle) {
			muscles = appendUnique(muscles, muscle)
		}
	}
	for _, rule := range muscleAliasRules {
		if strings.Contains(lowered, rule.token) {
			for _, muscle := range rule.muscles {
				muscles = appendUnique(muscles, muscle)
			}
		}
	}

	var bodyParts []string
	for _, muscle := range muscles {
		bodyPart, ok := muscleToBodyPart[muscle]
		if !ok {
			bodyPart = defaultBodyPart
		}
		bodyParts = appendUnique(bodyParts, bodyPart)
	}

	parsedDifficulty := difficulty
	if parsedDifficulty == "" {
	scan:
		for _, rule := range difficultyRules {
			for _, keyword := range rule.keywords {
				if strings.Contains(lowered, keyword) {
					parsedDifficulty = rule.level
					break scan
				}
			}
		}
	}

	var parsedEquipment []string
	if len(equipment) > 0 {
		for _, eq := range equipment {
			parsedEquipment = appendUnique(parsedEquipment, eq)
		}
	} else {
		for _, eq := range equipmentTypes {
			if strings.Contains(lowered, eq) {
				parsedEquipment = appendUnique(parsedEquipment, eq)
			}
		}
		for _, rule := range equipmentAliasRules {
			for _, token := range rule.tokens {
				if strings.Contains(lowered, token) {
					parsedEquipment = appendUnique(parsedEquipment, rule.equipment)
					break
				}
			}
		}
	}

	return domain.QueryParameters{
		Muscles:    muscles,
		BodyParts:  bodyParts,
		Difficulty: parsedDifficulty,
		Equipment:  parsedEquipment,
	}
}

func appendUnique(values []string, value string) []string {
	for _, existing := range values {
		if existing == value {
			return values
		}
	}
	return append(values, value)
}
