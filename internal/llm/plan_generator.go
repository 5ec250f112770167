package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"alcyxob/trainer-api/internal/config"
	"alcyxob/trainer-api/internal/domain"
)

// --- Error Definitions ---
var (
	ErrMissingAPIKey = errors.New("anthropic api key is not configured")
	ErrUnavailable   = errors.New("plan generation service is unavailable")
	ErrPlanParse     = errors.New("plan response is not valid JSON")
)

// systemPrompt fixes the model's role and the output contract: exactly 3
// exercises, ids restricted to the provided candidates, compound movements
// before isolation, one JSON object.
const systemPrompt = `You are an elite personal trainer and fitness expert with decades of experience helping clients achieve their fitness goals. Your role is to create personalized, effective workout plans.

When given a set of exercises and a user's workout request, you will:

1. Analyze the user's needs (muscles targeted, equipment available, skill level, time constraints, any injuries/limitations mentioned)
2. Select the most appropriate exercises from the provided list
3. Create a structured workout plan with proper exercise order (compound movements first, isolation later)
4. Provide specific sets and reps recommendations based on the user's goals
5. Explain WHY each exercise is included and how it benefits the user

Your response must be a valid JSON object with this exact structure:
{
  "summary": "A 2-3 sentence overview of the workout plan and its benefits",
  "workout_focus": "Primary focus area (e.g., 'Upper Body Push', 'Leg Day', 'Full Body')",
  "estimated_time": "Estimated workout duration (e.g., '45 minutes')",
  "difficulty": "Overall difficulty level",
  "exercises": [
    {
      "id": "exact exercise id from the provided list",
      "sets": 3,
      "reps": "10-12",
      "rest_seconds": 60,
      "trainer_notes": "Brief coaching tip for this exercise"
    }
  ],
  "warmup_recommendation": "Brief warmup suggestion",
  "cooldown_recommendation": "Brief cooldown suggestion"
}

IMPORTANT:
- Select EXACTLY 3 exercises for a focused, effective workout
- Only use exercise IDs that are provided in the context
- Provide realistic sets/reps based on the user's stated experience level
- Consider exercise order for optimal muscle activation
- Be encouraging and professional in your trainer notes`

// PlanGenerator produces a workout plan for a query from a bounded
// candidate set.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, query string, candidates []domain.ExerciseRecord) (domain.WorkoutPlan, error)
}

// AnthropicGenerator implements PlanGenerator against the Claude messages API.
type AnthropicGenerator struct {
	client    anthropic.Client
	apiKey    string
	model     string
	maxTokens int
}

// NewAnthropicGenerator creates a plan generator from config.
func NewAnthropicGenerator(cfg config.AnthropicConfig) *AnthropicGenerator {
	return &AnthropicGenerator{
		client:    anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

// GeneratePlan sends the candidate projections and the query to the model
// and parses its JSON reply into a WorkoutPlan.
func (g *AnthropicGenerator) GeneratePlan(ctx context.Context, query string, candidates []domain.ExerciseRecord) (domain.WorkoutPlan, error) {
	if g.apiKey == "" {
		return domain.WorkoutPlan{}, ErrMissingAPIKey
	}

	prompt, err := buildUserPrompt(query, candidates)
	if err != nil {
		return domain.WorkoutPlan{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: int64(g.maxTokens),
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return domain.WorkoutPlan{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return ParsePlanText(firstTextSegment(message.Content))
}

// candidateProjection is the compact view of an exercise embedded in the
// prompt; full records would waste context.
type candidateProjection struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Equipment        []string `json:"equipment"`
	BodyParts        []string `json:"bodyParts"`
	TargetMuscles    []string `json:"targetMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	ExerciseType     string   `json:"exerciseType"`
}

func buildUserPrompt(query string, candidates []domain.ExerciseRecord) (string, error) {
	projections := make([]candidateProjection, len(candidates))
	for i, record := range candidates {
		projections[i] = candidateProjection{
			ID:               record.ExerciseID,
			Name:             record.Name,
			Equipment:        record.Equipments,
			BodyParts:        record.BodyParts,
			TargetMuscles:    record.TargetMuscles,
			SecondaryMuscles: record.SecondaryMuscles,
			ExerciseType:     record.ExerciseType,
		}
	}

	context, err := json.MarshalIndent(projections, "", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`User's workout request: %q

Available exercises (choose from these ONLY):
%s

Create a personalized workout plan based on the user's request. Return ONLY valid JSON.`, query, context), nil
}

func firstTextSegment(blocks []anthropic.ContentBlockUnion) string {
	for _, block := range blocks {
		if block.Type == "text" && block.Text != "" {
			return block.Text
		}
	}
	return ""
}

var codeFencePattern = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// ParsePlanText parses model output into a WorkoutPlan, stripping an
// optional triple-backtick fence (with or without a language tag) first.
func ParsePlanText(text string) (domain.WorkoutPlan, error) {
	jsonStr := text
	if strings.Contains(text, "```") {
		if match := codeFencePattern.FindStringSubmatch(text); len(match) == 2 {
			jsonStr = strings.TrimSpace(match[1])
		}
	}

	var plan domain.WorkoutPlan
	if err := json.Unmarshal([]byte(jsonStr), &plan); err != nil {
		return domain.WorkoutPlan{}, fmt.Errorf("%w: %v", ErrPlanParse, err)
	}
	return plan, nil
}
