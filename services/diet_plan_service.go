package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Upstream failures the handler must surface with their own HTTP status.
var (
	ErrRateLimited   = errors.New("rate limit exceeded, please try again in a moment")
	ErrQuotaExceeded = errors.New("service temporarily unavailable, please try again later")
)

type DietPlanRequest struct {
	Calories          int      `json:"calories" binding:"required,gt=0"`
	Goal              string   `json:"goal" binding:"required,oneof=lose maintain gain"`
	DietType          string   `json:"dietType" binding:"required"`
	MealsPerDay       int      `json:"mealsPerDay" binding:"required,gt=0"`
	CuisinePreference []string `json:"cuisinePreference"`
	Allergies         []string `json:"allergies"`
	ActivityLevel     string   `json:"activityLevel"`
}

// DietPlanService generates a one-day meal plan by deriving a macro budget
// and delegating meal content to a chat-completion model behind an
// OpenAI-compatible gateway. The parsed plan is returned to the caller
// verbatim: the budget is advisory input to the prompt, not a post-hoc
// validator of the model's arithmetic.
type DietPlanService struct {
	client *openai.Client
	model  string
}

func NewDietPlanService() (*DietPlanService, error) {
	apiKey := os.Getenv("AI_GATEWAY_KEY")
	if apiKey == "" {
		return nil, errors.New("AI_GATEWAY_KEY is not configured")
	}

	cfg := openai.DefaultConfig(apiKey)
	if base := os.Getenv("AI_GATEWAY_URL"); base != "" {
		cfg.BaseURL = base
	} else {
		cfg.BaseURL = "https://ai.gateway.lovable.dev/v1"
	}
	// The contract specifies no timeout for the model call; 60s keeps a
	// hung gateway from pinning request goroutines forever.
	cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}

	model := os.Getenv("AI_MODEL")
	if model == "" {
		model = "google/gemini-2.5-flash"
	}

	return &DietPlanService{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

const dietPlanSystemPrompt = `You are a professional nutritionist and dietitian. Generate a detailed, practical meal plan based on user requirements.

CRITICAL RULES:
1. All meals must be realistic, everyday foods that can be easily prepared
2. Provide exact measurements in grams, cups, or pieces
3. Each meal must include exact calorie and macro breakdown
4. Total daily calories must match the target within 50 calories
5. Foods must be commonly available and not exotic
6. Consider the user's cultural food preferences
7. Avoid any listed allergies strictly
8. Make meals varied and appetizing

Respond ONLY with a valid JSON object in this exact format:
{
  "meals": [
    {
      "name": "Breakfast",
      "time": "8:00 AM",
      "foods": [
        {
          "item": "Food name",
          "quantity": "Amount with unit",
          "calories": number,
          "protein": number,
          "carbs": number,
          "fats": number
        }
      ],
      "totalCalories": number,
      "totalProtein": number,
      "totalCarbs": number,
      "totalFats": number
    }
  ],
  "dailyTotal": {
    "calories": number,
    "protein": number,
    "carbs": number,
    "fats": number
  },
  "tips": ["tip1", "tip2", "tip3"],
  "waterIntake": "amount in liters"
}`

var goalLabels = map[string]string{
	"lose":     "Weight loss",
	"maintain": "Maintain weight",
	"gain":     "Muscle gain",
}

func buildUserPrompt(req DietPlanRequest, budget MacroBudget) string {
	cuisines := "Any"
	if len(req.CuisinePreference) > 0 {
		cuisines = strings.Join(req.CuisinePreference, ", ")
	}
	allergies := "None"
	if len(req.Allergies) > 0 {
		allergies = strings.Join(req.Allergies, ", ")
	}

	return fmt.Sprintf(`Create a %d-meal diet plan for someone with these requirements:
- Daily calorie target: %d kcal
- Goal: %s
- Diet type: %s
- Target macros: Protein %dg, Carbs %dg, Fats %dg
- Preferred cuisines: %s
- Allergies/restrictions: %s
- Activity level: %s

Divide the %d calories across %d meals appropriately. Breakfast and lunch should be larger meals.`,
		req.MealsPerDay,
		req.Calories,
		goalLabels[req.Goal],
		req.DietType,
		budget.ProteinGrams, budget.CarbsGrams, budget.FatsGrams,
		cuisines,
		allergies,
		req.ActivityLevel,
		req.Calories, req.MealsPerDay,
	)
}

// Generate derives the macro budget, prompts the model and returns the
// extracted plan object untouched. No retries: every failure surfaces
// immediately to the caller.
func (s *DietPlanService) Generate(ctx context.Context, req DietPlanRequest) (json.RawMessage, error) {
	budget, err := DeriveMacroBudget(req.Calories, req.Goal)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: dietPlanSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildUserPrompt(req, budget)},
		},
	})
	if err != nil {
		return nil, mapGatewayError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, errors.New("no response from AI")
	}

	jsonStr := extractJSON(resp.Choices[0].Message.Content)
	if jsonStr == "" {
		return nil, errors.New("invalid response format: no JSON object in model output")
	}

	var plan json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &plan); err != nil {
		return nil, fmt.Errorf("invalid response format: %w", err)
	}
	return plan, nil
}

// mapGatewayError translates upstream HTTP statuses into the sentinel
// errors the handler maps to 429/402; everything else stays a generic
// upstream error.
func mapGatewayError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusTooManyRequests:
			return ErrRateLimited
		case http.StatusPaymentRequired:
			return ErrQuotaExceeded
		}
		return fmt.Errorf("AI gateway error: %d", apiErr.HTTPStatusCode)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		switch reqErr.HTTPStatusCode {
		case http.StatusTooManyRequests:
			return ErrRateLimited
		case http.StatusPaymentRequired:
			return ErrQuotaExceeded
		}
		return fmt.Errorf("AI gateway error: %d", reqErr.HTTPStatusCode)
	}

	return fmt.Errorf("failed to call AI gateway: %w", err)
}

// extractJSON pulls the first-to-last brace span out of a model reply.
// Models wrap JSON in prose or code fences often enough that parsing the
// raw content directly is not reliable.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}
	end := strings.LastIndex(s, "}")
	if end == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}
