package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "pure json",
			input: `{"meals": []}`,
			want:  `{"meals": []}`,
		},
		{
			name:  "prose before and after",
			input: "Here is your plan:\n```json\n{\"meals\": [{\"name\": \"Breakfast\"}]}\n```\nEnjoy!",
			want:  `{"meals": [{"name": "Breakfast"}]}`,
		},
		{
			name:  "no json object",
			input: "Sorry, I cannot help with that.",
			want:  "",
		},
		{
			name:  "closing brace before opening",
			input: "} nothing here {",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.input))
		})
	}
}

func TestBuildUserPrompt(t *testing.T) {
	req := DietPlanRequest{
		Calories:      2000,
		Goal:          "maintain",
		DietType:      "vegetarian",
		MealsPerDay:   3,
		ActivityLevel: "moderate",
	}
	budget, err := DeriveMacroBudget(req.Calories, req.Goal)
	require.NoError(t, err)

	prompt := buildUserPrompt(req, budget)

	assert.Contains(t, prompt, "Daily calorie target: 2000 kcal")
	assert.Contains(t, prompt, "Goal: Maintain weight")
	assert.Contains(t, prompt, "Protein 150g, Carbs 225g, Fats 56g")
	assert.Contains(t, prompt, "Preferred cuisines: Any")
	assert.Contains(t, prompt, "Allergies/restrictions: None")
	assert.Contains(t, prompt, "Breakfast and lunch should be larger meals")
}

func TestBuildUserPrompt_ListsJoined(t *testing.T) {
	req := DietPlanRequest{
		Calories:          1800,
		Goal:              "lose",
		DietType:          "non-vegetarian",
		MealsPerDay:       4,
		CuisinePreference: []string{"Indian", "Mediterranean"},
		Allergies:         []string{"peanuts", "shellfish"},
		ActivityLevel:     "active",
	}
	budget, err := DeriveMacroBudget(req.Calories, req.Goal)
	require.NoError(t, err)

	prompt := buildUserPrompt(req, budget)

	assert.Contains(t, prompt, "Goal: Weight loss")
	assert.Contains(t, prompt, "Preferred cuisines: Indian, Mediterranean")
	assert.Contains(t, prompt, "Allergies/restrictions: peanuts, shellfish")
}

func TestNewDietPlanService_MissingKey(t *testing.T) {
	t.Setenv("AI_GATEWAY_KEY", "")

	_, err := NewDietPlanService()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AI_GATEWAY_KEY")
}

func gatewayTestService(t *testing.T, handler http.HandlerFunc) *DietPlanService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Setenv("AI_GATEWAY_KEY", "test-key")
	t.Setenv("AI_GATEWAY_URL", srv.URL+"/v1")

	svc, err := NewDietPlanService()
	require.NoError(t, err)
	return svc
}

func chatCompletionBody(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	return string(b)
}

var testPlanRequest = DietPlanRequest{
	Calories:    2000,
	Goal:        "maintain",
	DietType:    "vegetarian",
	MealsPerDay: 3,
}

func TestGenerate_PassesPlanThroughVerbatim(t *testing.T) {
	content := "Sure! Here is the plan:\n" +
		`{"meals": [], "dailyTotal": {"calories": 2000, "protein": 150, "carbs": 225, "fats": 56}, "tips": [], "waterIntake": "2.5 liters"}` +
		"\nLet me know if you want changes."

	var gotBody []byte
	svc := gatewayTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chatCompletionBody(content))
	})

	plan, err := svc.Generate(context.Background(), testPlanRequest)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(plan, &parsed))
	assert.Contains(t, parsed, "meals")
	assert.Equal(t, "2.5 liters", parsed["waterIntake"])

	// The outgoing request carries the system/user prompt pair and the
	// derived macro targets.
	var outbound struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &outbound))
	assert.Equal(t, "google/gemini-2.5-flash", outbound.Model)
	require.Len(t, outbound.Messages, 2)
	assert.Equal(t, "system", outbound.Messages[0].Role)
	assert.Contains(t, outbound.Messages[0].Content, "professional nutritionist")
	assert.Equal(t, "user", outbound.Messages[1].Role)
	assert.Contains(t, outbound.Messages[1].Content, "Protein 150g, Carbs 225g, Fats 56g")
}

func TestGenerate_NoJSONInReply(t *testing.T) {
	svc := gatewayTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chatCompletionBody("I am unable to produce a plan right now."))
	})

	_, err := svc.Generate(context.Background(), testPlanRequest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid response format")
}

func TestGenerate_RateLimitMapsToSentinel(t *testing.T) {
	svc := gatewayTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error": {"message": "rate limited", "type": "rate_limit_exceeded"}}`)
	})

	_, err := svc.Generate(context.Background(), testPlanRequest)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestGenerate_QuotaMapsToSentinel(t *testing.T) {
	svc := gatewayTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		fmt.Fprint(w, `{"error": {"message": "quota exhausted", "type": "insufficient_quota"}}`)
	})

	_, err := svc.Generate(context.Background(), testPlanRequest)
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestGenerate_InvalidCaloriesFailsBeforeAnyCall(t *testing.T) {
	called := false
	svc := gatewayTestService(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	bad := testPlanRequest
	bad.Calories = 0
	_, err := svc.Generate(context.Background(), bad)
	require.Error(t, err)
	assert.False(t, called, "macro derivation failure must not reach the gateway")
}
