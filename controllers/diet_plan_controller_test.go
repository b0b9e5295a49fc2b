package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dietPlanRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/diet-plan", GenerateDietPlan)
	return r
}

func TestGenerateDietPlan_MalformedBody(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/diet-plan", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	dietPlanRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "error")
}

func TestGenerateDietPlan_MissingCredentialIsFatal(t *testing.T) {
	t.Setenv("AI_GATEWAY_KEY", "")

	body := `{"calories": 2000, "goal": "maintain", "dietType": "vegetarian", "mealsPerDay": 3}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/diet-plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	dietPlanRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "AI_GATEWAY_KEY")
}

func TestGenerateDietPlan_InvalidGoalRejected(t *testing.T) {
	body := `{"calories": 2000, "goal": "bulk", "dietType": "vegetarian", "mealsPerDay": 3}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/diet-plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	dietPlanRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
