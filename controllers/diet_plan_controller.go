package controllers

import (
	"errors"
	"net/http"

	"github.com/jackunq19/daily-fuel-tracker/services"

	"github.com/gin-gonic/gin"
)

// POST /api/diet-plan
// Status mapping: 429 when the gateway rate-limits, 402 when quota is
// exhausted, 500 for configuration/upstream/parse failures. The plan
// object from the model is written back verbatim.
func GenerateDietPlan(c *gin.Context) {
	var req services.DietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := services.NewDietPlanService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	plan, err := svc.Generate(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrQuotaExceeded):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Data(http.StatusOK, "application/json", plan)
}
