package controllers

import (
	"net/http"

	"github.com/jackunq19/daily-fuel-tracker/utils"

	"github.com/gin-gonic/gin"
)

type CalculatorInput struct {
	Gender   string  `json:"gender" binding:"required,oneof=male female"`
	Age      int     `json:"age" binding:"required"`
	HeightCm float64 `json:"height_cm" binding:"required"`
	WeightKg float64 `json:"weight_kg" binding:"required"`
	Activity string  `json:"activity" binding:"required"`
	Goal     string  `json:"goal" binding:"required,oneof=lose maintain gain"`
}

// POST /api/calculator
func CalculateCalories(c *gin.Context) {
	var input CalculatorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := utils.CalculateTargets(
		input.Gender, input.Age, input.HeightCm, input.WeightKg, input.Activity, input.Goal,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
