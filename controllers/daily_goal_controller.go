package controllers

import (
	"net/http"

	"github.com/jackunq19/daily-fuel-tracker/services"

	"github.com/gin-gonic/gin"
)

func GetGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	goal, err := services.GetGoals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"calories": goal.Calories,
		"protein":  goal.Protein,
		"carbs":    goal.Carbs,
		"fats":     goal.Fats,
	})
}

type GoalsInput struct {
	Calories float64 `json:"calories" binding:"required,gt=0"`
	Protein  float64 `json:"protein" binding:"required,gt=0"`
	Carbs    float64 `json:"carbs" binding:"required,gt=0"`
	Fats     float64 `json:"fats" binding:"required,gt=0"`
}

func UpdateGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	var input GoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.UpsertGoals(userID, input.Calories, input.Protein, input.Carbs, input.Fats)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, goal)
}
