package controllers

import (
	"net/http"

	"github.com/jackunq19/daily-fuel-tracker/models"
	"github.com/jackunq19/daily-fuel-tracker/services"

	"github.com/gin-gonic/gin"
)

type foodSearchInput struct {
	Query    string `json:"query"`
	PageSize int    `json:"pageSize"`
}

// POST /api/food/search
// Always answers with the {foods, total} shape — on any failure the
// error message rides along with an empty result set so clients can
// render an empty state instead of crashing on a missing field.
func SearchFoods(c *gin.Context) {
	var input foodSearchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
			"foods": []models.FoodRecord{},
			"total": 0,
		})
		return
	}

	svc := services.NewFoodSearchService()
	foods, err := svc.Search(input.Query, input.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
			"foods": []models.FoodRecord{},
			"total": 0,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"foods": foods,
		"total": len(foods),
	})
}
