package controllers

import (
	"net/http"

	"github.com/jackunq19/daily-fuel-tracker/config"
	"github.com/jackunq19/daily-fuel-tracker/models"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":          user.Email,
		"full_name":      user.FullName,
		"gender":         user.Gender,
		"age":            user.Age,
		"height_cm":      user.HeightCm,
		"weight_kg":      user.WeightKg,
		"activity_level": user.ActivityLevel,
		"fitness_goal":   user.FitnessGoal,
	})
}

type UpdateProfileInput struct {
	FullName      string  `json:"full_name"`
	Gender        string  `json:"gender"`
	Age           int     `json:"age"`
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	ActivityLevel string  `json:"activity_level"`
	FitnessGoal   string  `json:"fitness_goal"`
}

func UpdateProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	user.FullName = input.FullName
	user.Gender = input.Gender
	user.Age = input.Age
	user.HeightCm = input.HeightCm
	user.WeightKg = input.WeightKg
	user.ActivityLevel = input.ActivityLevel
	user.FitnessGoal = input.FitnessGoal

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}
