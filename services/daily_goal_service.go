package services

import (
	"errors"

	"github.com/jackunq19/daily-fuel-tracker/config"
	"github.com/jackunq19/daily-fuel-tracker/models"

	"gorm.io/gorm"
)

// Defaults shown before a user ever saves goals.
var defaultGoals = models.DailyGoal{
	Calories: 2000,
	Protein:  150,
	Carbs:    250,
	Fats:     65,
}

// GetGoals returns the user's saved goals, or the defaults when none
// exist yet. The defaults are not persisted until the user saves.
func GetGoals(userID uint) (models.DailyGoal, error) {
	var goal models.DailyGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = defaultGoals
		goal.UserID = userID
		return goal, nil
	}
	return goal, err
}

func UpsertGoals(userID uint, calories, protein, carbs, fats float64) (models.DailyGoal, error) {
	var goal models.DailyGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{
			UserID:   userID,
			Calories: calories,
			Protein:  protein,
			Carbs:    carbs,
			Fats:     fats,
		}
		return goal, config.DB.Create(&goal).Error
	}
	if err != nil {
		return goal, err
	}

	goal.Calories = calories
	goal.Protein = protein
	goal.Carbs = carbs
	goal.Fats = fats
	return goal, config.DB.Save(&goal).Error
}
