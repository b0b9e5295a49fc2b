package models

import (
	"gorm.io/gorm"
)

// DailyGoal holds each user's daily intake targets.
type DailyGoal struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null"`
	Calories float64 // e.g. 2000 kcal
	Protein  float64 // e.g. 150 g
	Carbs    float64 // e.g. 250 g
	Fats     float64 // e.g. 65 g
}
