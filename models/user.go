package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string
	// Optional profile fields used by the calorie calculator defaults
	Gender        string
	Age           int
	HeightCm      float64
	WeightKg      float64
	ActivityLevel string
	FitnessGoal   string
}
