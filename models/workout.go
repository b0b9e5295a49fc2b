package models

import (
	"time"

	"gorm.io/gorm"
)

// Day statuses. "planned" and "rest" are set by the user, "completed" and
// "partial" are rolled up from the exercises underneath.
const (
	WorkoutStatusCompleted = "completed"
	WorkoutStatusPartial   = "partial"
	WorkoutStatusSkipped   = "skipped"
	WorkoutStatusPlanned   = "planned"
	WorkoutStatusRest      = "rest"
)

// One planned training day in a user's week
type WorkoutDay struct {
	gorm.Model
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	Day         string     `json:"day"` // "Monday"|"Tuesday"|…
	Date        time.Time  `gorm:"index;not null" json:"date"`
	MuscleGroup string     `json:"muscle_group"`
	Status      string     `gorm:"size:20;default:planned" json:"status"`
	Exercises   []Exercise `json:"exercises"`
}

type Exercise struct {
	gorm.Model
	WorkoutDayID uint          `gorm:"index;not null" json:"workout_day_id"`
	Name         string        `gorm:"not null" json:"name"`
	Completed    bool          `json:"completed"`
	Sets         []ExerciseSet `json:"sets"`
}

type ExerciseSet struct {
	gorm.Model
	ExerciseID uint    `gorm:"index;not null" json:"exercise_id"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"` // kg
	Completed  bool    `json:"completed"`
}
