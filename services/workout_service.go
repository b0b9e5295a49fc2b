package services

import (
	"errors"
	"time"

	"github.com/jackunq19/daily-fuel-tracker/config"
	"github.com/jackunq19/daily-fuel-tracker/models"
)

type SetRequest struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

type ExerciseRequest struct {
	Name string       `json:"name" binding:"required"`
	Sets []SetRequest `json:"sets"`
}

// ListWeek returns the user's workout days in [start, start+7d), oldest first.
func ListWeek(userID uint, start time.Time) ([]models.WorkoutDay, error) {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	end := start.Add(7 * 24 * time.Hour)

	var days []models.WorkoutDay
	err := config.DB.
		Preload("Exercises.Sets").
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date asc").
		Find(&days).Error
	return days, err
}

func CreateWorkoutDay(userID uint, day string, date time.Time, muscleGroup, status string, exercises []ExerciseRequest) (*models.WorkoutDay, error) {
	if status == "" {
		status = models.WorkoutStatusPlanned
	}

	wd := models.WorkoutDay{
		UserID:      userID,
		Day:         day,
		Date:        date,
		MuscleGroup: muscleGroup,
		Status:      status,
	}
	for _, ex := range exercises {
		e := models.Exercise{Name: ex.Name}
		for _, s := range ex.Sets {
			e.Sets = append(e.Sets, models.ExerciseSet{Reps: s.Reps, Weight: s.Weight})
		}
		wd.Exercises = append(wd.Exercises, e)
	}

	if err := config.DB.Create(&wd).Error; err != nil {
		return nil, err
	}
	return &wd, nil
}

func AddExercise(userID, dayID uint, req ExerciseRequest) (*models.Exercise, error) {
	day, err := findDay(userID, dayID)
	if err != nil {
		return nil, err
	}

	ex := models.Exercise{WorkoutDayID: day.ID, Name: req.Name}
	for _, s := range req.Sets {
		ex.Sets = append(ex.Sets, models.ExerciseSet{Reps: s.Reps, Weight: s.Weight})
	}
	if err := config.DB.Create(&ex).Error; err != nil {
		return nil, err
	}
	return &ex, nil
}

// UpdateSet edits one set's reps/weight/completed flag, then re-derives
// the owning exercise's completed flag and the day status.
func UpdateSet(userID, setID uint, reps int, weight float64, completed bool) (*models.ExerciseSet, error) {
	var set models.ExerciseSet
	if err := config.DB.First(&set, setID).Error; err != nil {
		return nil, err
	}

	var ex models.Exercise
	if err := config.DB.First(&ex, set.ExerciseID).Error; err != nil {
		return nil, err
	}
	if _, err := findDay(userID, ex.WorkoutDayID); err != nil {
		return nil, err
	}

	set.Reps = reps
	set.Weight = weight
	set.Completed = completed
	if err := config.DB.Save(&set).Error; err != nil {
		return nil, err
	}

	if err := refreshExercise(&ex); err != nil {
		return nil, err
	}
	return &set, refreshDayStatus(ex.WorkoutDayID)
}

// CompleteExercise marks an exercise and all of its sets done.
func CompleteExercise(userID, exerciseID uint) error {
	var ex models.Exercise
	if err := config.DB.First(&ex, exerciseID).Error; err != nil {
		return err
	}
	if _, err := findDay(userID, ex.WorkoutDayID); err != nil {
		return err
	}

	if err := config.DB.Model(&models.ExerciseSet{}).
		Where("exercise_id = ?", ex.ID).
		Update("completed", true).Error; err != nil {
		return err
	}
	ex.Completed = true
	if err := config.DB.Save(&ex).Error; err != nil {
		return err
	}
	return refreshDayStatus(ex.WorkoutDayID)
}

func DeleteWorkoutDay(userID, dayID uint) error {
	day, err := findDay(userID, dayID)
	if err != nil {
		return err
	}

	exerciseIDs := config.DB.Model(&models.Exercise{}).
		Select("id").
		Where("workout_day_id = ?", day.ID)
	if err := config.DB.Where("exercise_id IN (?)", exerciseIDs).
		Delete(&models.ExerciseSet{}).Error; err != nil {
		return err
	}
	if err := config.DB.Where("workout_day_id = ?", day.ID).
		Delete(&models.Exercise{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(day).Error
}

func findDay(userID, dayID uint) (*models.WorkoutDay, error) {
	var day models.WorkoutDay
	err := config.DB.Where("id = ? AND user_id = ?", dayID, userID).First(&day).Error
	if err != nil {
		return nil, errors.New("workout day not found")
	}
	return &day, nil
}

// refreshExercise sets Completed when every set underneath is done.
func refreshExercise(ex *models.Exercise) error {
	var remaining int64
	if err := config.DB.Model(&models.ExerciseSet{}).
		Where("exercise_id = ? AND completed = ?", ex.ID, false).
		Count(&remaining).Error; err != nil {
		return err
	}
	ex.Completed = remaining == 0
	return config.DB.Save(ex).Error
}

// refreshDayStatus rolls exercise progress up into the day status.
// Rest and skipped days are left alone; they are user-set states.
func refreshDayStatus(dayID uint) error {
	var day models.WorkoutDay
	if err := config.DB.Preload("Exercises.Sets").First(&day, dayID).Error; err != nil {
		return err
	}
	if day.Status == models.WorkoutStatusRest || day.Status == models.WorkoutStatusSkipped {
		return nil
	}

	total, done := 0, 0
	anySetDone := false
	for _, ex := range day.Exercises {
		total++
		if ex.Completed {
			done++
		}
		for _, s := range ex.Sets {
			if s.Completed {
				anySetDone = true
			}
		}
	}

	switch {
	case total > 0 && done == total:
		day.Status = models.WorkoutStatusCompleted
	case done > 0 || anySetDone:
		day.Status = models.WorkoutStatusPartial
	default:
		day.Status = models.WorkoutStatusPlanned
	}
	return config.DB.Save(&day).Error
}
