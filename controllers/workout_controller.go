package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jackunq19/daily-fuel-tracker/services"

	"github.com/gin-gonic/gin"
)

// GET /api/workouts/week?start=2025-01-06 (defaults to today)
func ListWorkoutWeek(c *gin.Context) {
	userID := c.GetUint("userID")

	start := time.Now()
	if s := c.Query("start"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start must be YYYY-MM-DD"})
			return
		}
		start = parsed
	}

	days, err := services.ListWeek(userID, start)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, days)
}

type CreateWorkoutDayInput struct {
	Day         string                     `json:"day" binding:"required"`
	Date        time.Time                  `json:"date" binding:"required"`
	MuscleGroup string                     `json:"muscle_group"`
	Status      string                     `json:"status" binding:"omitempty,oneof=completed partial skipped planned rest"`
	Exercises   []services.ExerciseRequest `json:"exercises"`
}

func CreateWorkoutDay(c *gin.Context) {
	userID := c.GetUint("userID")

	var input CreateWorkoutDayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := services.CreateWorkoutDay(userID, input.Day, input.Date, input.MuscleGroup, input.Status, input.Exercises)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, day)
}

func AddExercise(c *gin.Context) {
	userID := c.GetUint("userID")
	dayID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	var input services.ExerciseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ex, err := services.AddExercise(userID, dayID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ex)
}

type UpdateSetInput struct {
	Reps      int     `json:"reps" binding:"required,gt=0"`
	Weight    float64 `json:"weight"`
	Completed bool    `json:"completed"`
}

func UpdateSet(c *gin.Context) {
	userID := c.GetUint("userID")
	setID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	var input UpdateSetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set, err := services.UpdateSet(userID, setID, input.Reps, input.Weight, input.Completed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, set)
}

func CompleteExercise(c *gin.Context) {
	userID := c.GetUint("userID")
	exerciseID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	if err := services.CompleteExercise(userID, exerciseID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "exercise completed"})
}

func DeleteWorkoutDay(c *gin.Context) {
	userID := c.GetUint("userID")
	dayID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	if err := services.DeleteWorkoutDay(userID, dayID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "workout day deleted"})
}

// parseIDParam reads a numeric :id path param; on failure it writes the
// 400 itself and returns a non-nil error so callers just bail.
func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, err
	}
	return uint(id), nil
}
