package utils

import (
	"errors"
	"fmt"
	"math"
)

// ActivityMultipliers maps activity level strings to their TDEE multiplier.
// Also the source of truth for valid activity levels at the API boundary.
var ActivityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// goalAdjustments shifts TDEE toward the stated goal (kcal/day).
var goalAdjustments = map[string]float64{
	"lose":     -500,
	"maintain": 0,
	"gain":     500,
}

// minimumCalories is the floor below which a daily target is never pushed.
const minimumCalories = 1200

type CalculatorResult struct {
	BMR            int `json:"bmr"`
	TDEE           int `json:"tdee"`
	TargetCalories int `json:"targetCalories"`
	MinCalories    int `json:"minCalories"`
	MaxCalories    int `json:"maxCalories"`
	Protein        int `json:"protein"` // g
	Carbs          int `json:"carbs"`   // g
	Fats           int `json:"fats"`    // g
}

// CalculateTargets computes BMR via Mifflin-St Jeor, TDEE from the activity
// multiplier, a goal-adjusted daily calorie target with a 1200 kcal floor,
// and a 30/40/30 macro recommendation for that target.
// Height in centimeters, weight in kilograms.
func CalculateTargets(gender string, age int, heightCm, weightKg float64, activity, goal string) (CalculatorResult, error) {
	if age <= 0 || age > 130 {
		return CalculatorResult{}, errors.New("age out of plausible range")
	}
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return CalculatorResult{}, errors.New("height/weight out of plausible range")
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := ActivityMultipliers[activity]
	if !ok {
		return CalculatorResult{}, fmt.Errorf("unknown activity level %q", activity)
	}
	tdee := math.Round(bmr * mult)

	adjustment, ok := goalAdjustments[goal]
	if !ok {
		return CalculatorResult{}, fmt.Errorf("unknown goal %q", goal)
	}
	target := math.Max(minimumCalories, math.Round(tdee+adjustment))

	return CalculatorResult{
		BMR:            int(math.Round(bmr)),
		TDEE:           int(tdee),
		TargetCalories: int(target),
		MinCalories:    int(math.Max(minimumCalories, tdee-750)),
		MaxCalories:    int(tdee + 750),
		Protein:        int(math.Round(target * 0.3 / 4)),
		Carbs:          int(math.Round(target * 0.4 / 4)),
		Fats:           int(math.Round(target * 0.3 / 9)),
	}, nil
}
