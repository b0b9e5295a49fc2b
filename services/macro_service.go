package services

import (
	"fmt"
	"math"
)

// macroSplit is the percent of daily calories assigned to each macro.
// Splits always sum to 100.
type macroSplit struct {
	Protein int
	Carbs   int
	Fats    int
}

var macroDistribution = map[string]macroSplit{
	"lose":     {Protein: 35, Carbs: 35, Fats: 30},
	"maintain": {Protein: 30, Carbs: 45, Fats: 25},
	"gain":     {Protein: 30, Carbs: 50, Fats: 20},
}

// MacroBudget is the deterministic gram budget handed to the meal plan
// prompt. Grams use the standard Atwater factors: 4 kcal/g for protein
// and carbs, 9 kcal/g for fat.
type MacroBudget struct {
	Calories       int `json:"calories"`
	ProteinPercent int `json:"proteinPercent"`
	CarbsPercent   int `json:"carbsPercent"`
	FatsPercent    int `json:"fatsPercent"`
	ProteinGrams   int `json:"proteinGrams"`
	CarbsGrams     int `json:"carbsGrams"`
	FatsGrams      int `json:"fatsGrams"`
}

// DeriveMacroBudget looks up the percent split for the goal and converts
// it to gram targets. Pure; unit-testable without any external call.
func DeriveMacroBudget(calories int, goal string) (MacroBudget, error) {
	if calories <= 0 {
		return MacroBudget{}, fmt.Errorf("calories must be positive, got %d", calories)
	}
	split, ok := macroDistribution[goal]
	if !ok {
		return MacroBudget{}, fmt.Errorf("unknown goal %q (want lose, maintain or gain)", goal)
	}

	c := float64(calories)
	return MacroBudget{
		Calories:       calories,
		ProteinPercent: split.Protein,
		CarbsPercent:   split.Carbs,
		FatsPercent:    split.Fats,
		ProteinGrams:   int(math.Round(c * float64(split.Protein) / 100 / 4)),
		CarbsGrams:     int(math.Round(c * float64(split.Carbs) / 100 / 4)),
		FatsGrams:      int(math.Round(c * float64(split.Fats) / 100 / 9)),
	}, nil
}
