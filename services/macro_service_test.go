package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMacroDistribution_SplitsSumToHundred(t *testing.T) {
	for goal, split := range macroDistribution {
		assert.Equal(t, 100, split.Protein+split.Carbs+split.Fats, "goal %q", goal)
	}
}

func TestDeriveMacroBudget_MaintainExample(t *testing.T) {
	budget, err := DeriveMacroBudget(2000, "maintain")
	require.NoError(t, err)

	assert.Equal(t, 2000, budget.Calories)
	assert.Equal(t, 30, budget.ProteinPercent)
	assert.Equal(t, 45, budget.CarbsPercent)
	assert.Equal(t, 25, budget.FatsPercent)
	assert.Equal(t, 150, budget.ProteinGrams)
	assert.Equal(t, 225, budget.CarbsGrams)
	assert.Equal(t, 56, budget.FatsGrams)
}

func TestDeriveMacroBudget_GramsRecombineToCalories(t *testing.T) {
	// Rounding each gram figure independently can cost at most half a
	// gram per macro: ±2 kcal for protein/carbs, ±4.5 for fat.
	for _, goal := range []string{"lose", "maintain", "gain"} {
		for _, calories := range []int{1200, 1850, 2000, 2473, 3600} {
			budget, err := DeriveMacroBudget(calories, goal)
			require.NoError(t, err)

			recombined := budget.ProteinGrams*4 + budget.CarbsGrams*4 + budget.FatsGrams*9
			assert.LessOrEqual(t, math.Abs(float64(recombined-calories)), 9.0,
				"goal %q calories %d: recombined %d", goal, calories, recombined)
		}
	}
}

func TestDeriveMacroBudget_UnknownGoal(t *testing.T) {
	_, err := DeriveMacroBudget(2000, "bulk")
	assert.Error(t, err)
}

func TestDeriveMacroBudget_NonPositiveCalories(t *testing.T) {
	_, err := DeriveMacroBudget(0, "maintain")
	assert.Error(t, err)

	_, err = DeriveMacroBudget(-100, "lose")
	assert.Error(t, err)
}
