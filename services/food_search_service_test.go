package services

import (
	"testing"

	"github.com/jackunq19/daily-fuel-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogService(records []models.FoodRecord) *FoodSearchService {
	return &FoodSearchService{catalog: records}
}

func TestSearch_ShortQueryIsNoOp(t *testing.T) {
	svc := catalogService(Catalog())

	for _, q := range []string{"", " ", "e", "  a  "} {
		foods, err := svc.Search(q, 10)
		require.NoError(t, err)
		assert.Empty(t, foods, "query %q should yield no results", q)
	}
}

func TestSearch_NameSubstringMatch(t *testing.T) {
	svc := catalogService(Catalog())

	foods, err := svc.Search("banana", 5)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Banana", foods[0].Name)
}

func TestSearch_CategoryMatch(t *testing.T) {
	svc := catalogService(Catalog())

	foods, err := svc.Search("dairy", 10)
	require.NoError(t, err)
	require.NotEmpty(t, foods)
	for _, f := range foods {
		assert.Equal(t, "Dairy", f.Category)
	}
}

func TestSearch_AllTokensFallback(t *testing.T) {
	svc := catalogService(Catalog())

	// Word order differs from the catalog name "Chicken Breast (Grilled)"
	foods, err := svc.Search("grilled chicken", 5)
	require.NoError(t, err)
	require.NotEmpty(t, foods)
	assert.Equal(t, "Chicken Breast (Grilled)", foods[0].Name)
}

func TestSearch_ZeroCalorieRecordNeverReturned(t *testing.T) {
	records := []models.FoodRecord{
		{ID: "1", Name: "Water", Category: "Drinks", Calories: 0},
		{ID: "2", Name: "Watermelon", Category: "Fruits", Calories: 30},
	}
	svc := catalogService(records)

	foods, err := svc.Search("water", 10)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Watermelon", foods[0].Name)
}

func TestSearch_RankingTiers(t *testing.T) {
	// Both match the query via category "Eggs"; the generic record wins
	// the tie through the prefix tier, not insertion order.
	records := []models.FoodRecord{
		{ID: "1", Name: "Omelette", Category: "Eggs", Calories: 154},
		{ID: "2", Name: "Egg, boiled", Category: "Eggs", Calories: 155},
	}
	svc := catalogService(records)

	foods, err := svc.Search("egg", 2)
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "Egg, boiled", foods[0].Name)
	assert.Equal(t, "Omelette", foods[1].Name)
}

func TestSearch_ExactMatchBeatsPrefixAndShorter(t *testing.T) {
	records := []models.FoodRecord{
		{ID: "1", Name: "Oat", Category: "Grains", Calories: 70},
		{ID: "2", Name: "Oatmeal Cookie", Category: "Snacks", Calories: 450},
		{ID: "3", Name: "Savoury Oatmeal", Category: "Grains", Calories: 90},
		{ID: "4", Name: "Oatmeal", Category: "Grains", Calories: 71},
	}
	svc := catalogService(records)

	foods, err := svc.Search("oatmeal", 4)
	require.NoError(t, err)
	require.Len(t, foods, 3) // "Oat" does not contain "oatmeal"
	assert.Equal(t, "Oatmeal", foods[0].Name, "exact name equality ranks first")
	assert.Equal(t, "Oatmeal Cookie", foods[1].Name, "prefix match ranks second")
	assert.Equal(t, "Savoury Oatmeal", foods[2].Name)
}

func TestSearch_ExactMatchIsCaseInsensitive(t *testing.T) {
	svc := catalogService(Catalog())

	foods, err := svc.Search("PANEER", 1)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Paneer", foods[0].Name)
}

func TestSearch_PageSizeDefaultsToBestMatch(t *testing.T) {
	svc := catalogService(Catalog())

	foods, err := svc.Search("grains", 0)
	require.NoError(t, err)
	assert.Len(t, foods, 1, "pageSize 0 should return the single best match")
}

func TestSearch_PageSizeIsCapped(t *testing.T) {
	records := make([]models.FoodRecord, 0, 15)
	for i := 0; i < 15; i++ {
		records = append(records, models.FoodRecord{
			Name: "Tomato Variant", Category: "Vegetables", Calories: 20,
		})
	}
	svc := catalogService(records)

	foods, err := svc.Search("tomato", 100)
	require.NoError(t, err)
	assert.Len(t, foods, maxPageSize)
}

func TestSearch_NoMatchesReturnsEmptySlice(t *testing.T) {
	svc := catalogService(Catalog())

	foods, err := svc.Search("xylophone", 5)
	require.NoError(t, err)
	assert.NotNil(t, foods)
	assert.Empty(t, foods)
}
