package services

import "github.com/jackunq19/daily-fuel-tracker/models"

// foodCatalog is the compiled-in food database. Values are per the listed
// serving (100g unless noted). The catalog is read-only; search never
// mutates it, so concurrent requests need no coordination.
var foodCatalog = []models.FoodRecord{
	{ID: "1", Name: "Chicken Breast (Grilled)", Category: "Protein", Calories: 165, Protein: 31, Carbs: 0, Fats: 3.6, Fiber: 0, ServingSize: "100g", ServingWeight: 100, Source: "catalog"},
	{ID: "2", Name: "Brown Rice (Cooked)", Category: "Grains", Calories: 111, Protein: 2.6, Carbs: 23, Fats: 0.9, Fiber: 1.8, ServingSize: "100g", ServingWeight: 100, Source: "catalog"},
	{ID: "3", Name: "Banana", Category: "Fruits", Calories: 89, Protein: 1.1, Carbs: 23, Fats: 0.3, Fiber: 2.6, ServingSize: "100g", ServingWeight: 100, Source: "catalog"},
	{ID: "4", Name: "Egg (Whole, Boiled)", Category: "Eggs", Calories: 155, Protein: 13, Carbs: 1.1, Fats: 11, Fiber: 0, ServingSize: "100g", ServingWeight: 100, Source: "catalog"},
	{ID: "5", Name: "Omelette", Category: "Eggs", Calories: 154, Protein: 11, Carbs: 0.6, Fats: 12, Fiber: 0, ServingSize: "100g", ServingWeight: 100, Source: "catalog"},
	{ID: "6", Name: "Paneer", Category: "Dairy", Calories: 265, Protein: 18, Carbs: 1.2, Fats: 21, Fiber: 0, ServingSize: "100g", ServingWeight: 100, Source: "catalog"},
	{ID: "7", Name: "Dal (Cooked Lentils)", Category: "Legumes", Calories: 116, Protein: 9, Carbs: 20, Fats: 0.4, Fiber: 7.9, ServingSize: "100g", ServingWeight: 100, Source: "catalog"},
	{ID: "8", Name: "Roti/Chapati", Category: "Grains", Calories: 71, Protein: 2.7, Carbs: 15, Fats: 0.4, Fiber: 1.9, ServingSize: "1 piece (30g)", ServingWeight: 30, Source: "catalog"},
	{ID: "9", Name: "Apple", Category: "Fruits", Calories: 52, Protein: 0.3, Carbs: 14, Fats: 0.2, Fiber: 2.4, ServingSize: "100g", ServingWeight: 100, Source: "catalog"},
	{ID: "10", Name: "Oats (Cooked)", Category: "Grains", Calories: 71, Protein: 2.5, Carbs: 12, Fats: 1.5, Fiber: 1.7, ServingSize: "100g", ServingWeight: 100, Source: "catalog"},
	{ID: "11", Name: "Greek Yogurt", Category: "Dairy", Calories: 59, Protein: 10, Carbs: 3.6, Fats: 0.7, Fiber: 0, ServingSize: "100g", ServingWeight: 100, Source: "catalog"},
	{ID: "12", Name: "Almonds", Category: "Nuts", Calories: 579, Protein: 21, Carbs: 22, Fats: 50, Fiber: 12.5, ServingSize: "100g", ServingWeight: 100, Source: "catalog"},
	{ID: "13", Name: "Salmon (Grilled)", Category: "Protein", Calories: 208, Protein: 20, Carbs: 0, Fats: 13, Fiber: 0, ServingSize: "100g", ServingWeight: 100, Source: "catalog"},
	{ID: "14", Name: "Sweet Potato (Baked)", Category: "Vegetables", Calories: 86, Protein: 1.6, Carbs: 20, Fats: 0.1, Fiber: 3, ServingSize: "100g", ServingWeight: 100, Source: "catalog"},
	{ID: "15", Name: "Milk (Whole)", Category: "Dairy", Calories: 61, Protein: 3.2, Carbs: 4.8, Fats: 3.3, Fiber: 0, ServingSize: "100g", ServingWeight: 100, Source: "catalog"},
	{ID: "16", Name: "Idli", Category: "Grains", Calories: 39, Protein: 2, Carbs: 8, Fats: 0.1, Fiber: 0.4, ServingSize: "1 piece (30g)", ServingWeight: 30, Source: "catalog"},
	{ID: "17", Name: "Peanut Butter", Category: "Nuts", Calories: 588, Protein: 25, Carbs: 20, Fats: 50, Fiber: 6, ServingSize: "100g", ServingWeight: 100, Source: "catalog"},
	{ID: "18", Name: "White Rice (Cooked)", Category: "Grains", Calories: 130, Protein: 2.7, Carbs: 28, Fats: 0.3, Fiber: 0.4, ServingSize: "100g", ServingWeight: 100, Source: "catalog"},
	{ID: "19", Name: "Broccoli (Steamed)", Category: "Vegetables", Calories: 35, Protein: 2.4, Carbs: 7.2, Fats: 0.4, Fiber: 3.3, ServingSize: "100g", ServingWeight: 100, Source: "catalog"},
	{ID: "20", Name: "Cottage Cheese", Category: "Dairy", Calories: 98, Protein: 11, Carbs: 3.4, Fats: 4.3, Fiber: 0, ServingSize: "100g", ServingWeight: 100, Source: "catalog"},
}

// Catalog returns the compiled-in food catalog.
func Catalog() []models.FoodRecord {
	return foodCatalog
}
