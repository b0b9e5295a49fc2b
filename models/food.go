package models

// FoodRecord is one entry of the food catalog. The catalog is seed data
// compiled into the binary — it is never persisted or mutated at runtime,
// so there are no gorm tags here. Numbers describe the reference portion
// in ServingSize (typically 100g).
type FoodRecord struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fats          float64 `json:"fats"`
	Fiber         float64 `json:"fiber"`
	ServingSize   string  `json:"servingSize"`
	ServingWeight float64 `json:"servingWeight"`
	Source        string  `json:"source"` // "catalog" | "usda"
}
