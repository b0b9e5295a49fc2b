package services

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jackunq19/daily-fuel-tracker/models"
)

// USDAService proxies the USDA FoodData Central search endpoint. The demo
// key is enough for basic searches, so running without USDA_API_KEY works.
type USDAService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewUSDAService() *USDAService {
	apiKey := os.Getenv("USDA_API_KEY")
	if apiKey == "" {
		apiKey = "DEMO_KEY"
	}
	return &USDAService{
		apiKey:  apiKey,
		baseURL: "https://api.nal.usda.gov/fdc/v1/foods/search",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type usdaSearchResponse struct {
	Foods []struct {
		FdcID                int    `json:"fdcId"`
		Description          string `json:"description"`
		LowercaseDescription string `json:"lowercaseDescription"`
		FoodCategory         string `json:"foodCategory"`
		FoodNutrients        []struct {
			NutrientName string  `json:"nutrientName"`
			Value        float64 `json:"value"`
		} `json:"foodNutrients"`
	} `json:"foods"`
}

// SearchFoods queries FoodData Central and maps each hit to a FoodRecord
// per 100g. Nutrients are matched by fuzzy name (the API reports e.g.
// "Energy", "Protein", "Carbohydrate, by difference", "Total lipid (fat)").
// Hits without a positive calorie value are discarded.
func (s *USDAService) SearchFoods(query string, pageSize int) ([]models.FoodRecord, error) {
	u := fmt.Sprintf(
		"%s?api_key=%s&query=%s&pageSize=5&dataType=%s",
		s.baseURL, s.apiKey, url.QueryEscape(query), url.QueryEscape("Foundation,SR Legacy"),
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call USDA search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read USDA response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("USDA API error %d: %s", resp.StatusCode, string(body))
	}

	var sr usdaSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse USDA JSON: %w", err)
	}

	results := make([]models.FoodRecord, 0, len(sr.Foods))
	for _, f := range sr.Foods {
		find := func(name string) float64 {
			for _, n := range f.FoodNutrients {
				if strings.Contains(strings.ToLower(n.NutrientName), strings.ToLower(name)) {
					return n.Value
				}
			}
			return 0
		}

		name := f.Description
		if name == "" {
			name = f.LowercaseDescription
		}
		if name == "" {
			name = "Unknown"
		}
		category := f.FoodCategory
		if category == "" {
			category = "General"
		}

		rec := models.FoodRecord{
			ID:            strconv.Itoa(f.FdcID),
			Name:          name,
			Category:      category,
			Calories:      math.Round(find("Energy")),
			Protein:       roundTenth(find("Protein")),
			Carbs:         roundTenth(find("Carbohydrate")),
			Fats:          roundTenth(find("Total lipid")),
			Fiber:         roundTenth(find("Fiber")),
			ServingSize:   "100g",
			ServingWeight: 100,
			Source:        "usda",
		}
		if rec.Calories <= 0 {
			continue
		}
		results = append(results, rec)
	}

	if len(results) > pageSize {
		results = results[:pageSize]
	}
	return results, nil
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
