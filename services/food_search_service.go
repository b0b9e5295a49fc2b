package services

import (
	"os"
	"sort"
	"strings"

	"github.com/jackunq19/daily-fuel-tracker/models"
)

const (
	defaultPageSize = 1
	maxPageSize     = 10
)

// FoodSearchService answers free-text food queries. The default source is
// the compiled-in catalog; set FOOD_SOURCE=usda to proxy USDA FoodData
// Central instead (same contract, zero-calorie records discarded either way).
type FoodSearchService struct {
	catalog []models.FoodRecord
	usda    *USDAService
}

func NewFoodSearchService() *FoodSearchService {
	if os.Getenv("FOOD_SOURCE") == "usda" {
		return &FoodSearchService{usda: NewUSDAService()}
	}
	return &FoodSearchService{catalog: Catalog()}
}

// Search returns up to pageSize best matches for query. A query shorter
// than 2 characters after trimming is a no-op, not an error: it yields an
// empty result so the UI can render its empty state.
func (s *FoodSearchService) Search(query string, pageSize int) ([]models.FoodRecord, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < 2 {
		return []models.FoodRecord{}, nil
	}

	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	if s.usda != nil {
		return s.usda.SearchFoods(q, pageSize)
	}
	return rankCatalog(s.catalog, q, pageSize), nil
}

// rankCatalog runs the match + rank pass over the catalog. A record is a
// candidate when its name or category contains the query, or when every
// whitespace token of the query appears somewhere in the name (covers
// multi-word queries with different word order). Records without a
// positive calorie value are treated as incomplete and never returned.
func rankCatalog(catalog []models.FoodRecord, q string, pageSize int) []models.FoodRecord {
	tokens := strings.Fields(q)

	candidates := make([]models.FoodRecord, 0, len(catalog))
	for _, r := range catalog {
		if r.Calories <= 0 {
			continue
		}
		name := strings.ToLower(r.Name)
		category := strings.ToLower(r.Category)
		if strings.Contains(name, q) || strings.Contains(category, q) || allTokensMatch(name, tokens) {
			candidates = append(candidates, r)
		}
	}

	// Three ranking tiers, each breaking ties for the previous one:
	// exact name equality, then name-starts-with-query, then shorter
	// names first (the shorter entry is usually the generic food the
	// user meant rather than a derived dish).
	sort.SliceStable(candidates, func(i, j int) bool {
		ni := strings.ToLower(candidates[i].Name)
		nj := strings.ToLower(candidates[j].Name)

		ei, ej := ni == q, nj == q
		if ei != ej {
			return ei
		}
		pi, pj := strings.HasPrefix(ni, q), strings.HasPrefix(nj, q)
		if pi != pj {
			return pi
		}
		return len(ni) < len(nj)
	})

	if len(candidates) > pageSize {
		candidates = candidates[:pageSize]
	}
	return candidates
}

func allTokensMatch(name string, tokens []string) bool {
	for _, t := range tokens {
		if !strings.Contains(name, t) {
			return false
		}
	}
	return true
}
