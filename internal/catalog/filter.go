package catalog

import (
	"strings"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
)

// Filter returns the recipes a profile can eat: no shared allergen, no
// excluded-food token in any ingredient name, dietary flag honored, and
// total time within the profile's cooking effort. An empty result is a
// normal outcome; callers degrade rather than error.
func Filter(recipes []model.Recipe, p model.UserProfile) []model.Recipe {
	out := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if hasAnyAllergen(r, p.Allergies) {
			continue
		}
		if hasExcludedFood(r, p.ExcludedFoods) {
			continue
		}
		if !matchesDiet(r, p.Diet) {
			continue
		}
		if !withinEffort(r, p.CookingEffort) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func hasAnyAllergen(r model.Recipe, allergies []string) bool {
	for _, a := range allergies {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" {
			continue
		}
		for _, tag := range r.Allergens {
			if strings.ToLower(tag) == a {
				return true
			}
		}
	}
	return false
}

func hasExcludedFood(r model.Recipe, excluded []string) bool {
	for _, token := range excluded {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		for _, ing := range r.Ingredients {
			if strings.Contains(strings.ToLower(ing.Name), token) {
				return true
			}
		}
	}
	return false
}

// matchesDiet requires the matching dietary flag for vegetarian/vegan
// profiles. Vegan recipes also satisfy a vegetarian requirement.
func matchesDiet(r model.Recipe, diet model.DietType) bool {
	switch diet {
	case model.DietVegan:
		return hasDietFlag(r, "vegan")
	case model.DietVegetarian:
		return hasDietFlag(r, "vegetarian") || hasDietFlag(r, "vegan")
	default:
		return true
	}
}

func hasDietFlag(r model.Recipe, flag string) bool {
	for _, f := range r.DietFlags {
		if strings.EqualFold(f, flag) {
			return true
		}
	}
	return false
}

func withinEffort(r model.Recipe, effort model.CookingEffort) bool {
	switch effort {
	case model.EffortMinimal:
		return r.TotalMin <= 15
	case model.EffortNormal:
		return r.TotalMin <= 30
	default:
		return true
	}
}
