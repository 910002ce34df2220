package planner

import (
	"math"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
)

// Scaling factors are clamped so a 2000 kcal recipe never collapses into a
// 50 kcal snack portion (or the reverse); the result approximates the
// target instead of hitting it exactly.
const (
	minScaleFactor = 0.3
	maxScaleFactor = 3.0
)

// Scale returns a copy of the recipe rescaled towards targetCalories.
// Servings and ingredient amounts are rounded to 1 decimal, nutrition
// fields to the nearest integer. The input recipe is never mutated; a
// non-positive target or a zero-calorie recipe is returned unchanged.
func Scale(r model.Recipe, targetCalories int) model.Recipe {
	if targetCalories <= 0 || r.Nutrition.Calories <= 0 {
		return r
	}
	factor := float64(targetCalories) / float64(r.Nutrition.Calories)
	if factor < minScaleFactor {
		factor = minScaleFactor
	}
	if factor > maxScaleFactor {
		factor = maxScaleFactor
	}

	scaled := r
	scaled.Servings = round1(r.Servings * factor)
	scaled.Ingredients = make([]model.Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ing.Amount = round1(ing.Amount * factor)
		scaled.Ingredients[i] = ing
	}
	scaled.Nutrition = model.Nutrition{
		Calories: int(math.Round(float64(r.Nutrition.Calories) * factor)),
		ProteinG: math.Round(r.Nutrition.ProteinG * factor),
		CarbsG:   math.Round(r.Nutrition.CarbsG * factor),
		FatG:     math.Round(r.Nutrition.FatG * factor),
		FiberG:   math.Round(r.Nutrition.FiberG * factor),
	}
	return scaled
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
