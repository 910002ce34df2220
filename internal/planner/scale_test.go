package planner_test

import (
	"testing"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/planner"
)

func testRecipe(id int64, name string, cat model.RecipeCategory, calories int) model.Recipe {
	return model.Recipe{
		ID:       id,
		Name:     name,
		Category: cat,
		Servings: 1,
		Ingredients: []model.Ingredient{
			{Name: name + " base", Amount: 100, Unit: "g", Category: "pantry"},
		},
		Nutrition: model.Nutrition{Calories: calories, ProteinG: 20, CarbsG: 40, FatG: 10, FiberG: 4},
	}
}

func TestScaleClampsLowFactor(t *testing.T) {
	t.Parallel()

	r := testRecipe(1, "big dinner", model.CategoryDinner, 800)
	scaled := planner.Scale(r, 200)
	// Raw factor 0.25 clamps to 0.3.
	if scaled.Nutrition.Calories != 240 {
		t.Fatalf("expected clamped calories 240, got %d", scaled.Nutrition.Calories)
	}
	if scaled.Ingredients[0].Amount != 30 {
		t.Fatalf("expected ingredient amount 30, got %v", scaled.Ingredients[0].Amount)
	}
	if scaled.Servings != 0.3 {
		t.Fatalf("expected servings 0.3, got %v", scaled.Servings)
	}
}

func TestScaleClampsHighFactor(t *testing.T) {
	t.Parallel()

	r := testRecipe(1, "tiny snack", model.CategorySnack, 100)
	scaled := planner.Scale(r, 900)
	if scaled.Nutrition.Calories != 300 {
		t.Fatalf("expected clamped calories 300, got %d", scaled.Nutrition.Calories)
	}
}

func TestScaleIdentityAtOwnCalories(t *testing.T) {
	t.Parallel()

	r := testRecipe(1, "lunch", model.CategoryLunch, 550)
	scaled := planner.Scale(r, 550)
	if scaled.Nutrition != r.Nutrition {
		t.Fatalf("expected unchanged nutrition, got %+v", scaled.Nutrition)
	}
	if scaled.Ingredients[0].Amount != r.Ingredients[0].Amount {
		t.Fatalf("expected unchanged ingredient amount, got %v", scaled.Ingredients[0].Amount)
	}
}

func TestScaleNoOpOnInvalidInputs(t *testing.T) {
	t.Parallel()

	r := testRecipe(1, "lunch", model.CategoryLunch, 550)
	if got := planner.Scale(r, 0); got.Nutrition.Calories != 550 {
		t.Fatalf("expected no-op on zero target, got %+v", got.Nutrition)
	}
	zero := testRecipe(2, "empty", model.CategoryLunch, 0)
	if got := planner.Scale(zero, 400); got.Nutrition.Calories != 0 {
		t.Fatalf("expected no-op on zero-calorie recipe, got %+v", got.Nutrition)
	}
}

func TestScaleDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	r := testRecipe(1, "dinner", model.CategoryDinner, 600)
	_ = planner.Scale(r, 300)
	if r.Ingredients[0].Amount != 100 || r.Nutrition.Calories != 600 {
		t.Fatalf("input recipe was mutated: %+v", r)
	}
}
