package fitinn

import (
	"testing"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/provider/mealdb"
)

func TestMealToRecipeMapsFields(t *testing.T) {
	meal := mealdb.Meal{
		Name:         "Shakshuka",
		Category:     "Breakfast",
		Area:         "Tunisian",
		Instructions: []string{"Simmer the sauce.", "Add the eggs."},
		Ingredients: []mealdb.MealIngredient{
			{Name: "Eggs", Amount: 4, Unit: ""},
			{Name: "Tomatoes", Amount: 400, Unit: "g"},
		},
	}

	r := mealToRecipe(meal, "")
	if r.Category != model.CategoryBreakfast {
		t.Fatalf("expected breakfast category, got %s", r.Category)
	}
	if r.Source != "mealdb" || r.Servings != 2 {
		t.Fatalf("unexpected defaults: %+v", r)
	}
	if len(r.Ingredients) != 2 || r.Ingredients[1].Amount != 400 {
		t.Fatalf("ingredients not mapped: %+v", r.Ingredients)
	}
	if len(r.Tags) != 1 || r.Tags[0] != "tunisian" {
		t.Fatalf("area tag not mapped: %+v", r.Tags)
	}
}

func TestMealToRecipeCategoryOverrideAndGuess(t *testing.T) {
	meal := mealdb.Meal{Name: "Brownies", Category: "Dessert"}
	if r := mealToRecipe(meal, "lunch"); r.Category != model.CategoryLunch {
		t.Fatalf("flag override ignored: %s", r.Category)
	}
	if r := mealToRecipe(meal, ""); r.Category != model.CategorySnack {
		t.Fatalf("dessert should map to snack, got %s", r.Category)
	}
	if r := mealToRecipe(mealdb.Meal{Name: "Beef Stew", Category: "Beef"}, ""); r.Category != model.CategoryDinner {
		t.Fatalf("unknown categories should map to dinner, got %s", r.Category)
	}
}

func TestParseSlotRejectsUnknown(t *testing.T) {
	if _, err := parseSlot("brunch"); err == nil {
		t.Fatalf("expected error for unknown slot")
	}
	slot, err := parseSlot(" Morning-Snack ")
	if err != nil {
		t.Fatalf("parse slot: %v", err)
	}
	if slot != model.SlotMorningSnack {
		t.Fatalf("unexpected slot %s", slot)
	}
}
