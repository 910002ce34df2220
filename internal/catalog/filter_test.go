package catalog_test

import (
	"testing"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/catalog"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
)

func recipeWith(name string, mutate func(*model.Recipe)) model.Recipe {
	r := model.Recipe{
		Name:     name,
		Category: model.CategoryLunch,
		TotalMin: 25,
		Servings: 1,
		Ingredients: []model.Ingredient{
			{Name: "Rice", Amount: 80, Unit: "g", Category: "grains"},
		},
		Nutrition: model.Nutrition{Calories: 500},
	}
	if mutate != nil {
		mutate(&r)
	}
	return r
}

func TestFilterExcludesAllergens(t *testing.T) {
	t.Parallel()

	recipes := []model.Recipe{
		recipeWith("peanut bowl", func(r *model.Recipe) { r.Allergens = []string{"nuts"} }),
		recipeWith("plain bowl", nil),
	}
	p := model.UserProfile{Allergies: []string{"Nuts"}}
	got := catalog.Filter(recipes, p)
	if len(got) != 1 || got[0].Name != "plain bowl" {
		t.Fatalf("expected allergen filtering, got %+v", got)
	}
}

func TestFilterExcludedFoodTokenMatchesSubstring(t *testing.T) {
	t.Parallel()

	recipes := []model.Recipe{
		recipeWith("chicken bowl", func(r *model.Recipe) {
			r.Ingredients = append(r.Ingredients, model.Ingredient{Name: "Chicken breast", Amount: 180, Unit: "g"})
		}),
		recipeWith("veggie bowl", nil),
	}
	p := model.UserProfile{ExcludedFoods: []string{"chicken"}}
	got := catalog.Filter(recipes, p)
	if len(got) != 1 || got[0].Name != "veggie bowl" {
		t.Fatalf("expected excluded-food filtering, got %+v", got)
	}
}

func TestFilterDietFlags(t *testing.T) {
	t.Parallel()

	recipes := []model.Recipe{
		recipeWith("steak", nil),
		recipeWith("halloumi salad", func(r *model.Recipe) { r.DietFlags = []string{"vegetarian"} }),
		recipeWith("lentil curry", func(r *model.Recipe) { r.DietFlags = []string{"vegan"} }),
	}

	veggie := catalog.Filter(recipes, model.UserProfile{Diet: model.DietVegetarian})
	if len(veggie) != 2 {
		t.Fatalf("expected vegan recipes to satisfy vegetarian profiles, got %+v", veggie)
	}
	vegan := catalog.Filter(recipes, model.UserProfile{Diet: model.DietVegan})
	if len(vegan) != 1 || vegan[0].Name != "lentil curry" {
		t.Fatalf("expected only the vegan recipe, got %+v", vegan)
	}
	omni := catalog.Filter(recipes, model.UserProfile{Diet: model.DietOmnivore})
	if len(omni) != 3 {
		t.Fatalf("expected no diet filtering for omnivores, got %d", len(omni))
	}
}

func TestFilterCookingEffortCaps(t *testing.T) {
	t.Parallel()

	recipes := []model.Recipe{
		recipeWith("instant", func(r *model.Recipe) { r.TotalMin = 10 }),
		recipeWith("normal", func(r *model.Recipe) { r.TotalMin = 30 }),
		recipeWith("slow braise", func(r *model.Recipe) { r.TotalMin = 90 }),
	}

	if got := catalog.Filter(recipes, model.UserProfile{CookingEffort: model.EffortMinimal}); len(got) != 1 {
		t.Fatalf("minimal effort: expected 1 recipe, got %d", len(got))
	}
	if got := catalog.Filter(recipes, model.UserProfile{CookingEffort: model.EffortNormal}); len(got) != 2 {
		t.Fatalf("normal effort: expected 2 recipes, got %d", len(got))
	}
	if got := catalog.Filter(recipes, model.UserProfile{CookingEffort: model.EffortElaborate}); len(got) != 3 {
		t.Fatalf("elaborate effort: expected 3 recipes, got %d", len(got))
	}
}

func TestFilterEmptyResultIsValid(t *testing.T) {
	t.Parallel()

	recipes := []model.Recipe{
		recipeWith("nutty", func(r *model.Recipe) { r.Allergens = []string{"nuts"} }),
	}
	got := catalog.Filter(recipes, model.UserProfile{Allergies: []string{"nuts"}})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
