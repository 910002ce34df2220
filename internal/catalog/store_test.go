package catalog_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/catalog"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/db"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fitinn.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func TestEnsureSeededIsIdempotent(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	for i := 0; i < 2; i++ {
		if err := catalog.EnsureSeeded(sqldb); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}
	recipes, err := catalog.Load(sqldb)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	names := map[string]int{}
	for _, r := range recipes {
		names[r.Name]++
		if names[r.Name] > 1 {
			t.Fatalf("recipe %q seeded twice", r.Name)
		}
	}
	categories := map[model.RecipeCategory]int{}
	for _, r := range recipes {
		categories[r.Category]++
	}
	for _, cat := range []model.RecipeCategory{model.CategoryBreakfast, model.CategoryLunch, model.CategoryDinner, model.CategorySnack} {
		if categories[cat] == 0 {
			t.Fatalf("bundled catalog has no %s recipes", cat)
		}
	}
}

func TestInsertAndLoadRoundTrip(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	in := model.Recipe{
		Name:       "Test Bowl",
		Category:   model.CategoryLunch,
		Tags:       []string{"quick", "test"},
		PrepMin:    5,
		CookMin:    10,
		TotalMin:   15,
		Difficulty: model.DifficultyEasy,
		Servings:   2,
		Ingredients: []model.Ingredient{
			{Name: "Rice", Amount: 160, Unit: "g", Category: "grains"},
			{Name: "Tomato", Amount: 2, Unit: "piece", Category: "produce"},
		},
		Nutrition:    model.Nutrition{Calories: 700, ProteinG: 30, CarbsG: 100, FatG: 15, FiberG: 8},
		Instructions: []string{"Cook rice.", "Add tomato."},
		Allergens:    []string{"gluten"},
		DietFlags:    []string{"vegetarian"},
		MealPrepOK:   true,
		StorageDays:  3,
		Source:       "test",
	}
	id, err := catalog.Insert(sqldb, in)
	if err != nil {
		t.Fatalf("insert recipe: %v", err)
	}

	got, err := catalog.ByIDOrName(sqldb, "Test Bowl")
	if err != nil {
		t.Fatalf("resolve recipe: %v", err)
	}
	if got.ID != id || got.Category != model.CategoryLunch || got.Servings != 2 {
		t.Fatalf("unexpected recipe: %+v", got)
	}
	if len(got.Ingredients) != 2 || got.Ingredients[0].Name != "Rice" || got.Ingredients[1].Amount != 2 {
		t.Fatalf("ingredients did not round-trip: %+v", got.Ingredients)
	}
	if got.Nutrition.Calories != 700 || got.Nutrition.FiberG != 8 {
		t.Fatalf("nutrition did not round-trip: %+v", got.Nutrition)
	}
	if len(got.Instructions) != 2 || !got.MealPrepOK || got.StorageDays != 3 {
		t.Fatalf("metadata did not round-trip: %+v", got)
	}
}

func TestInsertRejectsInvalidCategory(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	_, err := catalog.Insert(sqldb, model.Recipe{Name: "Bad", Category: "brunch", Servings: 1})
	if err == nil {
		t.Fatalf("expected invalid category error")
	}
}

func TestCacheBucketsByCategory(t *testing.T) {
	t.Parallel()

	cache := catalog.NewCache([]model.Recipe{
		{ID: 1, Name: "a", Category: model.CategoryBreakfast},
		{ID: 2, Name: "b", Category: model.CategorySnack},
		{ID: 3, Name: "c", Category: model.CategorySnack},
	})
	if len(cache.Category(model.CategorySnack)) != 2 {
		t.Fatalf("expected 2 snacks, got %d", len(cache.Category(model.CategorySnack)))
	}
	if len(cache.Category(model.CategoryDinner)) != 0 {
		t.Fatalf("expected no dinners")
	}
	cache.Rebuild([]model.Recipe{{ID: 9, Name: "z", Category: model.CategoryDinner}})
	if len(cache.Category(model.CategorySnack)) != 0 || len(cache.Category(model.CategoryDinner)) != 1 {
		t.Fatalf("rebuild did not invalidate buckets")
	}
}
