package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
)

// Insert stores a recipe and its ingredients in one transaction and returns
// the new id. Recipe names are unique; inserting a duplicate name fails.
func Insert(db *sql.DB, r model.Recipe) (int64, error) {
	if strings.TrimSpace(r.Name) == "" {
		return 0, fmt.Errorf("recipe name is required")
	}
	if r.Servings <= 0 {
		return 0, fmt.Errorf("servings must be > 0")
	}
	if r.Nutrition.Calories < 0 {
		return 0, fmt.Errorf("calories must be >= 0")
	}
	switch r.Category {
	case model.CategoryBreakfast, model.CategoryLunch, model.CategoryDinner, model.CategorySnack:
	default:
		return 0, fmt.Errorf("invalid recipe category %q", r.Category)
	}

	instructions, err := json.Marshal(r.Instructions)
	if err != nil {
		return 0, fmt.Errorf("encode instructions: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin recipe tx: %w", err)
	}
	res, err := tx.Exec(`
INSERT INTO recipes(name, category, tags, prep_min, cook_min, total_min, difficulty, servings,
  calories, protein_g, carbs_g, fat_g, fiber_g, instructions_json, allergens, diet_flags,
  meal_prep_ok, storage_days, source)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, strings.TrimSpace(r.Name), string(r.Category), joinList(r.Tags), r.PrepMin, r.CookMin, r.TotalMin,
		string(r.Difficulty), r.Servings, r.Nutrition.Calories, r.Nutrition.ProteinG, r.Nutrition.CarbsG,
		r.Nutrition.FatG, r.Nutrition.FiberG, string(instructions), joinList(r.Allergens),
		joinList(r.DietFlags), boolToInt(r.MealPrepOK), r.StorageDays, r.Source)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("insert recipe %q: %w", r.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("resolve recipe id: %w", err)
	}
	for i, ing := range r.Ingredients {
		if _, err := tx.Exec(`
INSERT INTO recipe_ingredients(recipe_id, position, name, amount, unit, category)
VALUES(?, ?, ?, ?, ?, ?)
`, id, i, strings.TrimSpace(ing.Name), ing.Amount, ing.Unit, ing.Category); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert ingredient %q: %w", ing.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit recipe tx: %w", err)
	}
	return id, nil
}

// EnsureSeeded inserts the bundled recipe set, skipping recipes whose name
// already exists. Safe to call on every startup.
func EnsureSeeded(db *sql.DB) error {
	for _, r := range builtinRecipes {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM recipes WHERE name = ?`, r.Name).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check bundled recipe %q: %w", r.Name, err)
		}
		if _, err := Insert(db, r); err != nil {
			return fmt.Errorf("seed bundled recipe %q: %w", r.Name, err)
		}
	}
	return nil
}

// Load reads the full catalog, ingredients included, into memory.
func Load(db *sql.DB) ([]model.Recipe, error) {
	rows, err := db.Query(`
SELECT id, name, category, tags, prep_min, cook_min, total_min, difficulty, servings,
  calories, protein_g, carbs_g, fat_g, fiber_g, instructions_json, allergens, diet_flags,
  meal_prep_ok, storage_days, source
FROM recipes
ORDER BY id
`)
	if err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}
	defer rows.Close()

	recipes := make([]model.Recipe, 0)
	for rows.Next() {
		var r model.Recipe
		var tags, instructions, allergens, dietFlags string
		var mealPrep int
		if err := rows.Scan(&r.ID, &r.Name, &r.Category, &tags, &r.PrepMin, &r.CookMin, &r.TotalMin,
			&r.Difficulty, &r.Servings, &r.Nutrition.Calories, &r.Nutrition.ProteinG, &r.Nutrition.CarbsG,
			&r.Nutrition.FatG, &r.Nutrition.FiberG, &instructions, &allergens, &dietFlags,
			&mealPrep, &r.StorageDays, &r.Source); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		r.Tags = splitList(tags)
		r.Allergens = splitList(allergens)
		r.DietFlags = splitList(dietFlags)
		r.MealPrepOK = mealPrep != 0
		if err := json.Unmarshal([]byte(instructions), &r.Instructions); err != nil {
			return nil, fmt.Errorf("decode instructions for recipe %d: %w", r.ID, err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}

	ingRows, err := db.Query(`
SELECT recipe_id, name, amount, unit, category
FROM recipe_ingredients
ORDER BY recipe_id, position
`)
	if err != nil {
		return nil, fmt.Errorf("load ingredients: %w", err)
	}
	defer ingRows.Close()

	byID := make(map[int64]int, len(recipes))
	for i, r := range recipes {
		byID[r.ID] = i
	}
	for ingRows.Next() {
		var recipeID int64
		var ing model.Ingredient
		if err := ingRows.Scan(&recipeID, &ing.Name, &ing.Amount, &ing.Unit, &ing.Category); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		if i, ok := byID[recipeID]; ok {
			recipes[i].Ingredients = append(recipes[i].Ingredients, ing)
		}
	}
	if err := ingRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ingredients: %w", err)
	}
	return recipes, nil
}

// ByIDOrName resolves a single recipe by numeric id or exact name.
func ByIDOrName(db *sql.DB, idOrName string) (*model.Recipe, error) {
	idOrName = strings.TrimSpace(idOrName)
	if idOrName == "" {
		return nil, fmt.Errorf("recipe identifier is required")
	}
	recipes, err := Load(db)
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		if fmt.Sprint(recipes[i].ID) == idOrName || strings.EqualFold(recipes[i].Name, idOrName) {
			return &recipes[i], nil
		}
	}
	return nil, fmt.Errorf("recipe %q not found", idOrName)
}

func joinList(items []string) string {
	return strings.Join(items, ",")
}

func splitList(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
