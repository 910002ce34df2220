package service

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/planner"
)

// GeneratePlan builds a fresh day plan and replaces whatever was stored for
// that date. Slot totals are not persisted; they are derived on load.
func GeneratePlan(db *sql.DB, gen *planner.Generator, p model.UserProfile, date string) (*model.DayPlan, error) {
	date, err := resolveDate(date)
	if err != nil {
		return nil, err
	}
	plan := gen.BuildDay(p, date)

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin plan tx: %w", err)
	}
	if _, err := tx.Exec(`
INSERT INTO day_plans(date) VALUES(?)
ON CONFLICT(date) DO UPDATE SET updated_at=CURRENT_TIMESTAMP
`, date); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("upsert day plan %s: %w", date, err)
	}
	if _, err := tx.Exec(`DELETE FROM meal_slots WHERE date = ?`, date); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("clear meal slots for %s: %w", date, err)
	}
	for i, meal := range plan.Meals {
		recipeJSON, err := json.Marshal(meal.Recipe)
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("encode recipe for slot %s: %w", meal.Slot, err)
		}
		altsJSON, err := json.Marshal(meal.Alternatives)
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("encode alternatives for slot %s: %w", meal.Slot, err)
		}
		if _, err := tx.Exec(`
INSERT INTO meal_slots(date, slot, scheduled_time, position, recipe_json, alternatives_json)
VALUES(?, ?, ?, ?, ?, ?)
`, date, string(meal.Slot), meal.ScheduledTime, i, string(recipeJSON), string(altsJSON)); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("insert slot %s for %s: %w", meal.Slot, date, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit plan tx: %w", err)
	}
	return PlanForDate(db, date)
}

// PlanForDate loads a stored day plan, or nil when none exists for the
// date. Totals and water intake are always recomputed from their sources.
func PlanForDate(db *sql.DB, date string) (*model.DayPlan, error) {
	date, err := resolveDate(date)
	if err != nil {
		return nil, err
	}
	var exists int
	if err := db.QueryRow(`SELECT 1 FROM day_plans WHERE date = ?`, date).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("check day plan %s: %w", date, err)
	}

	rows, err := db.Query(`
SELECT slot, scheduled_time, recipe_json, alternatives_json, eaten, favorite
FROM meal_slots
WHERE date = ?
ORDER BY position
`, date)
	if err != nil {
		return nil, fmt.Errorf("load meal slots for %s: %w", date, err)
	}
	defer rows.Close()

	plan := &model.DayPlan{Date: date}
	for rows.Next() {
		var meal model.MealPlan
		var slot, recipeJSON, altsJSON string
		var eaten, favorite int
		if err := rows.Scan(&slot, &meal.ScheduledTime, &recipeJSON, &altsJSON, &eaten, &favorite); err != nil {
			return nil, fmt.Errorf("scan meal slot: %w", err)
		}
		meal.Slot = model.MealSlot(slot)
		meal.Eaten = eaten != 0
		meal.Favorite = favorite != 0
		if err := json.Unmarshal([]byte(recipeJSON), &meal.Recipe); err != nil {
			return nil, fmt.Errorf("decode recipe for slot %s: %w", slot, err)
		}
		if err := json.Unmarshal([]byte(altsJSON), &meal.Alternatives); err != nil {
			return nil, fmt.Errorf("decode alternatives for slot %s: %w", slot, err)
		}
		plan.Meals = append(plan.Meals, meal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meal slots: %w", err)
	}
	plan.Totals = planner.Totals(plan.Meals)

	if err := db.QueryRow(`SELECT IFNULL(SUM(amount_ml), 0) FROM water_logs WHERE date = ?`, date).Scan(&plan.WaterIntakeMl); err != nil {
		return nil, fmt.Errorf("sum water intake for %s: %w", date, err)
	}
	var waterGoal sql.NullFloat64
	if err := db.QueryRow(`SELECT water_goal_l FROM profile WHERE id = 1`).Scan(&waterGoal); err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("load water goal: %w", err)
	}
	plan.WaterGoalL = waterGoal.Float64
	return plan, nil
}

// GetOrCreatePlan returns the stored plan for the date, generating one on
// first visit.
func GetOrCreatePlan(db *sql.DB, gen *planner.Generator, p model.UserProfile, date string) (*model.DayPlan, error) {
	plan, err := PlanForDate(db, date)
	if err != nil {
		return nil, err
	}
	if plan != nil {
		return plan, nil
	}
	return GeneratePlan(db, gen, p, date)
}

func MarkEaten(db *sql.DB, date string, slot model.MealSlot, eaten bool) error {
	date, err := resolveDate(date)
	if err != nil {
		return err
	}
	res, err := db.Exec(`
UPDATE meal_slots SET eaten = ?, updated_at = CURRENT_TIMESTAMP WHERE date = ? AND slot = ?
`, boolToInt(eaten), date, string(slot))
	if err != nil {
		return fmt.Errorf("mark slot %s eaten: %w", slot, err)
	}
	return requireSlot(res, date, slot)
}

func ToggleFavorite(db *sql.DB, date string, slot model.MealSlot) error {
	date, err := resolveDate(date)
	if err != nil {
		return err
	}
	res, err := db.Exec(`
UPDATE meal_slots SET favorite = 1 - favorite, updated_at = CURRENT_TIMESTAMP WHERE date = ? AND slot = ?
`, date, string(slot))
	if err != nil {
		return fmt.Errorf("toggle favorite for slot %s: %w", slot, err)
	}
	return requireSlot(res, date, slot)
}

// SwapMeal replaces a slot's recipe with its first alternative. The previous
// recipe joins the alternatives list so the swap can be undone, de-duplicated
// by id and capped at two entries.
func SwapMeal(db *sql.DB, date string, slot model.MealSlot) (*model.MealPlan, error) {
	date, err := resolveDate(date)
	if err != nil {
		return nil, err
	}
	var recipeJSON, altsJSON string
	err = db.QueryRow(`
SELECT recipe_json, alternatives_json FROM meal_slots WHERE date = ? AND slot = ?
`, date, string(slot)).Scan(&recipeJSON, &altsJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("no %s slot planned for %s", slot, date)
		}
		return nil, fmt.Errorf("load slot %s: %w", slot, err)
	}
	var current model.Recipe
	var alternatives []model.Recipe
	if err := json.Unmarshal([]byte(recipeJSON), &current); err != nil {
		return nil, fmt.Errorf("decode recipe for slot %s: %w", slot, err)
	}
	if err := json.Unmarshal([]byte(altsJSON), &alternatives); err != nil {
		return nil, fmt.Errorf("decode alternatives for slot %s: %w", slot, err)
	}
	if len(alternatives) == 0 {
		return nil, fmt.Errorf("no alternatives available for %s on %s", slot, date)
	}

	next := alternatives[0]
	rest := append([]model.Recipe{}, alternatives[1:]...)
	rest = append(rest, current)
	seen := map[int64]bool{next.ID: true}
	deduped := make([]model.Recipe, 0, len(rest))
	for _, r := range rest {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		deduped = append(deduped, r)
		if len(deduped) == 2 {
			break
		}
	}

	nextJSON, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("encode swapped recipe: %w", err)
	}
	newAltsJSON, err := json.Marshal(deduped)
	if err != nil {
		return nil, fmt.Errorf("encode swapped alternatives: %w", err)
	}
	if _, err := db.Exec(`
UPDATE meal_slots SET recipe_json = ?, alternatives_json = ?, eaten = 0, updated_at = CURRENT_TIMESTAMP
WHERE date = ? AND slot = ?
`, string(nextJSON), string(newAltsJSON), date, string(slot)); err != nil {
		return nil, fmt.Errorf("swap slot %s: %w", slot, err)
	}
	return &model.MealPlan{Slot: slot, Recipe: next, Alternatives: deduped}, nil
}

// ClearPlans deletes all stored day plans; meal slots cascade. Checked
// shopping state is left untouched on purpose.
func ClearPlans(db *sql.DB) error {
	if _, err := db.Exec(`DELETE FROM day_plans`); err != nil {
		return fmt.Errorf("clear day plans: %w", err)
	}
	return nil
}

// PlansInRange loads every stored plan between from and to inclusive.
func PlansInRange(db *sql.DB, from, to string) ([]model.DayPlan, error) {
	from, err := resolveDate(from)
	if err != nil {
		return nil, err
	}
	to, err = resolveDate(to)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(`SELECT date FROM day_plans WHERE date >= ? AND date <= ? ORDER BY date`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list day plans: %w", err)
	}
	defer rows.Close()

	dates := make([]string, 0)
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("scan day plan date: %w", err)
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate day plans: %w", err)
	}

	plans := make([]model.DayPlan, 0, len(dates))
	for _, date := range dates {
		plan, err := PlanForDate(db, date)
		if err != nil {
			return nil, err
		}
		if plan != nil {
			plans = append(plans, *plan)
		}
	}
	return plans, nil
}

func requireSlot(res sql.Result, date string, slot model.MealSlot) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolve affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no %s slot planned for %s", slot, date)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
