package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS profile (
  id INTEGER PRIMARY KEY CHECK(id = 1),
  gender TEXT NOT NULL,
  age INTEGER NOT NULL CHECK(age > 0),
  height_cm REAL NOT NULL CHECK(height_cm > 0),
  weight_kg REAL NOT NULL CHECK(weight_kg > 0),
  target_weight_kg REAL NOT NULL DEFAULT 0,
  goal TEXT NOT NULL,
  occupation TEXT NOT NULL,
  daily_activity TEXT NOT NULL,
  weekly_training INTEGER NOT NULL DEFAULT 0 CHECK(weekly_training >= 0),
  diet TEXT NOT NULL DEFAULT 'omnivore',
  cooking_effort TEXT NOT NULL DEFAULT 'normal',
  allergies TEXT NOT NULL DEFAULT '',
  excluded_foods TEXT NOT NULL DEFAULT '',
  active_slots TEXT NOT NULL DEFAULT '',
  household_size INTEGER NOT NULL DEFAULT 1 CHECK(household_size > 0),
  budget TEXT NOT NULL DEFAULT 'medium',
  tdee INTEGER NOT NULL DEFAULT 0,
  target_calories INTEGER NOT NULL DEFAULT 0,
  protein_g INTEGER NOT NULL DEFAULT 0,
  carbs_g INTEGER NOT NULL DEFAULT 0,
  fat_g INTEGER NOT NULL DEFAULT 0,
  water_goal_l REAL NOT NULL DEFAULT 0,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS recipes (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  category TEXT NOT NULL CHECK(category IN ('breakfast', 'lunch', 'dinner', 'snack')),
  tags TEXT NOT NULL DEFAULT '',
  prep_min INTEGER NOT NULL DEFAULT 0 CHECK(prep_min >= 0),
  cook_min INTEGER NOT NULL DEFAULT 0 CHECK(cook_min >= 0),
  total_min INTEGER NOT NULL DEFAULT 0 CHECK(total_min >= 0),
  difficulty TEXT NOT NULL DEFAULT 'easy',
  servings REAL NOT NULL CHECK(servings > 0),
  calories INTEGER NOT NULL CHECK(calories >= 0),
  protein_g REAL NOT NULL DEFAULT 0 CHECK(protein_g >= 0),
  carbs_g REAL NOT NULL DEFAULT 0 CHECK(carbs_g >= 0),
  fat_g REAL NOT NULL DEFAULT 0 CHECK(fat_g >= 0),
  fiber_g REAL NOT NULL DEFAULT 0 CHECK(fiber_g >= 0),
  instructions_json TEXT NOT NULL DEFAULT '[]',
  allergens TEXT NOT NULL DEFAULT '',
  diet_flags TEXT NOT NULL DEFAULT '',
  meal_prep_ok INTEGER NOT NULL DEFAULT 0,
  storage_days INTEGER NOT NULL DEFAULT 0,
  source TEXT NOT NULL DEFAULT 'builtin',
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_recipes_category ON recipes(category);

CREATE TABLE IF NOT EXISTS recipe_ingredients (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  recipe_id INTEGER NOT NULL,
  position INTEGER NOT NULL DEFAULT 0,
  name TEXT NOT NULL,
  amount REAL NOT NULL CHECK(amount >= 0),
  unit TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  FOREIGN KEY(recipe_id) REFERENCES recipes(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_recipe_ingredients_recipe_id ON recipe_ingredients(recipe_id);

CREATE TABLE IF NOT EXISTS day_plans (
  date TEXT PRIMARY KEY,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS meal_slots (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  date TEXT NOT NULL,
  slot TEXT NOT NULL,
  scheduled_time TEXT NOT NULL DEFAULT '',
  position INTEGER NOT NULL DEFAULT 0,
  recipe_json TEXT NOT NULL,
  alternatives_json TEXT NOT NULL DEFAULT '[]',
  eaten INTEGER NOT NULL DEFAULT 0,
  favorite INTEGER NOT NULL DEFAULT 0,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  UNIQUE(date, slot),
  FOREIGN KEY(date) REFERENCES day_plans(date) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_meal_slots_date ON meal_slots(date);

CREATE TABLE IF NOT EXISTS shopping_checked (
  name TEXT PRIMARY KEY,
  checked_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
	{
		version: 2,
		name:    "water_logs",
		sql: `
CREATE TABLE IF NOT EXISTS water_logs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  date TEXT NOT NULL,
  amount_ml INTEGER NOT NULL CHECK(amount_ml > 0),
  logged_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_water_logs_date ON water_logs(date);
`,
	},
	{
		version: 3,
		name:    "food_logs",
		sql: `
CREATE TABLE IF NOT EXISTS food_logs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  date TEXT NOT NULL,
  name TEXT NOT NULL,
  brand TEXT NOT NULL DEFAULT '',
  barcode TEXT NOT NULL DEFAULT '',
  calories INTEGER NOT NULL DEFAULT 0 CHECK(calories >= 0),
  protein_g REAL NOT NULL DEFAULT 0 CHECK(protein_g >= 0),
  carbs_g REAL NOT NULL DEFAULT 0 CHECK(carbs_g >= 0),
  fat_g REAL NOT NULL DEFAULT 0 CHECK(fat_g >= 0),
  fiber_g REAL NOT NULL DEFAULT 0 CHECK(fiber_g >= 0),
  source TEXT NOT NULL DEFAULT 'manual',
  logged_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_food_logs_date ON food_logs(date);
`,
	},
	{
		version: 4,
		name:    "app_config",
		sql: `
CREATE TABLE IF NOT EXISTS app_config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	return nil
}
