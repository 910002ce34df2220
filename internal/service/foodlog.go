package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
)

type LogFoodInput struct {
	Date      string
	Name      string
	Brand     string
	Barcode   string
	Nutrition model.Nutrition
	Source    string
}

// LogFood records an ad-hoc food entry (manual or barcode-sourced) outside
// the planned meals.
func LogFood(db *sql.DB, in LogFoodInput) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return 0, fmt.Errorf("food name is required")
	}
	if in.Nutrition.Calories < 0 {
		return 0, fmt.Errorf("calories must be >= 0")
	}
	date, err := resolveDate(in.Date)
	if err != nil {
		return 0, err
	}
	if in.Source == "" {
		in.Source = "manual"
	}
	res, err := db.Exec(`
INSERT INTO food_logs(date, name, brand, barcode, calories, protein_g, carbs_g, fat_g, fiber_g, source)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, date, in.Name, strings.TrimSpace(in.Brand), strings.TrimSpace(in.Barcode), in.Nutrition.Calories,
		in.Nutrition.ProteinG, in.Nutrition.CarbsG, in.Nutrition.FatG, in.Nutrition.FiberG, in.Source)
	if err != nil {
		return 0, fmt.Errorf("log food %q: %w", in.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve food log id: %w", err)
	}
	return id, nil
}

func FoodLogForDate(db *sql.DB, date string) ([]model.FoodLog, error) {
	date, err := resolveDate(date)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(`
SELECT id, date, name, brand, barcode, calories, protein_g, carbs_g, fat_g, fiber_g, source, logged_at
FROM food_logs
WHERE date = ?
ORDER BY logged_at
`, date)
	if err != nil {
		return nil, fmt.Errorf("list food logs for %s: %w", date, err)
	}
	defer rows.Close()

	logs := make([]model.FoodLog, 0)
	for rows.Next() {
		var l model.FoodLog
		if err := rows.Scan(&l.ID, &l.Date, &l.Name, &l.Brand, &l.Barcode, &l.Nutrition.Calories,
			&l.Nutrition.ProteinG, &l.Nutrition.CarbsG, &l.Nutrition.FatG, &l.Nutrition.FiberG,
			&l.Source, &l.LoggedAt); err != nil {
			return nil, fmt.Errorf("scan food log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food logs: %w", err)
	}
	return logs, nil
}
