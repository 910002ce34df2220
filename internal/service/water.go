package service

import (
	"database/sql"
	"fmt"
)

type WaterStatus struct {
	Date     string
	IntakeMl int
	GoalL    float64
}

func LogWater(db *sql.DB, date string, amountMl int) error {
	date, err := resolveDate(date)
	if err != nil {
		return err
	}
	if err := validatePositiveInt("amount", amountMl); err != nil {
		return err
	}
	if _, err := db.Exec(`INSERT INTO water_logs(date, amount_ml) VALUES(?, ?)`, date, amountMl); err != nil {
		return fmt.Errorf("log water for %s: %w", date, err)
	}
	return nil
}

func WaterForDate(db *sql.DB, date string) (*WaterStatus, error) {
	date, err := resolveDate(date)
	if err != nil {
		return nil, err
	}
	status := &WaterStatus{Date: date}
	if err := db.QueryRow(`SELECT IFNULL(SUM(amount_ml), 0) FROM water_logs WHERE date = ?`, date).Scan(&status.IntakeMl); err != nil {
		return nil, fmt.Errorf("sum water for %s: %w", date, err)
	}
	var goal sql.NullFloat64
	if err := db.QueryRow(`SELECT water_goal_l FROM profile WHERE id = 1`).Scan(&goal); err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("load water goal: %w", err)
	}
	status.GoalL = goal.Float64
	return status, nil
}
