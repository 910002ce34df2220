package service_test

import (
	"testing"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/service"
)

func TestLogWaterSumsPerDate(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	saveTestProfile(t, sqldb)
	for _, ml := range []int{250, 500, 330} {
		if err := service.LogWater(sqldb, "2026-09-07", ml); err != nil {
			t.Fatalf("log water: %v", err)
		}
	}
	if err := service.LogWater(sqldb, "2026-09-08", 200); err != nil {
		t.Fatalf("log water other day: %v", err)
	}

	status, err := service.WaterForDate(sqldb, "2026-09-07")
	if err != nil {
		t.Fatalf("water status: %v", err)
	}
	if status.IntakeMl != 1080 {
		t.Fatalf("expected 1080 ml, got %d", status.IntakeMl)
	}
	if status.GoalL != 3.1 {
		t.Fatalf("expected goal 3.1 l from profile, got %v", status.GoalL)
	}
}

func TestLogWaterRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	if err := service.LogWater(sqldb, "2026-09-07", 0); err == nil {
		t.Fatalf("expected error for zero amount")
	}
}

func TestLogFoodAndListForDate(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	id, err := service.LogFood(sqldb, service.LogFoodInput{
		Date:      "2026-09-07",
		Name:      "Protein bar",
		Brand:     "Brand Co",
		Barcode:   "40123456",
		Nutrition: model.Nutrition{Calories: 210, ProteinG: 20, CarbsG: 22, FatG: 7},
		Source:    "openfoodfacts",
	})
	if err != nil {
		t.Fatalf("log food: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}

	logs, err := service.FoodLogForDate(sqldb, "2026-09-07")
	if err != nil {
		t.Fatalf("list food logs: %v", err)
	}
	if len(logs) != 1 || logs[0].Name != "Protein bar" || logs[0].Nutrition.Calories != 210 {
		t.Fatalf("food log did not round-trip: %+v", logs)
	}
	if logs[0].Source != "openfoodfacts" || logs[0].Barcode != "40123456" {
		t.Fatalf("source metadata did not round-trip: %+v", logs[0])
	}
}
