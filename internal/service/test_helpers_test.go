package service_test

import (
	"database/sql"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/catalog"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/db"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/planner"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/service"
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

func seededGenerator(t *testing.T, sqldb *sql.DB, seed int64) *planner.Generator {
	t.Helper()
	if err := catalog.EnsureSeeded(sqldb); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	recipes, err := catalog.Load(sqldb)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return planner.NewGenerator(catalog.NewCache(recipes), rand.New(rand.NewSource(seed)))
}

func saveTestProfile(t *testing.T, sqldb *sql.DB) *model.UserProfile {
	t.Helper()
	p, err := service.SaveProfile(sqldb, service.SaveProfileInput{
		Gender:         model.GenderMale,
		Age:            30,
		HeightCm:       175,
		WeightKg:       80,
		TargetWeightKg: 75,
		Goal:           model.GoalLose,
		Occupation:     model.OccupationSedentary,
		DailyActivity:  model.ActivityModerate,
		WeeklyTraining: 3,
		CookingEffort:  model.EffortElaborate,
		ActiveSlots: []model.MealSlot{
			model.SlotBreakfast, model.SlotLunch, model.SlotDinner, model.SlotAfternoonSnack,
		},
	})
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}
	return p
}
