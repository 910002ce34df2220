package service_test

import (
	"testing"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/service"
)

func TestSaveProfileComputesDerivedTargets(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	p := saveTestProfile(t, sqldb)
	if p.TDEE != 2489 {
		t.Fatalf("expected TDEE 2489, got %d", p.TDEE)
	}
	if p.TargetCalories != 1989 {
		t.Fatalf("expected target calories 1989, got %d", p.TargetCalories)
	}
	if p.ProteinG < int(80*1.6)-1 {
		t.Fatalf("expected protein at or above the 1.6 g/kg floor, got %d", p.ProteinG)
	}
	if p.WaterGoalL != 3.1 {
		t.Fatalf("expected water goal 3.1, got %v", p.WaterGoalL)
	}
}

func TestSaveAndLoadProfileRoundTrip(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	_, err := service.SaveProfile(sqldb, service.SaveProfileInput{
		Gender:         model.GenderFemale,
		Age:            28,
		HeightCm:       165,
		WeightKg:       62,
		Goal:           model.GoalDefine,
		Occupation:     model.OccupationStanding,
		DailyActivity:  model.ActivityHigh,
		WeeklyTraining: 4,
		Diet:           model.DietVegetarian,
		CookingEffort:  model.EffortMinimal,
		Allergies:      []string{"nuts", "soy"},
		ExcludedFoods:  []string{"cilantro"},
		ActiveSlots:    []model.MealSlot{model.SlotBreakfast, model.SlotDinner, model.SlotLateSnack},
		HouseholdSize:  2,
		Budget:         model.BudgetLow,
	})
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}

	got, err := service.LoadProfile(sqldb)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if got == nil {
		t.Fatalf("expected a stored profile")
	}
	if got.Diet != model.DietVegetarian || got.CookingEffort != model.EffortMinimal {
		t.Fatalf("diet/effort did not round-trip: %+v", got)
	}
	if len(got.Allergies) != 2 || got.Allergies[1] != "soy" {
		t.Fatalf("allergies did not round-trip: %+v", got.Allergies)
	}
	if len(got.ExcludedFoods) != 1 || got.ExcludedFoods[0] != "cilantro" {
		t.Fatalf("excluded foods did not round-trip: %+v", got.ExcludedFoods)
	}
	if !got.ActiveSlots[model.SlotLateSnack] || got.ActiveSlots[model.SlotLunch] {
		t.Fatalf("active slots did not round-trip: %+v", got.ActiveSlots)
	}
	if got.TDEE <= 0 || got.TargetCalories >= got.TDEE {
		t.Fatalf("derived targets missing after load: tdee=%d target=%d", got.TDEE, got.TargetCalories)
	}
}

func TestSaveProfileUpsertsSingleRow(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	saveTestProfile(t, sqldb)
	if _, err := service.SaveProfile(sqldb, service.SaveProfileInput{
		Gender:        model.GenderMale,
		Age:           31,
		HeightCm:      175,
		WeightKg:      78,
		Goal:          model.GoalMaintain,
		Occupation:    model.OccupationSedentary,
		DailyActivity: model.ActivityLow,
	}); err != nil {
		t.Fatalf("update profile: %v", err)
	}

	var count int
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM profile`).Scan(&count); err != nil {
		t.Fatalf("count profiles: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected single profile row, got %d", count)
	}
	got, err := service.LoadProfile(sqldb)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if got.Age != 31 || got.Goal != model.GoalMaintain {
		t.Fatalf("profile edit was not applied: %+v", got)
	}
}

func TestLoadProfileBeforeOnboarding(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	got, err := service.LoadProfile(sqldb)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil before onboarding, got %+v", got)
	}
}

func TestSaveProfileRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	_, err := service.SaveProfile(sqldb, service.SaveProfileInput{
		Gender: model.GenderMale, Age: 0, HeightCm: 175, WeightKg: 80, Goal: model.GoalLose,
	})
	if err == nil {
		t.Fatalf("expected error for zero age")
	}
	_, err = service.SaveProfile(sqldb, service.SaveProfileInput{
		Gender: model.GenderMale, Age: 30, HeightCm: 175, WeightKg: 80, Goal: "bulk-forever",
	})
	if err == nil {
		t.Fatalf("expected error for invalid goal")
	}
}
