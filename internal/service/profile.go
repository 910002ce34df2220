package service

import (
	"database/sql"
	"fmt"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/nutrition"
)

type SaveProfileInput struct {
	Gender         model.Gender
	Age            int
	HeightCm       float64
	WeightKg       float64
	TargetWeightKg float64
	Goal           model.Goal
	Occupation     model.Occupation
	DailyActivity  model.ActivityLevel
	WeeklyTraining int
	Diet           model.DietType
	CookingEffort  model.CookingEffort
	Allergies      []string
	ExcludedFoods  []string
	ActiveSlots    []model.MealSlot
	HouseholdSize  int
	Budget         model.BudgetClass
}

// SaveProfile validates the questionnaire answers, computes the derived
// energy targets and upserts the single profile row.
func SaveProfile(db *sql.DB, in SaveProfileInput) (*model.UserProfile, error) {
	if err := validatePositiveInt("age", in.Age); err != nil {
		return nil, err
	}
	if err := validatePositiveFloat("height", in.HeightCm); err != nil {
		return nil, err
	}
	if err := validatePositiveFloat("weight", in.WeightKg); err != nil {
		return nil, err
	}
	if in.WeeklyTraining < 0 {
		return nil, fmt.Errorf("training frequency must be >= 0")
	}
	switch in.Goal {
	case model.GoalLose, model.GoalGain, model.GoalMaintain, model.GoalDefine, model.GoalPerformance:
	default:
		return nil, fmt.Errorf("invalid goal %q", in.Goal)
	}
	if in.HouseholdSize <= 0 {
		in.HouseholdSize = 1
	}
	if in.Diet == "" {
		in.Diet = model.DietOmnivore
	}
	if in.CookingEffort == "" {
		in.CookingEffort = model.EffortNormal
	}
	if in.Budget == "" {
		in.Budget = model.BudgetMedium
	}
	if len(in.ActiveSlots) == 0 {
		in.ActiveSlots = []model.MealSlot{model.SlotBreakfast, model.SlotLunch, model.SlotDinner}
	}

	p := model.UserProfile{
		Gender:         in.Gender,
		Age:            in.Age,
		HeightCm:       in.HeightCm,
		WeightKg:       in.WeightKg,
		TargetWeightKg: in.TargetWeightKg,
		Goal:           in.Goal,
		Occupation:     in.Occupation,
		DailyActivity:  in.DailyActivity,
		WeeklyTraining: in.WeeklyTraining,
		Diet:           in.Diet,
		CookingEffort:  in.CookingEffort,
		Allergies:      in.Allergies,
		ExcludedFoods:  in.ExcludedFoods,
		HouseholdSize:  in.HouseholdSize,
		Budget:         in.Budget,
		ActiveSlots:    make(map[model.MealSlot]bool, len(in.ActiveSlots)),
	}
	slots := make([]string, 0, len(in.ActiveSlots))
	for _, slot := range in.ActiveSlots {
		p.ActiveSlots[slot] = true
		slots = append(slots, string(slot))
	}

	p.TDEE = nutrition.TotalDailyEnergyExpenditure(p)
	p.TargetCalories = nutrition.TargetCalories(p.TDEE, p.Goal)
	macros := nutrition.Macros(p.TargetCalories, p.Goal, p.WeightKg)
	p.ProteinG = macros.ProteinG
	p.CarbsG = macros.CarbsG
	p.FatG = macros.FatG
	p.WaterGoalL = nutrition.WaterGoal(p.WeightKg, p.WeeklyTraining)

	_, err := db.Exec(`
INSERT INTO profile(id, gender, age, height_cm, weight_kg, target_weight_kg, goal, occupation,
  daily_activity, weekly_training, diet, cooking_effort, allergies, excluded_foods, active_slots,
  household_size, budget, tdee, target_calories, protein_g, carbs_g, fat_g, water_goal_l)
VALUES(1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  gender=excluded.gender, age=excluded.age, height_cm=excluded.height_cm,
  weight_kg=excluded.weight_kg, target_weight_kg=excluded.target_weight_kg,
  goal=excluded.goal, occupation=excluded.occupation, daily_activity=excluded.daily_activity,
  weekly_training=excluded.weekly_training, diet=excluded.diet,
  cooking_effort=excluded.cooking_effort, allergies=excluded.allergies,
  excluded_foods=excluded.excluded_foods, active_slots=excluded.active_slots,
  household_size=excluded.household_size, budget=excluded.budget, tdee=excluded.tdee,
  target_calories=excluded.target_calories, protein_g=excluded.protein_g,
  carbs_g=excluded.carbs_g, fat_g=excluded.fat_g, water_goal_l=excluded.water_goal_l,
  updated_at=CURRENT_TIMESTAMP
`, string(p.Gender), p.Age, p.HeightCm, p.WeightKg, p.TargetWeightKg, string(p.Goal),
		string(p.Occupation), string(p.DailyActivity), p.WeeklyTraining, string(p.Diet),
		string(p.CookingEffort), joinList(p.Allergies), joinList(p.ExcludedFoods),
		joinList(slots), p.HouseholdSize, string(p.Budget), p.TDEE, p.TargetCalories,
		p.ProteinG, p.CarbsG, p.FatG, p.WaterGoalL)
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return &p, nil
}

// LoadProfile returns the stored profile, or nil when onboarding has not
// completed yet.
func LoadProfile(db *sql.DB) (*model.UserProfile, error) {
	var p model.UserProfile
	var allergies, excluded, slots string
	err := db.QueryRow(`
SELECT gender, age, height_cm, weight_kg, target_weight_kg, goal, occupation, daily_activity,
  weekly_training, diet, cooking_effort, allergies, excluded_foods, active_slots,
  household_size, budget, tdee, target_calories, protein_g, carbs_g, fat_g, water_goal_l,
  created_at, updated_at
FROM profile WHERE id = 1
`).Scan(&p.Gender, &p.Age, &p.HeightCm, &p.WeightKg, &p.TargetWeightKg, &p.Goal, &p.Occupation,
		&p.DailyActivity, &p.WeeklyTraining, &p.Diet, &p.CookingEffort, &allergies, &excluded, &slots,
		&p.HouseholdSize, &p.Budget, &p.TDEE, &p.TargetCalories, &p.ProteinG, &p.CarbsG, &p.FatG,
		&p.WaterGoalL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	p.Allergies = splitList(allergies)
	p.ExcludedFoods = splitList(excluded)
	p.ActiveSlots = make(map[model.MealSlot]bool)
	for _, slot := range splitList(slots) {
		p.ActiveSlots[model.MealSlot(slot)] = true
	}
	return &p, nil
}
