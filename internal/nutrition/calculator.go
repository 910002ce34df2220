package nutrition

import (
	"math"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
)

// occupationFactors is the single source of truth for valid occupation
// classes; unknown classes fall back to sedentary.
var occupationFactors = map[model.Occupation]float64{
	model.OccupationSedentary: 1.2,
	model.OccupationStanding:  1.3,
	model.OccupationActive:    1.5,
	model.OccupationHeavy:     1.7,
}

const (
	maxActivityMultiplier = 2.2
	proteinFloorGPerKg    = 1.6
	defaultTargetCalories = 2000
)

type macroRatio struct {
	protein float64
	carbs   float64
	fat     float64
}

var macroRatios = map[model.Goal]macroRatio{
	model.GoalLose:        {protein: 0.30, carbs: 0.40, fat: 0.30},
	model.GoalGain:        {protein: 0.25, carbs: 0.50, fat: 0.25},
	model.GoalMaintain:    {protein: 0.25, carbs: 0.45, fat: 0.30},
	model.GoalDefine:      {protein: 0.35, carbs: 0.35, fat: 0.30},
	model.GoalPerformance: {protein: 0.25, carbs: 0.55, fat: 0.20},
}

var calorieOffsets = map[model.Goal]int{
	model.GoalLose:        -500,
	model.GoalGain:        300,
	model.GoalDefine:      -300,
	model.GoalPerformance: 200,
	model.GoalMaintain:    0,
}

// BasalMetabolicRate estimates resting energy expenditure. Mifflin-St Jeor
// shape with a 9.6 kcal/kg weight term; the male constant is +5, every other
// gender uses the -161 constant.
func BasalMetabolicRate(gender model.Gender, weightKg, heightCm float64, ageYears int) float64 {
	bmr := 9.6*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender == model.GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// ActivityMultiplier combines occupation, daily activity and weekly training
// into a single TDEE factor, capped at 2.2.
func ActivityMultiplier(occupation model.Occupation, daily model.ActivityLevel, weeklyTraining int) float64 {
	factor, ok := occupationFactors[occupation]
	if !ok {
		factor = occupationFactors[model.OccupationSedentary]
	}
	switch daily {
	case model.ActivityModerate:
		factor += 0.1
	case model.ActivityHigh:
		factor += 0.2
	}
	if weeklyTraining > 0 {
		factor += float64(weeklyTraining) * 0.05
	}
	if factor > maxActivityMultiplier {
		factor = maxActivityMultiplier
	}
	return factor
}

func TotalDailyEnergyExpenditure(p model.UserProfile) int {
	bmr := BasalMetabolicRate(p.Gender, p.WeightKg, p.HeightCm, p.Age)
	mult := ActivityMultiplier(p.Occupation, p.DailyActivity, p.WeeklyTraining)
	return int(math.Round(bmr * mult))
}

func TargetCalories(tdee int, goal model.Goal) int {
	return tdee + calorieOffsets[goal]
}

type MacroTargets struct {
	ProteinG int
	CarbsG   int
	FatG     int
}

// Macros splits target calories into protein/carb/fat grams using per-goal
// ratios. Protein is floored at 1.6 g/kg body weight; when the floor applies,
// the remaining calories are split between carbs and fat in their relative
// ratio so the total still matches the target.
func Macros(targetCalories int, goal model.Goal, weightKg float64) MacroTargets {
	ratio, ok := macroRatios[goal]
	if !ok {
		ratio = macroRatios[model.GoalMaintain]
	}
	target := float64(targetCalories)

	proteinG := target * ratio.protein / 4
	carbsCal := target * ratio.carbs
	fatCal := target * ratio.fat

	floor := weightKg * proteinFloorGPerKg
	if proteinG < floor {
		proteinG = floor
		remaining := target - floor*4
		if remaining < 0 {
			remaining = 0
		}
		share := ratio.carbs + ratio.fat
		if share <= 0 {
			share = 1
		}
		carbsCal = remaining * ratio.carbs / share
		fatCal = remaining * ratio.fat / share
	}

	return MacroTargets{
		ProteinG: int(math.Round(proteinG)),
		CarbsG:   int(math.Round(carbsCal / 4)),
		FatG:     int(math.Round(fatCal / 9)),
	}
}

// WaterGoal returns the daily water goal in liters, rounded to 1 decimal.
func WaterGoal(weightKg float64, weeklyTraining int) float64 {
	liters := weightKg*0.033 + float64(weeklyTraining)*0.15
	return math.Round(liters*10) / 10
}

// PlanningCalories resolves the calorie target the planner should use: the
// cached target, falling back to TDEE, falling back to 2000.
func PlanningCalories(p model.UserProfile) int {
	if p.TargetCalories > 0 {
		return p.TargetCalories
	}
	if p.TDEE > 0 {
		return p.TDEE
	}
	return defaultTargetCalories
}
