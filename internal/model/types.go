package model

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Goal string

const (
	GoalLose        Goal = "lose"
	GoalGain        Goal = "gain"
	GoalMaintain    Goal = "maintain"
	GoalDefine      Goal = "define"
	GoalPerformance Goal = "performance"
)

type DietType string

const (
	DietOmnivore   DietType = "omnivore"
	DietVegetarian DietType = "vegetarian"
	DietVegan      DietType = "vegan"
)

type Occupation string

const (
	OccupationSedentary Occupation = "sedentary"
	OccupationStanding  Occupation = "standing"
	OccupationActive    Occupation = "active"
	OccupationHeavy     Occupation = "heavy"
)

type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "low"
	ActivityModerate ActivityLevel = "moderate"
	ActivityHigh     ActivityLevel = "high"
)

type CookingEffort string

const (
	EffortMinimal   CookingEffort = "minimal"
	EffortNormal    CookingEffort = "normal"
	EffortElaborate CookingEffort = "elaborate"
)

type BudgetClass string

const (
	BudgetLow    BudgetClass = "low"
	BudgetMedium BudgetClass = "medium"
	BudgetHigh   BudgetClass = "high"
)

type MealSlot string

const (
	SlotBreakfast      MealSlot = "breakfast"
	SlotMorningSnack   MealSlot = "morning-snack"
	SlotLunch          MealSlot = "lunch"
	SlotAfternoonSnack MealSlot = "afternoon-snack"
	SlotDinner         MealSlot = "dinner"
	SlotLateSnack      MealSlot = "late-snack"
)

type RecipeCategory string

const (
	CategoryBreakfast RecipeCategory = "breakfast"
	CategoryLunch     RecipeCategory = "lunch"
	CategoryDinner    RecipeCategory = "dinner"
	CategorySnack     RecipeCategory = "snack"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type UserProfile struct {
	Gender         Gender
	Age            int
	HeightCm       float64
	WeightKg       float64
	TargetWeightKg float64
	Goal           Goal
	Occupation     Occupation
	DailyActivity  ActivityLevel
	WeeklyTraining int
	Diet           DietType
	CookingEffort  CookingEffort
	Allergies      []string
	ExcludedFoods  []string
	ActiveSlots    map[MealSlot]bool
	HouseholdSize  int
	Budget         BudgetClass

	// Derived on save, cached in the profile row.
	TDEE           int
	TargetCalories int
	ProteinG       int
	CarbsG         int
	FatG           int
	WaterGoalL     float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Nutrition struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
}

func (n Nutrition) Add(o Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + o.Calories,
		ProteinG: n.ProteinG + o.ProteinG,
		CarbsG:   n.CarbsG + o.CarbsG,
		FatG:     n.FatG + o.FatG,
		FiberG:   n.FiberG + o.FiberG,
	}
}

type Ingredient struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

type Recipe struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Category     RecipeCategory `json:"category"`
	Tags         []string       `json:"tags,omitempty"`
	PrepMin      int            `json:"prep_min"`
	CookMin      int            `json:"cook_min"`
	TotalMin     int            `json:"total_min"`
	Difficulty   Difficulty     `json:"difficulty"`
	Servings     float64        `json:"servings"`
	Ingredients  []Ingredient   `json:"ingredients"`
	Nutrition    Nutrition      `json:"nutrition"`
	Instructions []string       `json:"instructions,omitempty"`
	Allergens    []string       `json:"allergens,omitempty"`
	DietFlags    []string       `json:"diet_flags,omitempty"`
	MealPrepOK   bool           `json:"meal_prep_ok"`
	StorageDays  int            `json:"storage_days"`
	Source       string         `json:"source,omitempty"`
}

// MealPlan is one slot of a day: the selected (possibly scaled) recipe plus
// up to two swap candidates.
type MealPlan struct {
	Slot          MealSlot
	ScheduledTime string
	Recipe        Recipe
	Eaten         bool
	Favorite      bool
	Alternatives  []Recipe
}

type DayPlan struct {
	Date          string
	Meals         []MealPlan
	Totals        Nutrition
	WaterIntakeMl int
	WaterGoalL    float64
}

// ShoppingItem is a derived projection over day plans; only the checked flag
// has independent persistence, keyed by display name.
type ShoppingItem struct {
	Name     string
	Amount   float64
	Unit     string
	Category string
	Checked  bool
}

type FoodLog struct {
	ID        int64
	Date      string
	Name      string
	Brand     string
	Barcode   string
	Nutrition Nutrition
	Source    string
	LoggedAt  time.Time
}
