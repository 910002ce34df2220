package fitinn

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/service"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile and derived energy targets",
}

var (
	profileGender       string
	profileAge          int
	profileHeight       float64
	profileWeight       float64
	profileTargetWeight float64
	profileGoal         string
	profileOccupation   string
	profileActivity     string
	profileTraining     int
	profileDiet         string
	profileEffort       string
	profileAllergies    string
	profileExcluded     string
	profileSlots        string
	profileHousehold    int
	profileBudget       string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Answer the onboarding questionnaire and recompute targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.SaveProfileInput{
			Gender:         model.Gender(strings.ToLower(profileGender)),
			Age:            profileAge,
			HeightCm:       profileHeight,
			WeightKg:       profileWeight,
			TargetWeightKg: profileTargetWeight,
			Goal:           model.Goal(strings.ToLower(profileGoal)),
			Occupation:     model.Occupation(strings.ToLower(profileOccupation)),
			DailyActivity:  model.ActivityLevel(strings.ToLower(profileActivity)),
			WeeklyTraining: profileTraining,
			Diet:           model.DietType(strings.ToLower(profileDiet)),
			CookingEffort:  model.CookingEffort(strings.ToLower(profileEffort)),
			Allergies:      splitCSVFlag(profileAllergies),
			ExcludedFoods:  splitCSVFlag(profileExcluded),
			HouseholdSize:  profileHousehold,
			Budget:         model.BudgetClass(strings.ToLower(profileBudget)),
		}
		for _, s := range splitCSVFlag(profileSlots) {
			slot, err := parseSlot(s)
			if err != nil {
				return err
			}
			in.ActiveSlots = append(in.ActiveSlots, slot)
		}
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.SaveProfile(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile saved.\n")
			printTargets(cmd, p)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile and targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.LoadProfile(sqldb)
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile configured yet; run: fitinn profile set")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Gender: %s\nAge: %d\nHeight: %.1f cm\nWeight: %.1f kg\n", p.Gender, p.Age, p.HeightCm, p.WeightKg)
			if p.TargetWeightKg > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Target weight: %.1f kg\n", p.TargetWeightKg)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal: %s\nOccupation: %s\nDaily activity: %s\nTraining sessions/week: %d\n", p.Goal, p.Occupation, p.DailyActivity, p.WeeklyTraining)
			fmt.Fprintf(cmd.OutOrStdout(), "Diet: %s\nCooking effort: %s\nHousehold: %d\nBudget: %s\n", p.Diet, p.CookingEffort, p.HouseholdSize, p.Budget)
			if len(p.Allergies) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Allergies: %s\n", strings.Join(p.Allergies, ", "))
			}
			if len(p.ExcludedFoods) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Excluded foods: %s\n", strings.Join(p.ExcludedFoods, ", "))
			}
			slots := make([]string, 0, len(p.ActiveSlots))
			for _, slot := range []model.MealSlot{model.SlotBreakfast, model.SlotMorningSnack, model.SlotLunch, model.SlotAfternoonSnack, model.SlotDinner, model.SlotLateSnack} {
				if p.ActiveSlots[slot] {
					slots = append(slots, string(slot))
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active slots: %s\n", strings.Join(slots, ", "))
			printTargets(cmd, p)
			return nil
		})
	},
}

func printTargets(cmd *cobra.Command, p *model.UserProfile) {
	fmt.Fprintf(cmd.OutOrStdout(), "TDEE: %d kcal\nTarget: %d kcal\nProtein: %dg\nCarbs: %dg\nFat: %dg\nWater goal: %.1f l\n",
		p.TDEE, p.TargetCalories, p.ProteinG, p.CarbsG, p.FatG, p.WaterGoalL)
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender: male, female, other")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().Float64Var(&profileTargetWeight, "target-weight", 0, "Target weight in kg (optional)")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "Goal: lose, gain, maintain, define, performance")
	profileSetCmd.Flags().StringVar(&profileOccupation, "occupation", "sedentary", "Occupation activity: sedentary, standing, active, heavy")
	profileSetCmd.Flags().StringVar(&profileActivity, "daily-activity", "low", "Everyday activity: low, moderate, high")
	profileSetCmd.Flags().IntVar(&profileTraining, "training", 0, "Training sessions per week")
	profileSetCmd.Flags().StringVar(&profileDiet, "diet", "omnivore", "Diet: omnivore, vegetarian, vegan")
	profileSetCmd.Flags().StringVar(&profileEffort, "effort", "normal", "Cooking effort: minimal, normal, elaborate")
	profileSetCmd.Flags().StringVar(&profileAllergies, "allergies", "", "Comma-separated allergens (e.g. gluten,nuts)")
	profileSetCmd.Flags().StringVar(&profileExcluded, "exclude", "", "Comma-separated disliked foods")
	profileSetCmd.Flags().StringVar(&profileSlots, "slots", "", "Comma-separated active meal slots (default breakfast,lunch,dinner)")
	profileSetCmd.Flags().IntVar(&profileHousehold, "household", 1, "Household size")
	profileSetCmd.Flags().StringVar(&profileBudget, "budget", "medium", "Budget: low, medium, high")
	_ = profileSetCmd.MarkFlagRequired("gender")
	_ = profileSetCmd.MarkFlagRequired("age")
	_ = profileSetCmd.MarkFlagRequired("height")
	_ = profileSetCmd.MarkFlagRequired("weight")
	_ = profileSetCmd.MarkFlagRequired("goal")
}
