package fitinn

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/service"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate and manage daily meal plans",
}

var (
	planDate string
	planDays int
	planSeed int64
	eatenOff bool
)

var planGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate meal plans, replacing any stored plan for the dates",
	RunE: func(cmd *cobra.Command, args []string) error {
		if planDays < 1 {
			return fmt.Errorf("--days must be >= 1")
		}
		return withDB(func(sqldb *sql.DB) error {
			profile, err := requireProfile(sqldb)
			if err != nil {
				return err
			}
			gen, err := newGenerator(sqldb, planSeed)
			if err != nil {
				return err
			}
			start, err := resolveStartDate(planDate)
			if err != nil {
				return err
			}
			for i := 0; i < planDays; i++ {
				date := start.AddDate(0, 0, i).Format("2006-01-02")
				plan, err := service.GeneratePlan(sqldb, gen, *profile, date)
				if err != nil {
					return err
				}
				printDayPlan(cmd, plan)
			}
			return nil
		})
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the plan for a date, generating one on first visit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			profile, err := requireProfile(sqldb)
			if err != nil {
				return err
			}
			gen, err := newGenerator(sqldb, planSeed)
			if err != nil {
				return err
			}
			plan, err := service.GetOrCreatePlan(sqldb, gen, *profile, planDate)
			if err != nil {
				return err
			}
			printDayPlan(cmd, plan)
			return nil
		})
	},
}

var planEatenCmd = &cobra.Command{
	Use:   "eaten <slot>",
	Short: "Mark a slot's meal as eaten (or undo with --undo)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseSlot(args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.MarkEaten(sqldb, planDate, slot, !eatenOff); err != nil {
				return err
			}
			state := "eaten"
			if eatenOff {
				state = "not eaten"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as %s\n", slot, state)
			return nil
		})
	},
}

var planSwapCmd = &cobra.Command{
	Use:   "swap <slot>",
	Short: "Swap a slot's meal for its first alternative",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseSlot(args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			meal, err := service.SwapMeal(sqldb, planDate, slot)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Swapped %s to: %s (%d kcal)\n", slot, meal.Recipe.Name, meal.Recipe.Nutrition.Calories)
			for _, alt := range meal.Alternatives {
				fmt.Fprintf(cmd.OutOrStdout(), "  alternative: %s (%d kcal)\n", alt.Name, alt.Nutrition.Calories)
			}
			return nil
		})
	},
}

var planFavoriteCmd = &cobra.Command{
	Use:   "favorite <slot>",
	Short: "Toggle the favorite flag on a slot's meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseSlot(args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.ToggleFavorite(sqldb, planDate, slot); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Toggled favorite for %s\n", slot)
			return nil
		})
	},
}

var planClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all stored day plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.ClearPlans(sqldb); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared all day plans")
			return nil
		})
	},
}

func resolveStartDate(date string) (time.Time, error) {
	if date == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

func printDayPlan(cmd *cobra.Command, plan *model.DayPlan) {
	if plan == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No plan stored for that date")
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Plan for %s\n", plan.Date)
	for _, meal := range plan.Meals {
		marker := " "
		if meal.Eaten {
			marker = "x"
		}
		fav := ""
		if meal.Favorite {
			fav = " *"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s  %-15s %s (%d kcal, %.0fg P)%s\n",
			marker, meal.ScheduledTime, meal.Slot, meal.Recipe.Name, meal.Recipe.Nutrition.Calories, meal.Recipe.Nutrition.ProteinG, fav)
		for _, alt := range meal.Alternatives {
			fmt.Fprintf(cmd.OutOrStdout(), "      swap: %s (%d kcal)\n", alt.Name, alt.Nutrition.Calories)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Totals: %d kcal, %.0fg P, %.0fg C, %.0fg F\n",
		plan.Totals.Calories, plan.Totals.ProteinG, plan.Totals.CarbsG, plan.Totals.FatG)
	fmt.Fprintf(cmd.OutOrStdout(), "Water: %d ml of %.1f l\n", plan.WaterIntakeMl, plan.WaterGoalL)
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planGenerateCmd, planShowCmd, planEatenCmd, planSwapCmd, planFavoriteCmd, planClearCmd)

	planCmd.PersistentFlags().StringVar(&planDate, "date", "", "Plan date YYYY-MM-DD (default today)")
	planGenerateCmd.Flags().IntVar(&planDays, "days", 1, "Number of consecutive days to generate")
	planGenerateCmd.Flags().Int64Var(&planSeed, "seed", 0, "Random seed for reproducible plans (default stored plan_seed or time)")
	planShowCmd.Flags().Int64Var(&planSeed, "seed", 0, "Random seed used if a plan must be generated")
	planEatenCmd.Flags().BoolVar(&eatenOff, "undo", false, "Mark as not eaten instead")
}
