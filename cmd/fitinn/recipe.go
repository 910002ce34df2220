package fitinn

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/catalog"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/provider/mealdb"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/service"
	"github.com/spf13/cobra"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Browse and extend the recipe catalog",
}

var (
	recipeCategory string
	importCategory string
	importRandom   bool
)

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog recipes, optionally by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			recipes, err := catalog.Load(sqldb)
			if err != nil {
				return err
			}
			category := model.RecipeCategory(strings.ToLower(strings.TrimSpace(recipeCategory)))
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tCATEGORY\tNAME\tKCAL\tMIN")
			for _, r := range recipes {
				if category != "" && r.Category != category {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d\t%d\n", r.ID, r.Category, r.Name, r.Nutrition.Calories, r.TotalMin)
			}
			return nil
		})
	},
}

var recipeShowCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Show a recipe with ingredients and instructions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			r, err := catalog.ByIDOrName(sqldb, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (#%d, %s, %s)\n", r.Name, r.ID, r.Category, r.Difficulty)
			fmt.Fprintf(cmd.OutOrStdout(), "Time: %d min prep + %d min cook\nServings: %g\n", r.PrepMin, r.CookMin, r.Servings)
			fmt.Fprintf(cmd.OutOrStdout(), "Per recipe: %d kcal, %.0fg P, %.0fg C, %.0fg F\n",
				r.Nutrition.Calories, r.Nutrition.ProteinG, r.Nutrition.CarbsG, r.Nutrition.FatG)
			if len(r.Allergens) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Allergens: %s\n", strings.Join(r.Allergens, ", "))
			}
			if len(r.DietFlags) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Diet: %s\n", strings.Join(r.DietFlags, ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Ingredients:")
			for _, ing := range r.Ingredients {
				fmt.Fprintf(cmd.OutOrStdout(), "  %g %s %s\n", ing.Amount, ing.Unit, ing.Name)
			}
			if len(r.Instructions) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Instructions:")
				for i, step := range r.Instructions {
					fmt.Fprintf(cmd.OutOrStdout(), "  %d. %s\n", i+1, step)
				}
			}
			return nil
		})
	},
}

var recipeImportCmd = &cobra.Command{
	Use:   "import [name]",
	Short: "Import a recipe from TheMealDB into the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !importRandom && len(args) == 0 {
			return fmt.Errorf("a recipe name is required unless --random is set")
		}
		return withDB(func(sqldb *sql.DB) error {
			client := &mealdb.Client{}
			if base, ok, err := service.GetConfig(sqldb, service.ConfigMealDBBaseURL); err != nil {
				return err
			} else if ok {
				client.BaseURL = base
			}

			var meal mealdb.Meal
			var err error
			if importRandom {
				meal, err = client.Random(cmd.Context())
			} else {
				var meals []mealdb.Meal
				meals, err = client.SearchByName(cmd.Context(), strings.Join(args, " "))
				if err == nil {
					meal = meals[0]
				}
			}
			if err != nil {
				return err
			}

			recipe := mealToRecipe(meal, importCategory)
			id, err := catalog.Insert(sqldb, recipe)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %q as recipe #%d (%s)\n", recipe.Name, id, recipe.Category)
			fmt.Fprintln(cmd.OutOrStdout(), "Note: imported recipes have no nutrition data; edit before planning with them.")
			return nil
		})
	},
}

// mealToRecipe converts a TheMealDB meal into a catalog recipe. The API has
// no nutrition data, so imported recipes carry zero values until edited.
func mealToRecipe(meal mealdb.Meal, categoryFlag string) model.Recipe {
	category := model.RecipeCategory(strings.ToLower(strings.TrimSpace(categoryFlag)))
	switch category {
	case model.CategoryBreakfast, model.CategoryLunch, model.CategoryDinner, model.CategorySnack:
	default:
		category = guessCategory(meal.Category)
	}
	r := model.Recipe{
		Name:         meal.Name,
		Category:     category,
		Servings:     2,
		Instructions: meal.Instructions,
		Source:       "mealdb",
	}
	if meal.Area != "" {
		r.Tags = []string{strings.ToLower(meal.Area)}
	}
	for _, ing := range meal.Ingredients {
		r.Ingredients = append(r.Ingredients, model.Ingredient{
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Category: "pantry",
		})
	}
	return r
}

func guessCategory(mealDBCategory string) model.RecipeCategory {
	switch strings.ToLower(strings.TrimSpace(mealDBCategory)) {
	case "breakfast":
		return model.CategoryBreakfast
	case "dessert", "side", "starter":
		return model.CategorySnack
	default:
		return model.CategoryDinner
	}
}

func init() {
	rootCmd.AddCommand(recipeCmd)
	recipeCmd.AddCommand(recipeListCmd, recipeShowCmd, recipeImportCmd)

	recipeListCmd.Flags().StringVar(&recipeCategory, "category", "", "Filter by category: breakfast, lunch, dinner, snack")
	recipeImportCmd.Flags().StringVar(&importCategory, "category", "", "Catalog category for the import (default guessed)")
	recipeImportCmd.Flags().BoolVar(&importRandom, "random", false, "Import a random meal instead of searching by name")
}
