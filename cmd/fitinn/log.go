package fitinn

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/model"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/provider/openfoodfacts"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/service"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log foods eaten outside the plan",
}

var (
	logDate     string
	logName     string
	logBrand    string
	logCalories int
	logProtein  float64
	logCarbs    float64
	logFat      float64
	logFiber    float64
)

var logBarcodeCmd = &cobra.Command{
	Use:   "barcode <code>",
	Short: "Lookup a barcode on Open Food Facts and log the product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			client := &openfoodfacts.Client{}
			if base, ok, err := service.GetConfig(sqldb, service.ConfigOpenFoodFactsBaseURL); err != nil {
				return err
			} else if ok {
				client.BaseURL = base
			}
			product, err := client.LookupBarcode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = service.LogFood(sqldb, service.LogFoodInput{
				Date:    logDate,
				Name:    product.Name,
				Brand:   product.Brand,
				Barcode: product.Barcode,
				Nutrition: model.Nutrition{
					Calories: int(math.Round(product.Calories)),
					ProteinG: product.ProteinG,
					CarbsG:   product.CarbsG,
					FatG:     product.FatG,
					FiberG:   product.FiberG,
				},
				Source: "openfoodfacts",
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%s): %.0f kcal per %.0f %s\n",
				product.Name, product.Brand, product.Calories, product.ServingAmount, product.ServingUnit)
			return nil
		})
	},
}

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a manual food entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			_, err := service.LogFood(sqldb, service.LogFoodInput{
				Date:  logDate,
				Name:  logName,
				Brand: logBrand,
				Nutrition: model.Nutrition{
					Calories: logCalories,
					ProteinG: logProtein,
					CarbsG:   logCarbs,
					FatG:     logFat,
					FiberG:   logFiber,
				},
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%d kcal)\n", logName, logCalories)
			return nil
		})
	},
}

var logShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show food log entries for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			logs, err := service.FoodLogForDate(sqldb, logDate)
			if err != nil {
				return err
			}
			if len(logs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No food logged")
				return nil
			}
			var total model.Nutrition
			fmt.Fprintln(cmd.OutOrStdout(), "NAME\tKCAL\tP\tC\tF\tSOURCE")
			for _, l := range logs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%.1f\t%.1f\t%.1f\t%s\n",
					l.Name, l.Nutrition.Calories, l.Nutrition.ProteinG, l.Nutrition.CarbsG, l.Nutrition.FatG, l.Source)
				total = total.Add(l.Nutrition)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total\t%d\t%.1f\t%.1f\t%.1f\n", total.Calories, total.ProteinG, total.CarbsG, total.FatG)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logBarcodeCmd, logAddCmd, logShowCmd)

	logCmd.PersistentFlags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")
	logAddCmd.Flags().StringVar(&logName, "name", "", "Food name")
	logAddCmd.Flags().StringVar(&logBrand, "brand", "", "Brand")
	logAddCmd.Flags().IntVar(&logCalories, "calories", 0, "Calories")
	logAddCmd.Flags().Float64Var(&logProtein, "protein", 0, "Protein grams")
	logAddCmd.Flags().Float64Var(&logCarbs, "carbs", 0, "Carbs grams")
	logAddCmd.Flags().Float64Var(&logFat, "fat", 0, "Fat grams")
	logAddCmd.Flags().Float64Var(&logFiber, "fiber", 0, "Fiber grams")
	_ = logAddCmd.MarkFlagRequired("name")
	_ = logAddCmd.MarkFlagRequired("calories")
}
