package fitinn

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/planner"
	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/service"
	"github.com/spf13/cobra"
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Aggregate shopping lists from stored plans",
}

var (
	shoppingFrom string
	shoppingTo   string
	shoppingDays int
)

var shoppingListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the aggregated shopping list for a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to, err := resolveShoppingRange()
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.BuildShoppingList(sqldb, from, to)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No planned meals in that range")
				return nil
			}
			lastCategory := ""
			for _, item := range items {
				category := strings.ToLower(item.Category)
				if category == "" {
					category = "other"
				}
				if category != lastCategory {
					fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", category)
					lastCategory = category
				}
				marker := " "
				if item.Checked {
					marker = "x"
				}
				amount, unit := planner.FormatAmount(item.Amount, item.Unit)
				fmt.Fprintf(cmd.OutOrStdout(), "  [%s] %s %g %s\n", marker, item.Name, amount, unit)
			}
			return nil
		})
	},
}

var shoppingCheckCmd = &cobra.Command{
	Use:   "check <name>",
	Short: "Check off a shopping item",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SetChecked(sqldb, name, true); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Checked %s\n", name)
			return nil
		})
	},
}

var shoppingUncheckCmd = &cobra.Command{
	Use:   "uncheck <name>",
	Short: "Uncheck a shopping item",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SetChecked(sqldb, name, false); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unchecked %s\n", name)
			return nil
		})
	},
}

var shoppingResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all checked shopping items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.ResetChecked(sqldb); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Reset checked shopping items")
			return nil
		})
	},
}

func resolveShoppingRange() (string, string, error) {
	if shoppingFrom != "" || shoppingTo != "" {
		if shoppingFrom == "" || shoppingTo == "" {
			return "", "", fmt.Errorf("both --from and --to are required when one is set")
		}
		return shoppingFrom, shoppingTo, nil
	}
	if shoppingDays < 1 {
		return "", "", fmt.Errorf("--days must be >= 1")
	}
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return start.Format("2006-01-02"), start.AddDate(0, 0, shoppingDays-1).Format("2006-01-02"), nil
}

func init() {
	rootCmd.AddCommand(shoppingCmd)
	shoppingCmd.AddCommand(shoppingListCmd, shoppingCheckCmd, shoppingUncheckCmd, shoppingResetCmd)

	shoppingListCmd.Flags().StringVar(&shoppingFrom, "from", "", "Range start YYYY-MM-DD")
	shoppingListCmd.Flags().StringVar(&shoppingTo, "to", "", "Range end YYYY-MM-DD")
	shoppingListCmd.Flags().IntVar(&shoppingDays, "days", 7, "Days from today when --from/--to are not set")
}
