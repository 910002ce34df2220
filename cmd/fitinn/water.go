package fitinn

import (
	"database/sql"
	"fmt"

	"github.com/markuseichhorn92-netizen/fitinn-cli/internal/service"
	"github.com/spf13/cobra"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track daily water intake",
}

var (
	waterDate string
	waterMl   int
)

var waterLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a water amount in ml",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.LogWater(sqldb, waterDate, waterMl); err != nil {
				return err
			}
			status, err := service.WaterForDate(sqldb, waterDate)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %d ml (%d ml of %.1f l on %s)\n", waterMl, status.IntakeMl, status.GoalL, status.Date)
			return nil
		})
	},
}

var waterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show water intake against the daily goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			status, err := service.WaterForDate(sqldb, waterDate)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d ml of %.1f l\n", status.Date, status.IntakeMl, status.GoalL)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterLogCmd, waterShowCmd)

	waterCmd.PersistentFlags().StringVar(&waterDate, "date", "", "Date YYYY-MM-DD (default today)")
	waterLogCmd.Flags().IntVar(&waterMl, "ml", 0, "Amount in ml")
	_ = waterLogCmd.MarkFlagRequired("ml")
}
