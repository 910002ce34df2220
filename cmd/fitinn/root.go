package fitinn

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "fitinn",
	Short: "fitinn plans meals and macros from your terminal",
	Long:  "fitinn is a local-first nutrition planning CLI with personal energy targets, a recipe catalog, daily meal plans, and aggregated shopping lists.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
