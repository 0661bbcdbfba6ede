package foodtracker

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jamundie/FoodTrackerApp/internal/config"
	"github.com/jamundie/FoodTrackerApp/internal/logger"
	"github.com/jamundie/FoodTrackerApp/internal/seed"
	"github.com/jamundie/FoodTrackerApp/internal/store"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render the feed and trend charts over the sample data set",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(logger.L())
		now := time.Now()

		st := store.New()
		seed.Apply(st, now)
		snap := st.Snapshot()

		out := cmd.OutOrStdout()
		printActivities(out, snap, cfg.RecentLimit, now)
		fmt.Fprintln(out)
		printTrends(out, snap, cfg.TrendDays, now)
		fmt.Fprintln(out)
		printStatus(out, snap)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
