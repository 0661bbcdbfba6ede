package foodtracker

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jamundie/FoodTrackerApp/internal/config"
	"github.com/jamundie/FoodTrackerApp/internal/logger"
	"github.com/jamundie/FoodTrackerApp/internal/seed"
	"github.com/jamundie/FoodTrackerApp/internal/store"
)

var sampleData bool

var rootCmd = &cobra.Command{
	Use:   "foodtracker",
	Short: "foodtracker logs meals and water intake from your terminal",
	Long:  "foodtracker is a single-session food and water intake tracker with ingredient-level calorie math, a recent-activity feed, and a trailing trend chart. State lives in memory for the life of the session.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.L().Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&sampleData, "sample-data", false, "Preload the generated sample entries")
}

// newStore builds the session store, preloading sample data when either the
// flag or the environment asks for it.
func newStore(cfg *config.Config) *store.Store {
	st := store.New()
	if sampleData || cfg.SampleData {
		now := time.Now()
		seed.Apply(st, now)
		snap := st.Snapshot()
		logger.L().Info("sample data loaded",
			zap.Int("food_entries", len(snap.FoodEntries)),
			zap.Int("water_entries", len(snap.WaterEntries)))
	}
	return st
}
