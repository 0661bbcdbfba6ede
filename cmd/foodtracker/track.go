package foodtracker

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jamundie/FoodTrackerApp/internal/config"
	"github.com/jamundie/FoodTrackerApp/internal/logger"
	"github.com/jamundie/FoodTrackerApp/internal/model"
	"github.com/jamundie/FoodTrackerApp/internal/service"
	"github.com/jamundie/FoodTrackerApp/internal/store"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Start an interactive tracking session",
	Long:  "track runs an interactive session over one in-memory store. Entries live only for the life of the session.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(logger.L())
		st := newStore(cfg)
		return runSession(cmd.InOrStdin(), cmd.OutOrStdout(), st, cfg)
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
}

func runSession(in io.Reader, out io.Writer, st *store.Store, cfg *config.Config) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "Tracking session started. Type \"help\" for commands.")
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		command := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch command {
		case "":
		case "help":
			printSessionHelp(out)
		case "quit", "exit":
			return nil
		case "food":
			runFoodForm(scanner, out, st)
		case "water":
			runWaterForm(scanner, out, st)
		case "drink":
			st.IncrementWaterIntake()
			fmt.Fprintf(out, "Water glasses today: %d\n", st.Snapshot().WaterIntake)
		case "recent":
			printActivities(out, st.Snapshot(), cfg.RecentLimit, time.Now())
		case "chart":
			printTrends(out, st.Snapshot(), cfg.TrendDays, time.Now())
		case "status":
			printStatus(out, st.Snapshot())
		default:
			fmt.Fprintf(out, "Unknown command %q. Type \"help\" for commands.\n", command)
		}
	}
}

func printSessionHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  food    Log a meal with its ingredients")
	fmt.Fprintln(out, "  water   Log a beverage with its ingredients")
	fmt.Fprintln(out, "  drink   Count one glass of water")
	fmt.Fprintln(out, "  recent  Show the recent-activity feed")
	fmt.Fprintln(out, "  chart   Show the daily trend charts")
	fmt.Fprintln(out, "  status  Show session totals")
	fmt.Fprintln(out, "  quit    End the session (entries are not persisted)")
}

func prompt(scanner *bufio.Scanner, out io.Writer, label string) string {
	fmt.Fprint(out, label)
	if !scanner.Scan() {
		return ""
	}
	return scanner.Text()
}

// promptIngredientRows collects ingredient rows until the user leaves the
// name blank. The rows go to the form raw; parsing and filtering happen in
// the builder.
func promptIngredientRows(scanner *bufio.Scanner, out io.Writer, defaultUnit model.Unit) []service.RawIngredient {
	rows := make([]service.RawIngredient, 0, 4)
	for {
		name := prompt(scanner, out, "Ingredient name (blank to finish): ")
		if strings.TrimSpace(name) == "" {
			return rows
		}
		amount := prompt(scanner, out, "Amount: ")
		unit := model.Unit(strings.TrimSpace(prompt(scanner, out, fmt.Sprintf("Unit (g/ml/piece, default %s): ", defaultUnit))))
		if unit == "" {
			unit = defaultUnit
		}
		density := prompt(scanner, out, "Calories per 100g/100ml (per piece for pieces, blank if unknown): ")
		rows = append(rows, service.RawIngredient{Name: name, Amount: amount, Unit: unit, CaloriesPer100: density})
	}
}

func promptTimestampFields(scanner *bufio.Scanner, out io.Writer, date time.Time, tod service.TimeOfDay) (time.Time, service.TimeOfDay, error) {
	pickedDate, err := parseDateOr(prompt(scanner, out, "Date (YYYY-MM-DD, blank for today): "), date)
	if err != nil {
		return time.Time{}, service.TimeOfDay{}, err
	}
	pickedTime, err := parseClockOr(prompt(scanner, out, "Time (HH:MM, blank for current hour): "), tod)
	if err != nil {
		return time.Time{}, service.TimeOfDay{}, err
	}
	fmt.Fprintf(out, "Logging for %s at %s\n",
		service.FormatDisplayDate(pickedDate, time.Now()),
		service.FormatDisplayTime(pickedTime.Hours, pickedTime.Minutes))
	return pickedDate, pickedTime, nil
}

func runFoodForm(scanner *bufio.Scanner, out io.Writer, st *store.Store) {
	form := service.NewFoodEntryForm(service.DefaultCategoryPolicy())
	form.MealName = prompt(scanner, out, "Meal name: ")

	names := make([]string, len(model.FoodCategories))
	for i, c := range model.FoodCategories {
		names[i] = string(c)
	}
	fmt.Fprintf(out, "Categories: %s\n", strings.Join(names, ", "))
	form.Category = prompt(scanner, out, "Category: ")

	date, tod, err := promptTimestampFields(scanner, out, form.SelectedDate, form.SelectedTime)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	form.SelectedDate = date
	form.SelectedTime = tod
	form.Ingredients = promptIngredientRows(scanner, out, model.UnitGrams)

	entry, err := form.Submit(st)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	logger.L().Info("food entry added", zap.String("id", entry.ID), zap.String("meal", entry.MealName))
	if entry.TotalCalories != nil {
		fmt.Fprintf(out, "Added %s (%d ingredients, %d cal)\n", entry.MealName, len(entry.Ingredients), int(math.Round(*entry.TotalCalories)))
		return
	}
	fmt.Fprintf(out, "Added %s (%d ingredients)\n", entry.MealName, len(entry.Ingredients))
}

func runWaterForm(scanner *bufio.Scanner, out io.Writer, st *store.Store) {
	form := service.NewWaterEntryForm()
	form.EntryName = prompt(scanner, out, "Entry name: ")

	date, tod, err := promptTimestampFields(scanner, out, form.SelectedDate, form.SelectedTime)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	form.SelectedDate = date
	form.SelectedTime = tod
	form.Ingredients = promptIngredientRows(scanner, out, model.UnitMilliliters)

	entry, err := form.Submit(st)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	logger.L().Info("water entry added", zap.String("id", entry.ID), zap.String("name", entry.EntryName))
	if entry.TotalVolume != nil {
		fmt.Fprintf(out, "Added %s (%dml)\n", entry.EntryName, int(math.Round(*entry.TotalVolume)))
		return
	}
	fmt.Fprintf(out, "Added %s\n", entry.EntryName)
}
