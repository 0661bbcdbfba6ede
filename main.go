package main

import (
	"github.com/jamundie/FoodTrackerApp/cmd/foodtracker"
	"github.com/jamundie/FoodTrackerApp/internal/logger"
)

func main() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	defer logger.L().Sync()

	foodtracker.Execute()
}
