package main

import (
	"net/http"

	"github.com/joho/godotenv"

	"github.com/satishgautham/New-Fitness-App/config"
	"github.com/satishgautham/New-Fitness-App/controllers"
	"github.com/satishgautham/New-Fitness-App/logger"
	"github.com/satishgautham/New-Fitness-App/refdata"
	"github.com/satishgautham/New-Fitness-App/routes"
	"github.com/satishgautham/New-Fitness-App/session"
)

func main() {
	// Initialize Structured Logger
	logger.Init()

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system env vars")
	}

	// Load the food reference table. Missing data is fatal: nothing can be
	// logged without it.
	dataPath := config.GetEnv("FOOD_DATA_PATH", "cleaned_food_data.csv")
	table, err := refdata.Get(dataPath)
	if err != nil {
		logger.Fatal("Failed to load reference data", "path", dataPath, "error", err)
	}
	logger.Info("Reference data loaded", "path", dataPath, "ingredients", len(table.Names()))

	targets := config.Targets()
	sessions := session.NewManager()
	api := controllers.New(table, targets)

	// Setup Router
	r := routes.SetupRouter(api, sessions)

	port := config.GetEnv("PORT", "8080")
	logger.Info("Server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Error("Server failed to start", "error", err)
	}
}
