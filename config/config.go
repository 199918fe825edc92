package config

import (
	"os"
	"strconv"

	"github.com/satishgautham/New-Fitness-App/models"
)

// GetEnv returns the value of the environment variable key, or fallback if
// it is unset or empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvFloat returns the environment variable key parsed as a float64, or
// fallback if it is unset or not a number.
func GetEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// Targets builds the process-wide daily macro targets, starting from the
// built-in defaults with optional per-macro env overrides.
func Targets() models.MacroTargets {
	defaults := models.DefaultTargets()
	return models.MacroTargets{
		Calories: GetEnvFloat("TARGET_CALORIES", defaults.Calories),
		Protein:  GetEnvFloat("TARGET_PROTEIN", defaults.Protein),
		Carbs:    GetEnvFloat("TARGET_CARBS", defaults.Carbs),
		Fats:     GetEnvFloat("TARGET_FATS", defaults.Fats),
	}
}
