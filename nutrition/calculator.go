// Package nutrition derives macro values from the reference table and
// aggregates them per day. Everything here is pure computation.
package nutrition

import (
	"fmt"
	"math"

	"github.com/satishgautham/New-Fitness-App/models"
)

// InvalidNutrientDataError reports reference data that cannot support the
// macro computation, such as a zero reference portion or a NaN coefficient.
type InvalidNutrientDataError struct {
	Ingredient string
	Reason     string
}

func (e *InvalidNutrientDataError) Error() string {
	return fmt.Sprintf("invalid nutrient data for %q: %s", e.Ingredient, e.Reason)
}

// Compute derives the macro values for quantityGrams of the given
// ingredient. Protein, carbs, and fats scale linearly per gram; calories
// scale against the reference portion the calorie value was measured for.
// The result is stored on the log entry at submission time and never
// recomputed.
func Compute(ing models.ReferenceIngredient, quantityGrams float64) (models.Macros, error) {
	coefficients := []struct {
		label string
		value float64
	}{
		{"Protein_per_g", ing.ProteinPerGram},
		{"Carbs_per_g", ing.CarbsPerGram},
		{"Fats_per_g", ing.FatsPerGram},
		{"Calories", ing.CaloriesPerPortion},
		{"Intake_g", ing.PortionGrams},
	}
	for _, c := range coefficients {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return models.Macros{}, &InvalidNutrientDataError{
				Ingredient: ing.Name,
				Reason:     fmt.Sprintf("%s is not a finite number", c.label),
			}
		}
	}
	if ing.PortionGrams == 0 {
		return models.Macros{}, &InvalidNutrientDataError{
			Ingredient: ing.Name,
			Reason:     "reference portion is zero",
		}
	}

	return models.Macros{
		Protein:  ing.ProteinPerGram * quantityGrams,
		Carbs:    ing.CarbsPerGram * quantityGrams,
		Fats:     ing.FatsPerGram * quantityGrams,
		Calories: ing.CaloriesPerPortion * (quantityGrams / ing.PortionGrams),
	}, nil
}
