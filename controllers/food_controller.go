package controllers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/satishgautham/New-Fitness-App/logger"
	"github.com/satishgautham/New-Fitness-App/models"
	"github.com/satishgautham/New-Fitness-App/nutrition"
	"github.com/satishgautham/New-Fitness-App/refdata"
)

type LogFoodRequest struct {
	Date          string  `json:"date,omitempty"`
	Ingredient    string  `json:"ingredient"`
	QuantityGrams float64 `json:"quantity_grams"`
	Meal          string  `json:"meal"`
}

// FoodDayResponse is the day view: the filtered log, its totals, and the
// comparison against the daily targets.
type FoodDayResponse struct {
	Date         models.Date              `json:"date"`
	Entries      []models.FoodLogEntry    `json:"entries"`
	Totals       nutrition.Totals         `json:"totals"`
	Targets      models.MacroTargets      `json:"targets"`
	TargetStatus []nutrition.TargetStatus `json:"target_status"`
	Warnings     []string                 `json:"warnings"`
}

// LogFood computes the macro values for the submitted quantity and appends
// the entry to the session's food log. Invalid reference data blocks the
// submission; no partial entry is recorded.
func (a *API) LogFood(w http.ResponseWriter, r *http.Request) {
	store := getStore(r)
	if store == nil {
		writeError(w, http.StatusInternalServerError, "No session")
		return
	}

	var req LogFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := entryDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.QuantityGrams < 1 {
		writeError(w, http.StatusBadRequest, "Quantity must be at least 1g")
		return
	}
	meal := models.MealType(req.Meal)
	if !meal.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid meal type")
		return
	}

	ing, err := a.Ref.Lookup(req.Ingredient)
	if err != nil {
		var invalid *refdata.InvalidRowError
		if errors.As(err, &invalid) {
			writeError(w, http.StatusUnprocessableEntity,
				"Some nutrition values are invalid. Please check the CSV for missing or non-numeric entries.")
			return
		}
		writeError(w, http.StatusNotFound, "Ingredient not found")
		return
	}

	macros, err := nutrition.Compute(ing, req.QuantityGrams)
	if err != nil {
		logger.Warn("Blocked food submission", "ingredient", req.Ingredient, "error", err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	entry := models.FoodLogEntry{
		Date:          date,
		Ingredient:    ing.Name,
		QuantityGrams: req.QuantityGrams,
		Meal:          meal,
		Protein:       macros.Protein,
		Carbs:         macros.Carbs,
		Fats:          macros.Fats,
		Calories:      macros.Calories,
	}
	store.AppendFood(entry)

	logger.Info("Food logged", "ingredient", entry.Ingredient, "grams", entry.QuantityGrams, "calories", entry.Calories)

	writeJSON(w, http.StatusCreated, entry)
}

// GetFoodDay renders the day view for the selected date.
func (a *API) GetFoodDay(w http.ResponseWriter, r *http.Request) {
	store := getStore(r)
	if store == nil {
		writeError(w, http.StatusInternalServerError, "No session")
		return
	}

	date, err := selectedDate(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries := filterFoodByDate(store.Food(), date)
	totals := nutrition.Aggregate(entries, date)
	status := nutrition.CompareToTargets(totals, a.Targets)

	warnings := []string{}
	for _, s := range status {
		if s.Exceeded {
			warnings = append(warnings, fmt.Sprintf("%s intake exceeds your target (%g)", s.Field, s.Target))
		}
	}

	writeJSON(w, http.StatusOK, FoodDayResponse{
		Date:         date,
		Entries:      entries,
		Totals:       totals,
		Targets:      a.Targets,
		TargetStatus: status,
		Warnings:     warnings,
	})
}

// ExportFoodDay streams the selected day's food log as CSV.
func (a *API) ExportFoodDay(w http.ResponseWriter, r *http.Request) {
	store := getStore(r)
	if store == nil {
		writeError(w, http.StatusInternalServerError, "No session")
		return
	}

	date, err := selectedDate(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries := filterFoodByDate(store.Food(), date)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="today_log.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"Date", "Ingredient", "Qty (g)", "Meal", "Protein", "Carbs", "Fats", "Calories"})
	for _, e := range entries {
		cw.Write([]string{
			e.Date.String(),
			e.Ingredient,
			formatFloat(e.QuantityGrams),
			string(e.Meal),
			formatFloat(e.Protein),
			formatFloat(e.Carbs),
			formatFloat(e.Fats),
			formatFloat(e.Calories),
		})
	}
	cw.Flush()
}

func filterFoodByDate(entries []models.FoodLogEntry, date models.Date) []models.FoodLogEntry {
	out := []models.FoodLogEntry{}
	for _, e := range entries {
		if e.Date.Equal(date) {
			out = append(out, e)
		}
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
