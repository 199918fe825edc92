package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/satishgautham/New-Fitness-App/logger"
	"github.com/satishgautham/New-Fitness-App/models"
)

type LogWeightRequest struct {
	Date     string  `json:"date,omitempty"`
	WeightKg float64 `json:"weight_kg"`
}

// WeightSummary compares the most recent measurement against the first.
type WeightSummary struct {
	Initial float64 `json:"initial"`
	Latest  float64 `json:"latest"`
	Change  float64 `json:"change"`
}

// WeightHistoryResponse is the weight view: the history sorted ascending by
// date, plus a summary when at least one measurement exists.
type WeightHistoryResponse struct {
	Entries []models.WeightLogEntry `json:"entries"`
	Summary *WeightSummary          `json:"summary,omitempty"`
}

// LogWeight appends a weight measurement to the session log.
func (a *API) LogWeight(w http.ResponseWriter, r *http.Request) {
	store := getStore(r)
	if store == nil {
		writeError(w, http.StatusInternalServerError, "No session")
		return
	}

	var req LogWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := entryDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.WeightKg < models.MinWeightKg || req.WeightKg > models.MaxWeightKg {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Weight must be between %g and %g kg", models.MinWeightKg, models.MaxWeightKg))
		return
	}

	entry := models.WeightLogEntry{Date: date, WeightKg: req.WeightKg}
	store.AppendWeight(entry)

	logger.Info("Weight logged", "weight_kg", entry.WeightKg, "date", entry.Date.String())

	writeJSON(w, http.StatusCreated, entry)
}

// GetWeights renders the weight history view. An empty history renders
// empty, not an error; the summary is defined only when at least one
// measurement exists.
func (a *API) GetWeights(w http.ResponseWriter, r *http.Request) {
	store := getStore(r)
	if store == nil {
		writeError(w, http.StatusInternalServerError, "No session")
		return
	}

	entries := store.Weights()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	resp := WeightHistoryResponse{Entries: entries}
	if len(entries) > 0 {
		initial := entries[0].WeightKg
		latest := entries[len(entries)-1].WeightKg
		resp.Summary = &WeightSummary{
			Initial: initial,
			Latest:  latest,
			Change:  latest - initial,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
