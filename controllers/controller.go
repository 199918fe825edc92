// Package controllers exposes the tracker's views as JSON endpoints. Every
// view is a pure recomputation over the request's session store and the
// selected date; nothing is cached between requests.
package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/satishgautham/New-Fitness-App/middleware"
	"github.com/satishgautham/New-Fitness-App/models"
	"github.com/satishgautham/New-Fitness-App/refdata"
	"github.com/satishgautham/New-Fitness-App/session"
)

// API holds the handler dependencies: the immutable reference table and the
// process-wide macro targets. The per-request session store arrives through
// the session middleware.
type API struct {
	Ref     *refdata.Table
	Targets models.MacroTargets
}

// New builds the API with its dependencies.
func New(ref *refdata.Table, targets models.MacroTargets) *API {
	return &API{Ref: ref, Targets: targets}
}

// GetTargets returns the fixed daily macro targets.
func (a *API) GetTargets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Targets)
}

// ListIngredients returns the sorted ingredient names available to the food
// form. An empty table is an informational state, not an error.
func (a *API) ListIngredients(w http.ResponseWriter, r *http.Request) {
	names := a.Ref.Names()
	resp := struct {
		Ingredients []string `json:"ingredients"`
		Message     string   `json:"message,omitempty"`
	}{Ingredients: names}
	if len(names) == 0 {
		resp.Message = "No ingredients available to select. Please check your CSV file."
	}
	writeJSON(w, http.StatusOK, resp)
}

// selectedDate resolves the date query parameter, defaulting to today.
func selectedDate(r *http.Request) (models.Date, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return models.Today(), nil
	}
	return models.ParseDate(raw)
}

// entryDate resolves an optional date string from a request body,
// defaulting to today.
func entryDate(raw string) (models.Date, error) {
	if raw == "" {
		return models.Today(), nil
	}
	return models.ParseDate(raw)
}

// getStore fetches the session store injected by the session middleware.
func getStore(r *http.Request) *session.Store {
	return middleware.StoreFrom(r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
