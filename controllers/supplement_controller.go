package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/satishgautham/New-Fitness-App/logger"
	"github.com/satishgautham/New-Fitness-App/models"
)

type LogSupplementRequest struct {
	Date       string `json:"date,omitempty"`
	Supplement string `json:"supplement"`
	Dose       string `json:"dose"`
	Time       string `json:"time"`
}

// SupplementHistoryResponse is the supplement view: the full history sorted
// by date, how often each supplement was taken, and whether anything was
// logged on the selected date.
type SupplementHistoryResponse struct {
	Entries     []models.SupplementLogEntry `json:"entries"`
	Frequency   map[string]int              `json:"frequency"`
	LoggedToday bool                        `json:"logged_today"`
	TodayCount  int                         `json:"today_count"`
	Message     string                      `json:"message"`
}

// LogSupplement appends a supplement entry to the session log.
func (a *API) LogSupplement(w http.ResponseWriter, r *http.Request) {
	store := getStore(r)
	if store == nil {
		writeError(w, http.StatusInternalServerError, "No session")
		return
	}

	var req LogSupplementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := entryDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Supplement == "" {
		writeError(w, http.StatusBadRequest, "Supplement name is required")
		return
	}
	timeOfDay := models.TimeOfDay(req.Time)
	if !timeOfDay.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid time of day")
		return
	}

	entry := models.SupplementLogEntry{
		Date:       date,
		Supplement: req.Supplement,
		Dose:       req.Dose,
		Time:       timeOfDay,
	}
	store.AppendSupplement(entry)

	logger.Info("Supplement logged", "supplement", entry.Supplement, "time", entry.Time)

	writeJSON(w, http.StatusCreated, entry)
}

// GetSupplements renders the supplement history view for the selected date.
func (a *API) GetSupplements(w http.ResponseWriter, r *http.Request) {
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

	entries := store.Supplements()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	frequency := map[string]int{}
	todayCount := 0
	for _, e := range entries {
		frequency[e.Supplement]++
		if e.Date.Equal(date) {
			todayCount++
		}
	}

	resp := SupplementHistoryResponse{
		Entries:     entries,
		Frequency:   frequency,
		LoggedToday: todayCount > 0,
		TodayCount:  todayCount,
	}
	if todayCount == 0 {
		resp.Message = "You haven't logged any supplements today. Don't forget!"
	} else {
		resp.Message = fmt.Sprintf("%d supplement(s) logged today. Keep it up!", todayCount)
	}

	writeJSON(w, http.StatusOK, resp)
}
