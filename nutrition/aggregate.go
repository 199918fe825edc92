package nutrition

import (
	"github.com/satishgautham/New-Fitness-App/models"
)

// Totals are the summed macro values for one day's food log.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// TargetStatus compares one macro's daily total against its target.
type TargetStatus struct {
	Field    string  `json:"field"`
	Total    float64 `json:"total"`
	Target   float64 `json:"target"`
	Exceeded bool    `json:"exceeded"`
}

// Aggregate sums the macro fields of the entries logged on day. A day with
// no entries yields zero totals.
func Aggregate(entries []models.FoodLogEntry, day models.Date) Totals {
	var t Totals
	for _, e := range entries {
		if !e.Date.Equal(day) {
			continue
		}
		t.Calories += e.Calories
		t.Protein += e.Protein
		t.Carbs += e.Carbs
		t.Fats += e.Fats
	}
	return t
}

// CompareToTargets reports, per tracked macro, whether the day's total
// exceeds the target. Hitting the target exactly does not count as
// exceeding it.
func CompareToTargets(totals Totals, targets models.MacroTargets) []TargetStatus {
	return []TargetStatus{
		{Field: "Calories", Total: totals.Calories, Target: targets.Calories, Exceeded: totals.Calories > targets.Calories},
		{Field: "Protein", Total: totals.Protein, Target: targets.Protein, Exceeded: totals.Protein > targets.Protein},
		{Field: "Carbs", Total: totals.Carbs, Target: targets.Carbs, Exceeded: totals.Carbs > targets.Carbs},
		{Field: "Fats", Total: totals.Fats, Target: targets.Fats, Exceeded: totals.Fats > targets.Fats},
	}
}
