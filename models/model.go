package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date with day precision. All daily views filter on
// exact date equality, so the time-of-day component is always zeroed.
type Date struct {
	t time.Time
}

// NewDate truncates t to its calendar date.
func NewDate(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	return NewDate(time.Now())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected %s", s, DateLayout)
	}
	return NewDate(t), nil
}

// Equal reports whether two dates are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Before reports whether d is an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MealType categorizes a food log entry.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

// MealTypes lists the accepted meal categories in form order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// Valid reports whether m is one of the accepted meal categories.
func (m MealType) Valid() bool {
	for _, v := range MealTypes {
		if m == v {
			return true
		}
	}
	return false
}

// TimeOfDay categorizes when a supplement was taken.
type TimeOfDay string

const (
	TimeMorning       TimeOfDay = "Morning"
	TimeAfternoon     TimeOfDay = "Afternoon"
	TimeEvening       TimeOfDay = "Evening"
	TimeBeforeWorkout TimeOfDay = "Before Workout"
	TimeAfterWorkout  TimeOfDay = "After Workout"
)

// TimesOfDay lists the accepted supplement times in form order.
var TimesOfDay = []TimeOfDay{TimeMorning, TimeAfternoon, TimeEvening, TimeBeforeWorkout, TimeAfterWorkout}

// Valid reports whether t is one of the accepted supplement times.
func (t TimeOfDay) Valid() bool {
	for _, v := range TimesOfDay {
		if t == v {
			return true
		}
	}
	return false
}

// ReferenceIngredient is one row of the food reference table: per-gram macro
// coefficients plus the calorie value for a reference portion. Loaded once
// at startup and never mutated.
type ReferenceIngredient struct {
	Name               string  `json:"name"`
	ProteinPerGram     float64 `json:"protein_per_g"`
	CarbsPerGram       float64 `json:"carbs_per_g"`
	FatsPerGram        float64 `json:"fats_per_g"`
	CaloriesPerPortion float64 `json:"calories"`
	PortionGrams       float64 `json:"intake_g"`
}

// Macros holds derived nutrient values for a single food entry.
type Macros struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Calories float64 `json:"calories"`
}

// FoodLogEntry is one logged meal item. The macro fields are computed from
// the reference table at submission time and stored; they are never
// recomputed, even if the reference data changes.
type FoodLogEntry struct {
	Date          Date     `json:"date"`
	Ingredient    string   `json:"ingredient"`
	QuantityGrams float64  `json:"quantity_grams"`
	Meal          MealType `json:"meal"`
	Protein       float64  `json:"protein"`
	Carbs         float64  `json:"carbs"`
	Fats          float64  `json:"fats"`
	Calories      float64  `json:"calories"`
}

// SupplementLogEntry is one logged supplement intake. Name and dose are
// free text.
type SupplementLogEntry struct {
	Date       Date      `json:"date"`
	Supplement string    `json:"supplement"`
	Dose       string    `json:"dose"`
	Time       TimeOfDay `json:"time"`
}

// Weight bounds accepted by the weight form, in kg.
const (
	MinWeightKg = 20.0
	MaxWeightKg = 300.0
)

// WeightLogEntry is one logged body-weight measurement.
type WeightLogEntry struct {
	Date     Date    `json:"date"`
	WeightKg float64 `json:"weight_kg"`
}

// MacroTargets are the daily intake targets the day view compares against.
// Fixed for the process lifetime.
type MacroTargets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// DefaultTargets returns the built-in daily targets.
func DefaultTargets() MacroTargets {
	return MacroTargets{
		Calories: 2000,
		Protein:  150,
		Carbs:    200,
		Fats:     70,
	}
}
