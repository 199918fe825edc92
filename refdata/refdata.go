// Package refdata loads the static food reference table. The table is read
// once per process and cached; all nutrient computation keys off it.
package refdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"sync"

	"github.com/satishgautham/New-Fitness-App/models"
)

// ErrMissingReferenceData is returned when the backing file does not exist.
// Startup treats it as fatal: the tracker cannot run without the table.
var ErrMissingReferenceData = errors.New("reference data file not found")

// ErrUnknownIngredient is returned by Lookup for names not in the table.
var ErrUnknownIngredient = errors.New("unknown ingredient")

// InvalidRowError marks an ingredient whose reference row could not be
// parsed into numeric coefficients. The row stays in the table so the
// failure surfaces on selection rather than silently disappearing.
type InvalidRowError struct {
	Ingredient string
	Reason     string
}

func (e *InvalidRowError) Error() string {
	return fmt.Sprintf("invalid nutrition data for %q: %s", e.Ingredient, e.Reason)
}

var expectedHeader = []string{"Ingredient", "Protein_per_g", "Carbs_per_g", "Fats_per_g", "Calories", "Intake_g"}

// Table is the parsed reference table, keyed by ingredient name.
type Table struct {
	byName  map[string]models.ReferenceIngredient
	invalid map[string]string // ingredient -> parse failure reason
	names   []string          // valid ingredient names, sorted
}

// Load reads and parses the reference CSV at path. A missing file yields
// ErrMissingReferenceData; a malformed header or an unreadable file is an
// ordinary error. Rows whose numeric fields fail to parse are retained as
// invalid so Lookup can reject them with a specific reason.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingReferenceData, path)
		}
		return nil, fmt.Errorf("opening reference data: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) != len(expectedHeader) {
		return nil, fmt.Errorf("invalid header length: expected %d columns, got %d", len(expectedHeader), len(header))
	}
	for i, h := range header {
		if h != expectedHeader[i] {
			return nil, fmt.Errorf("invalid header: expected %s at position %d, got %s", expectedHeader[i], i, h)
		}
	}

	t := &Table{
		byName:  make(map[string]models.ReferenceIngredient),
		invalid: make(map[string]string),
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}

		name := record[0]
		if name == "" {
			continue
		}

		ing, reason := parseRow(name, record)
		if reason != "" {
			t.invalid[name] = reason
			continue
		}
		t.byName[name] = ing
		t.names = append(t.names, name)
	}

	sort.Strings(t.names)
	return t, nil
}

// parseRow converts one CSV record into a typed ingredient. A non-empty
// reason means the row is unusable.
func parseRow(name string, record []string) (models.ReferenceIngredient, string) {
	fields := []struct {
		label string
		value string
		dst   *float64
	}{
		{"Protein_per_g", record[1], nil},
		{"Carbs_per_g", record[2], nil},
		{"Fats_per_g", record[3], nil},
		{"Calories", record[4], nil},
		{"Intake_g", record[5], nil},
	}

	ing := models.ReferenceIngredient{Name: name}
	fields[0].dst = &ing.ProteinPerGram
	fields[1].dst = &ing.CarbsPerGram
	fields[2].dst = &ing.FatsPerGram
	fields[3].dst = &ing.CaloriesPerPortion
	fields[4].dst = &ing.PortionGrams

	for _, f := range fields {
		if f.value == "" {
			return models.ReferenceIngredient{}, fmt.Sprintf("missing %s", f.label)
		}
		v, err := strconv.ParseFloat(f.value, 64)
		if err != nil {
			return models.ReferenceIngredient{}, fmt.Sprintf("non-numeric %s: %q", f.label, f.value)
		}
		*f.dst = v
	}

	return ing, ""
}

// Names returns the valid ingredient names in sorted order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Lookup returns the reference row for name. It returns an InvalidRowError
// for rows that were present but unparsable, and ErrUnknownIngredient for
// names the table has never seen.
func (t *Table) Lookup(name string) (models.ReferenceIngredient, error) {
	if ing, ok := t.byName[name]; ok {
		return ing, nil
	}
	if reason, ok := t.invalid[name]; ok {
		return models.ReferenceIngredient{}, &InvalidRowError{Ingredient: name, Reason: reason}
	}
	return models.ReferenceIngredient{}, fmt.Errorf("%w: %s", ErrUnknownIngredient, name)
}

var (
	cached   *Table
	cacheErr error
	once     sync.Once
)

// Get loads the reference table at path on first call and returns the same
// in-memory table on every subsequent call without re-reading the file.
func Get(path string) (*Table, error) {
	once.Do(func() {
		cached, cacheErr = Load(path)
	})
	return cached, cacheErr
}
