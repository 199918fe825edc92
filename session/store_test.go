package session

import (
	"testing"
	"time"

	"github.com/satishgautham/New-Fitness-App/models"
)

func TestStorePreservesInsertionOrder(t *testing.T) {
	s := NewStore()
	day := models.NewDate(time.Now())

	for _, name := range []string{"Oats", "Rice", "Paneer"} {
		s.AppendFood(models.FoodLogEntry{Date: day, Ingredient: name})
	}

	got := s.Food()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"Oats", "Rice", "Paneer"} {
		if got[i].Ingredient != want {
			t.Errorf("entry %d = %q, want %q", i, got[i].Ingredient, want)
		}
	}
}

func TestStoreCollectionsAreIndependent(t *testing.T) {
	s := NewStore()
	day := models.NewDate(time.Now())

	s.AppendFood(models.FoodLogEntry{Date: day, Ingredient: "Oats"})
	s.AppendSupplement(models.SupplementLogEntry{Date: day, Supplement: "Creatine", Time: models.TimeMorning})

	if len(s.Food()) != 1 {
		t.Errorf("food len = %d, want 1", len(s.Food()))
	}
	if len(s.Supplements()) != 1 {
		t.Errorf("supplements len = %d, want 1", len(s.Supplements()))
	}
	if len(s.Weights()) != 0 {
		t.Errorf("weights len = %d, want 0", len(s.Weights()))
	}
}

func TestStoreReturnsCopies(t *testing.T) {
	s := NewStore()
	day := models.NewDate(time.Now())
	s.AppendWeight(models.WeightLogEntry{Date: day, WeightKg: 70})

	got := s.Weights()
	got[0].WeightKg = 999

	again := s.Weights()
	if again[0].WeightKg != 70 {
		t.Errorf("store mutated through returned slice: weight = %v", again[0].WeightKg)
	}
}

func TestManagerIsolatesSessions(t *testing.T) {
	m := NewManager()
	day := models.NewDate(time.Now())

	idA, storeA := m.New()
	idB, storeB := m.New()
	if idA == idB {
		t.Fatalf("session IDs collide: %s", idA)
	}

	storeA.AppendFood(models.FoodLogEntry{Date: day, Ingredient: "Oats"})

	if len(m.Get(idA).Food()) != 1 {
		t.Errorf("session A food len = %d, want 1", len(m.Get(idA).Food()))
	}
	if len(storeB.Food()) != 0 {
		t.Errorf("session B food len = %d, want 0", len(storeB.Food()))
	}
}

func TestManagerGetUnknownSession(t *testing.T) {
	m := NewManager()
	if m.Get("nope") != nil {
		t.Error("expected nil store for unknown session ID")
	}
}
