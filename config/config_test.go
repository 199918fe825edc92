package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("TRACKER_TEST_KEY", "value")
	if got := GetEnv("TRACKER_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("GetEnv = %q, want value", got)
	}
	if got := GetEnv("TRACKER_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want fallback", got)
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("TRACKER_TEST_FLOAT", "42.5")
	if got := GetEnvFloat("TRACKER_TEST_FLOAT", 1); got != 42.5 {
		t.Errorf("GetEnvFloat = %v, want 42.5", got)
	}

	t.Setenv("TRACKER_TEST_FLOAT", "not-a-number")
	if got := GetEnvFloat("TRACKER_TEST_FLOAT", 7); got != 7 {
		t.Errorf("GetEnvFloat = %v, want fallback 7", got)
	}
}

func TestTargetsDefaultsAndOverride(t *testing.T) {
	targets := Targets()
	if targets.Calories != 2000 || targets.Protein != 150 || targets.Carbs != 200 || targets.Fats != 70 {
		t.Errorf("default targets = %+v", targets)
	}

	t.Setenv("TARGET_CALORIES", "1800")
	targets = Targets()
	if targets.Calories != 1800 {
		t.Errorf("calories target = %v, want 1800 from env", targets.Calories)
	}
	if targets.Protein != 150 {
		t.Errorf("protein target = %v, want default 150", targets.Protein)
	}
}
